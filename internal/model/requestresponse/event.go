package requestresponse

import (
	"photo-drop/internal/model"
	"time"
)

// CreateEventRequest : форма организатора; пустые поля политики берутся из конфигурации
type CreateEventRequest struct {
	Name              string    `json:"name" example:"Hochzeit Anna & Ben"`
	OwnerEmail        string    `json:"owner_email" example:"anna@example.com"`
	Description       string    `json:"description,omitempty"`
	EventDate         time.Time `json:"event_date"`
	UploadWindowStart time.Time `json:"upload_window_start"`
	UploadDeadline    time.Time `json:"upload_deadline"`
	MaxFileSizeMB     float64   `json:"max_file_size_mb,omitempty" example:"50"`
	AllowedFileTypes  []string  `json:"allowed_file_types,omitempty"`
	MaxFilesPerBatch  int       `json:"max_files_per_batch,omitempty" example:"20"`
}

func (r CreateEventRequest) ToInput() model.EventInput {
	return model.EventInput{
		Name:              r.Name,
		OwnerEmail:        r.OwnerEmail,
		Description:       r.Description,
		EventDate:         r.EventDate,
		UploadWindowStart: r.UploadWindowStart,
		UploadDeadline:    r.UploadDeadline,
		MaxFileSizeMB:     r.MaxFileSizeMB,
		AllowedFileTypes:  r.AllowedFileTypes,
		MaxFilesPerBatch:  r.MaxFilesPerBatch,
	}
}

type EventResponse struct {
	Event     model.Event `json:"event"`
	InviteURL string      `json:"invite_url"`
	Warnings  []string    `json:"warnings,omitempty"`
}

type EventListResponse struct {
	Events  []model.Event `json:"events"`
	Current string        `json:"current_event_id,omitempty"`
}

type DeleteEventResponse struct {
	EventID        string `json:"event_id"`
	RemovedUploads int    `json:"removed_uploads"`
}

type UploadListResponse struct {
	EventID string         `json:"event_id"`
	Uploads []model.Upload `json:"uploads"`
	Total   int            `json:"total"`
}

type StatsResponse struct {
	Stats         model.EventStats    `json:"stats"`
	TotalSize     string              `json:"total_size_human"`
	WindowOpen    bool                `json:"window_open"`
	TimeRemaining model.TimeRemaining `json:"time_remaining"`
}

type ExportResponse struct {
	Manifest  model.ExportManifest `json:"manifest"`
	ExpiresIn int                  `json:"expires_in"`
}
