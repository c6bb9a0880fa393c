package requestresponse

import (
	"photo-drop/internal/model"
	"time"
)

// PublicEventResponse : то, что гость видит по ссылке-приглашению, без почты организатора
type PublicEventResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description,omitempty"`
	EventDate         time.Time           `json:"event_date"`
	UploadWindowStart time.Time           `json:"upload_window_start"`
	UploadDeadline    time.Time           `json:"upload_deadline"`
	WindowOpen        bool                `json:"window_open"`
	IsActive          bool                `json:"is_active"`
	TimeRemaining     model.TimeRemaining `json:"time_remaining"`
	MaxFileSizeMB     float64             `json:"max_file_size_mb"`
	AllowedFileTypes  []string            `json:"allowed_file_types"`
	MaxFilesPerBatch  int                 `json:"max_files_per_batch"`
	ConsentVersion    string              `json:"consent_version"`
}

func PublicEventFromModel(event *model.Event, windowOpen bool, remaining model.TimeRemaining, consentVersion string) PublicEventResponse {
	return PublicEventResponse{
		ID:                event.ID,
		Name:              event.Name,
		Description:       event.Description,
		EventDate:         event.EventDate,
		UploadWindowStart: event.UploadWindowStart,
		UploadDeadline:    event.UploadDeadline,
		WindowOpen:        windowOpen,
		IsActive:          event.IsActive,
		TimeRemaining:     remaining,
		MaxFileSizeMB:     event.MaxFileSizeMB,
		AllowedFileTypes:  event.AllowedFileTypes,
		MaxFilesPerBatch:  event.MaxFilesPerBatch,
		ConsentVersion:    consentVersion,
	}
}

type SessionResponse struct {
	Session   model.SessionView `json:"session"`
	Token     string            `json:"token,omitempty"`
	ExpiresIn int64             `json:"expires_in,omitempty"`
}

type ConsentRequest struct {
	Kind model.ConsentKind `json:"kind" example:"privacy_policy"`
}

type GuestInfoRequest struct {
	Name  string `json:"name,omitempty" example:"Clara"`
	Email string `json:"email,omitempty" example:"clara@example.com"`
}

type AdmissionResponse struct {
	Result model.AdmissionResult `json:"result"`
}

type ConsentLogResponse struct {
	Records []model.ConsentRecord `json:"records"`
	Total   int                   `json:"total"`
}
