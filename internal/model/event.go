package model

import "time"

type Event struct {
	ID                string    `json:"id"`
	InviteToken       string    `json:"invite_token"`
	Name              string    `json:"name"`
	OwnerEmail        string    `json:"owner_email"`
	Description       string    `json:"description,omitempty"`
	EventDate         time.Time `json:"event_date"`
	UploadWindowStart time.Time `json:"upload_window_start"`
	UploadDeadline    time.Time `json:"upload_deadline"`
	MaxFileSizeMB     float64   `json:"max_file_size_mb"`
	AllowedFileTypes  []string  `json:"allowed_file_types"`
	MaxFilesPerBatch  int       `json:"max_files_per_batch"`
	DownloadsCount    int       `json:"downloads_count"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Clone : копия события без общих срезов
func (e Event) Clone() Event {
	e.AllowedFileTypes = append([]string(nil), e.AllowedFileTypes...)
	return e
}

// EventPatch : частичное обновление события, nil означает "не менять"
type EventPatch struct {
	Name              *string    `json:"name,omitempty"`
	Description       *string    `json:"description,omitempty"`
	EventDate         *time.Time `json:"event_date,omitempty"`
	UploadWindowStart *time.Time `json:"upload_window_start,omitempty"`
	UploadDeadline    *time.Time `json:"upload_deadline,omitempty"`
	MaxFileSizeMB     *float64   `json:"max_file_size_mb,omitempty"`
	AllowedFileTypes  []string   `json:"allowed_file_types,omitempty"`
	MaxFilesPerBatch  *int       `json:"max_files_per_batch,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
}

// Apply : применяет изменения к копии события и возвращает её
func (p EventPatch) Apply(e Event) Event {
	e = e.Clone()
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.UploadWindowStart != nil {
		e.UploadWindowStart = *p.UploadWindowStart
	}
	if p.UploadDeadline != nil {
		e.UploadDeadline = *p.UploadDeadline
	}
	if p.MaxFileSizeMB != nil {
		e.MaxFileSizeMB = *p.MaxFileSizeMB
	}
	if p.AllowedFileTypes != nil {
		e.AllowedFileTypes = append([]string(nil), p.AllowedFileTypes...)
	}
	if p.MaxFilesPerBatch != nil {
		e.MaxFilesPerBatch = *p.MaxFilesPerBatch
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	return e
}

type EventStats struct {
	EventID        string     `json:"event_id"`
	TotalUploads   int        `json:"total_uploads"`
	TotalSize      int64      `json:"total_size"`
	UniqueGuests   int        `json:"unique_guests"`
	DownloadsCount int        `json:"downloads_count"`
	LastUploadAt   *time.Time `json:"last_upload_at,omitempty"`
	Sessions       int        `json:"sessions"`
	ConsentRate    float64    `json:"consent_rate"`
}
