package model

import "time"

// EventInput : данные формы создания события; нулевые значения политики берутся из конфигурации
type EventInput struct {
	Name              string    `json:"name"`
	OwnerEmail        string    `json:"owner_email"`
	Description       string    `json:"description"`
	EventDate         time.Time `json:"event_date"`
	UploadWindowStart time.Time `json:"upload_window_start"`
	UploadDeadline    time.Time `json:"upload_deadline"`
	MaxFileSizeMB     float64   `json:"max_file_size_mb"`
	AllowedFileTypes  []string  `json:"allowed_file_types"`
	MaxFilesPerBatch  int       `json:"max_files_per_batch"`
}

// RequestMeta : данные запроса гостя для журнала согласий
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type SessionClaims struct {
	SessionID string
	EventID   string
	ExpiresAt time.Time
}
