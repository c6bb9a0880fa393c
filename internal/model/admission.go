package model

import "time"

type BatchError string

const (
	BatchErrorNone            BatchError = ""
	BatchErrorConsentRequired BatchError = "consent_required"
	BatchErrorWindowClosed    BatchError = "window_closed"
	BatchErrorEventInactive   BatchError = "event_inactive"
	BatchErrorInFlight        BatchError = "batch_in_flight"
)

type FileErrorKind string

const (
	FileErrorValidation FileErrorKind = "validation"
	FileErrorStorage    FileErrorKind = "storage"
)

type FileError struct {
	FileName string        `json:"file_name"`
	Reason   string        `json:"reason"`
	Kind     FileErrorKind `json:"kind"`
}

// AdmissionResult : итог обработки пачки файлов.
// BatchError блокирует всю пачку, Errors перечисляет отклонённые файлы.
type AdmissionResult struct {
	AdmittedCount int         `json:"admitted_count"`
	Admitted      []Upload    `json:"admitted"`
	Errors        []FileError `json:"errors"`
	BatchError    BatchError  `json:"batch_error,omitempty"`
	LimitError    string      `json:"limit_error,omitempty"`
	Skipped       int         `json:"skipped,omitempty"`
}

func (r *AdmissionResult) Blocked() bool {
	return r.BatchError != BatchErrorNone
}

type TimeRemaining struct {
	Days      int64 `json:"days"`
	Hours     int64 `json:"hours"`
	Minutes   int64 `json:"minutes"`
	Seconds   int64 `json:"seconds"`
	IsExpired bool  `json:"is_expired"`
}

type FileValidation struct {
	Valid bool
	Error string
}

// SessionView : снимок гостевой сессии для ответа клиенту
type SessionView struct {
	ID             string               `json:"id"`
	EventID        string               `json:"event_id"`
	ConsentState   ConsentState         `json:"consent_state"`
	Consents       map[ConsentKind]bool `json:"consents"`
	GuestName      string               `json:"guest_name,omitempty"`
	GuestEmail     string               `json:"guest_email,omitempty"`
	UploadsCount   int                  `json:"uploads_count"`
	InFlight       bool                 `json:"in_flight"`
	CreatedAt      time.Time            `json:"created_at"`
	LastActivityAt time.Time            `json:"last_activity_at"`
}
