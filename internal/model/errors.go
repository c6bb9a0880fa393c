package model

import "errors"

var (
	ErrNotFound       = errors.New("event unavailable")
	ErrValidation     = errors.New("validation failed")
	ErrStorage        = errors.New("storage error")
	ErrDuplicateEvent = errors.New("event id or invite token already exists")
	ErrInvalidWindow  = errors.New("upload window start must be before deadline")
	ErrUnknownConsent = errors.New("unknown consent kind")
	ErrNoCurrentEvent = errors.New("no current event selected")
	ErrForeignUpload  = errors.New("upload belongs to another event")
)
