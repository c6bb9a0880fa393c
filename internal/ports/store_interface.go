package ports

import (
	"photo-drop/internal/model"
	"photo-drop/internal/session"
	"time"
)

// EventStore : процессное хранилище событий, загрузок и гостевых сессий
type EventStore interface {
	AddEvent(event model.Event) error
	UpdateEvent(id string, patch model.EventPatch, now time.Time) (*model.Event, error)
	DeleteEvent(id string) error
	SetCurrentEvent(id string) error
	ClearCurrentEvent()
	CurrentEvent() (*model.Event, bool)
	Events() []model.Event
	EventByID(id string) (*model.Event, error)
	EventByToken(token string) (*model.Event, error)
	TokenExists(token string) bool
	IncrementDownloads(eventID string) (int, error)

	AddUpload(upload model.Upload) error
	SetEventUploads(uploads []model.Upload) error
	RemoveUpload(eventID string, uploadID string) (*model.Upload, error)
	RemoveUploadsForEvent(eventID string) []model.Upload
	Uploads() []model.Upload
	EventUploads() []model.Upload
	UploadsForEvent(eventID string) []model.Upload

	PutSession(guestSession *session.GuestSession) error
	Session(id string) (*session.GuestSession, error)
	RemoveSession(id string) bool
	SessionsForEvent(eventID string) []*session.GuestSession
	RemoveSessionsForEvent(eventID string) int

	Subscribe(fn func(model.StoreChange)) func()
	Clear()
}
