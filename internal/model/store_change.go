package model

type ChangeType string

const (
	ChangeEventAdded     ChangeType = "event.added"
	ChangeEventUpdated   ChangeType = "event.updated"
	ChangeEventDeleted   ChangeType = "event.deleted"
	ChangeCurrentEvent   ChangeType = "event.current"
	ChangeUploadAdded    ChangeType = "upload.added"
	ChangeUploadsReplace ChangeType = "uploads.replaced"
	ChangeUploadRemoved  ChangeType = "upload.removed"
	ChangeSessionOpened  ChangeType = "session.opened"
	ChangeSessionClosed  ChangeType = "session.closed"
	ChangeCleared        ChangeType = "store.cleared"
)

// StoreChange : уведомление подписчикам хранилища, отправляется после завершения мутации
type StoreChange struct {
	Type    ChangeType `json:"type"`
	EventID string     `json:"event_id,omitempty"`
	Event   *Event     `json:"event,omitempty"`
	Upload  *Upload    `json:"upload,omitempty"`
	Count   int        `json:"count,omitempty"`
}
