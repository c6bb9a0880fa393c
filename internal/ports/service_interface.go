package ports

import (
	"context"
	"photo-drop/internal/model"
)

type EventService interface {
	CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, []string, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context) []model.Event
	UpdateEvent(ctx context.Context, id string, patch model.EventPatch) (*model.Event, []string, error)
	DeleteEvent(ctx context.Context, id string) (int, error)
	SelectEvent(ctx context.Context, id string) (*model.Event, error)
	CurrentEvent(ctx context.Context) (*model.Event, bool)
	ResolveEventByToken(ctx context.Context, token string) (*model.Event, error)
	ListUploads(ctx context.Context, eventID string) ([]model.Upload, error)
	DeleteUpload(ctx context.Context, eventID string, uploadID string) error
	Stats(ctx context.Context, eventID string) (*model.EventStats, error)
	ClearStore(ctx context.Context)
}

type GuestService interface {
	OpenSession(ctx context.Context, inviteToken string) (*model.SessionView, string, error)
	GetSession(ctx context.Context, sessionID string) (*model.SessionView, error)
	AcknowledgeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error)
	RevokeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error)
	SetGuestInfo(ctx context.Context, sessionID string, name string, email string) (*model.SessionView, error)
	ListUploads(ctx context.Context, sessionID string) ([]model.Upload, error)
	CloseSession(ctx context.Context, sessionID string) error
	ConsentHistory(ctx context.Context, sessionID string) ([]model.ConsentRecord, error)
	EventConsentLog(ctx context.Context, eventID string) ([]model.ConsentRecord, error)
}

type AdmissionService interface {
	SubmitBatch(ctx context.Context, eventID string, sessionID string, files []model.FileDescriptor) (*model.AdmissionResult, error)
}

type ExportService interface {
	Export(ctx context.Context, eventID string) (*model.ExportManifest, error)
	GetManifest(ctx context.Context, id string) (*model.ExportManifest, error)
	RevokeManifest(ctx context.Context, id string) error
}
