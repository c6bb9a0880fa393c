package ports

import (
	"context"
	"photo-drop/internal/model"
)

// ConsentAuditRepository : SQL журнал согласий
type ConsentAuditRepository interface {
	Save(ctx context.Context, record *model.ConsentRecord) error
	ListByEvent(ctx context.Context, eventID string) ([]model.ConsentRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.ConsentRecord, error)
}
