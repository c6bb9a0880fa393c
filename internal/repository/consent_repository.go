package repository

import (
	"context"
	"log"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/util"

	"github.com/jmoiron/sqlx"
)

// ConsentRepository : журнал согласий гостей в Postgres
type ConsentRepository struct {
	*config.Database
}

func NewConsentRepository(database *config.Database) *ConsentRepository {
	return &ConsentRepository{database}
}

// Save : сохраняет факт выдачи или отзыва согласия
func (r *ConsentRepository) Save(ctx context.Context, record *model.ConsentRecord) error {
	query := `
		INSERT INTO consent_records (id, event_id, session_id, kind, version, granted, guest_email, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.EventID,
		record.SessionID,
		record.Kind,
		record.Version,
		record.Granted,
		record.GuestEmail,
		record.IPHash,
		record.UserAgent,
		record.CreatedAt,
	)
	if err != nil {
		return util.LogError("[ConsentRepo] ошибка вставки записи согласия", err)
	}

	return nil
}

func (r *ConsentRepository) ListByEvent(ctx context.Context, eventID string) ([]model.ConsentRecord, error) {
	query := `
		SELECT id, event_id, session_id, kind, version, granted, guest_email, ip_hash, user_agent, created_at
		FROM consent_records
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	records := []model.ConsentRecord{}
	if err := sqlx.SelectContext(ctx, r.DB, &records, query, eventID); err != nil {
		return nil, util.LogError("[ConsentRepo] не удалось получить журнал согласий события", err)
	}
	return records, nil
}

func (r *ConsentRepository) ListBySession(ctx context.Context, sessionID string) ([]model.ConsentRecord, error) {
	query := `
		SELECT id, event_id, session_id, kind, version, granted, guest_email, ip_hash, user_agent, created_at
		FROM consent_records
		WHERE session_id = $1
		ORDER BY created_at ASC
	`
	records := []model.ConsentRecord{}
	if err := sqlx.SelectContext(ctx, r.DB, &records, query, sessionID); err != nil {
		return nil, util.LogError("[ConsentRepo] не удалось получить журнал согласий сессии", err)
	}
	return records, nil
}

// NoopConsentRepository : используется, когда БД не настроена, записи только логируются
type NoopConsentRepository struct{}

func NewNoopConsentRepository() NoopConsentRepository {
	return NoopConsentRepository{}
}

func (NoopConsentRepository) Save(ctx context.Context, record *model.ConsentRecord) error {
	log.Printf("[ConsentRepo] согласие %s=%t, сессия %s, версия %s", record.Kind, record.Granted, record.SessionID, record.Version)
	return nil
}

func (NoopConsentRepository) ListByEvent(ctx context.Context, eventID string) ([]model.ConsentRecord, error) {
	return []model.ConsentRecord{}, nil
}

func (NoopConsentRepository) ListBySession(ctx context.Context, sessionID string) ([]model.ConsentRecord, error) {
	return []model.ConsentRecord{}, nil
}
