package repository_test

import (
	"context"
	"errors"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var consentColumns = []string{"id", "event_id", "session_id", "kind", "version", "granted", "guest_email", "ip_hash", "user_agent", "created_at"}

func newMockConsentRepository(t *testing.T) (*repository.ConsentRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewConsentRepository(&config.Database{DB: sqlx.NewDb(db, "postgres")}), mock
}

func TestConsentRepository_Save(t *testing.T) {
	repo, mock := newMockConsentRepository(t)
	record := &model.ConsentRecord{
		ID:         "c1",
		EventID:    "evt_1",
		SessionID:  "s1",
		Kind:       model.ConsentImageRights,
		Version:    "1.0",
		Granted:    true,
		GuestEmail: "clara@example.com",
		IPHash:     "abc",
		UserAgent:  "agent",
		CreatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consent_records")).
		WithArgs("c1", "evt_1", "s1", model.ConsentImageRights, "1.0", true, "clara@example.com", "abc", "agent", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepository_SaveError(t *testing.T) {
	repo, mock := newMockConsentRepository(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consent_records")).WillReturnError(errors.New("db down"))

	err := repo.Save(context.Background(), &model.ConsentRecord{ID: "c1"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepository_ListByEvent(t *testing.T) {
	repo, mock := newMockConsentRepository(t)
	rows := sqlmock.NewRows(consentColumns).
		AddRow("c1", "evt_1", "s1", "privacy_policy", "1.0", true, "", "hash", "agent", now).
		AddRow("c2", "evt_1", "s1", "image_rights", "1.0", false, "", "hash", "agent", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM consent_records")).WithArgs("evt_1").WillReturnRows(rows)

	records, err := repo.ListByEvent(context.Background(), "evt_1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.ConsentPrivacyPolicy, records[0].Kind)
	assert.False(t, records[1].Granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepository_ListBySessionEmpty(t *testing.T) {
	repo, mock := newMockConsentRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM consent_records")).WithArgs("s1").WillReturnRows(sqlmock.NewRows(consentColumns))

	records, err := repo.ListBySession(context.Background(), "s1")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}
