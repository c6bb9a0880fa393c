package service

import (
	"context"
	"photo-drop/internal/model"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Store(ctx context.Context, content []byte, meta model.StorageMetadata) (*model.StoredObject, error) {
	args := m.Called(ctx, content, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredObject), args.Error(1)
}

func (m *MockObjectStorage) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockConsentAudit struct{ mock.Mock }

func (m *MockConsentAudit) Save(ctx context.Context, record *model.ConsentRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockConsentAudit) ListByEvent(ctx context.Context, eventID string) ([]model.ConsentRecord, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConsentRecord), args.Error(1)
}

func (m *MockConsentAudit) ListBySession(ctx context.Context, sessionID string) ([]model.ConsentRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConsentRecord), args.Error(1)
}

type MockExportCache struct{ mock.Mock }

func (m *MockExportCache) SetManifest(ctx context.Context, manifest *model.ExportManifest) error {
	return m.Called(ctx, manifest).Error(0)
}

func (m *MockExportCache) GetManifest(ctx context.Context, id string) (*model.ExportManifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExportManifest), args.Error(1)
}

func (m *MockExportCache) DeleteManifest(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSessionTokens struct{ mock.Mock }

func (m *MockSessionTokens) Issue(sessionID string, eventID string) (string, error) {
	args := m.Called(sessionID, eventID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionTokens) Parse(token string) (*model.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionClaims), args.Error(1)
}

// fixedClock : часы, которые тест двигает вручную
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.now = t
}
