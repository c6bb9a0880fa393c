package handler

import (
	"context"
	"photo-drop/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, []string, error) {
	args := m.Called(ctx, input)
	event, _ := args.Get(0).(*model.Event)
	warnings, _ := args.Get(1).([]string)
	return event, warnings, args.Error(2)
}

func (m *MockEventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context) []model.Event {
	args := m.Called(ctx)
	return args.Get(0).([]model.Event)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) (*model.Event, []string, error) {
	args := m.Called(ctx, id, patch)
	event, _ := args.Get(0).(*model.Event)
	warnings, _ := args.Get(1).([]string)
	return event, warnings, args.Error(2)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockEventService) SelectEvent(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Error(1)
}

func (m *MockEventService) CurrentEvent(ctx context.Context) (*model.Event, bool) {
	args := m.Called(ctx)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Bool(1)
}

func (m *MockEventService) ResolveEventByToken(ctx context.Context, token string) (*model.Event, error) {
	args := m.Called(ctx, token)
	event, _ := args.Get(0).(*model.Event)
	return event, args.Error(1)
}

func (m *MockEventService) ListUploads(ctx context.Context, eventID string) ([]model.Upload, error) {
	args := m.Called(ctx, eventID)
	uploads, _ := args.Get(0).([]model.Upload)
	return uploads, args.Error(1)
}

func (m *MockEventService) DeleteUpload(ctx context.Context, eventID string, uploadID string) error {
	return m.Called(ctx, eventID, uploadID).Error(0)
}

func (m *MockEventService) Stats(ctx context.Context, eventID string) (*model.EventStats, error) {
	args := m.Called(ctx, eventID)
	stats, _ := args.Get(0).(*model.EventStats)
	return stats, args.Error(1)
}

func (m *MockEventService) ClearStore(ctx context.Context) {
	m.Called(ctx)
}

type MockGuestService struct {
	mock.Mock
}

func (m *MockGuestService) OpenSession(ctx context.Context, inviteToken string) (*model.SessionView, string, error) {
	args := m.Called(ctx, inviteToken)
	view, _ := args.Get(0).(*model.SessionView)
	return view, args.String(1), args.Error(2)
}

func (m *MockGuestService) GetSession(ctx context.Context, sessionID string) (*model.SessionView, error) {
	args := m.Called(ctx, sessionID)
	view, _ := args.Get(0).(*model.SessionView)
	return view, args.Error(1)
}

func (m *MockGuestService) AcknowledgeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error) {
	args := m.Called(ctx, sessionID, kind, meta)
	view, _ := args.Get(0).(*model.SessionView)
	return view, args.Error(1)
}

func (m *MockGuestService) RevokeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error) {
	args := m.Called(ctx, sessionID, kind, meta)
	view, _ := args.Get(0).(*model.SessionView)
	return view, args.Error(1)
}

func (m *MockGuestService) SetGuestInfo(ctx context.Context, sessionID string, name string, email string) (*model.SessionView, error) {
	args := m.Called(ctx, sessionID, name, email)
	view, _ := args.Get(0).(*model.SessionView)
	return view, args.Error(1)
}

func (m *MockGuestService) ListUploads(ctx context.Context, sessionID string) ([]model.Upload, error) {
	args := m.Called(ctx, sessionID)
	uploads, _ := args.Get(0).([]model.Upload)
	return uploads, args.Error(1)
}

func (m *MockGuestService) CloseSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockGuestService) ConsentHistory(ctx context.Context, sessionID string) ([]model.ConsentRecord, error) {
	args := m.Called(ctx, sessionID)
	records, _ := args.Get(0).([]model.ConsentRecord)
	return records, args.Error(1)
}

func (m *MockGuestService) EventConsentLog(ctx context.Context, eventID string) ([]model.ConsentRecord, error) {
	args := m.Called(ctx, eventID)
	records, _ := args.Get(0).([]model.ConsentRecord)
	return records, args.Error(1)
}

type MockAdmissionService struct {
	mock.Mock
}

func (m *MockAdmissionService) SubmitBatch(ctx context.Context, eventID string, sessionID string, files []model.FileDescriptor) (*model.AdmissionResult, error) {
	args := m.Called(ctx, eventID, sessionID, files)
	result, _ := args.Get(0).(*model.AdmissionResult)
	return result, args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, eventID string) (*model.ExportManifest, error) {
	args := m.Called(ctx, eventID)
	manifest, _ := args.Get(0).(*model.ExportManifest)
	return manifest, args.Error(1)
}

func (m *MockExportService) GetManifest(ctx context.Context, id string) (*model.ExportManifest, error) {
	args := m.Called(ctx, id)
	manifest, _ := args.Get(0).(*model.ExportManifest)
	return manifest, args.Error(1)
}

func (m *MockExportService) RevokeManifest(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
