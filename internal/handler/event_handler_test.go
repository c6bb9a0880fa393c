package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/model/requestresponse"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2026, time.June, 1, 12, 30, 0, 0, time.UTC)

func testEvent() *model.Event {
	return &model.Event{
		ID:                "evt_1",
		InviteToken:       "abcdefghijklmnopqrst",
		Name:              "Hochzeit Anna & Ben",
		OwnerEmail:        "anna@example.com",
		EventDate:         handlerNow.Add(24 * time.Hour),
		UploadWindowStart: handlerNow.Add(-30 * time.Minute),
		UploadDeadline:    handlerNow.Add(30 * time.Minute),
		MaxFileSizeMB:     10,
		AllowedFileTypes:  []string{"image/jpeg", "image/png"},
		MaxFilesPerBatch:  20,
		IsActive:          true,
	}
}

func newEventRouter(events *MockEventService, exports *MockExportService) http.Handler {
	h := NewEventHandler(events, exports, "https://drop.example", &config.TTL{Export: 3600, PresignedURLs: 900})
	h.now = func() time.Time { return handlerNow }

	r := chi.NewRouter()
	r.Route("/api/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Get("/exports/{manifest_id}", h.GetManifest)
		r.Delete("/exports/{manifest_id}", h.RevokeManifest)
		r.Route("/{event_id}", func(r chi.Router) {
			r.Get("/", h.GetEvent)
			r.Patch("/", h.UpdateEvent)
			r.Delete("/", h.DeleteEvent)
			r.Post("/current", h.SelectEvent)
			r.Get("/uploads", h.ListUploads)
			r.Delete("/uploads/{upload_id}", h.DeleteUpload)
			r.Get("/stats", h.Stats)
			r.Post("/export", h.Export)
		})
	})
	r.Post("/api/store/clear", h.ClearStore)
	return r
}

func serve(router http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(target))
}

func TestCreateEvent_Success(t *testing.T) {
	events := new(MockEventService)
	event := testEvent()
	events.On("CreateEvent", mock.Anything, mock.MatchedBy(func(input model.EventInput) bool {
		return input.Name == "Hochzeit Anna & Ben" && input.MaxFilesPerBatch == 0
	})).Return(event, []string{"upload deadline is after the event date"}, nil)

	body, _ := json.Marshal(requestresponse.CreateEventRequest{
		Name:              "Hochzeit Anna & Ben",
		OwnerEmail:        "anna@example.com",
		EventDate:         event.EventDate,
		UploadWindowStart: event.UploadWindowStart,
		UploadDeadline:    event.UploadDeadline,
	})
	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPost, "/api/events/", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp requestresponse.EventResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "evt_1", resp.Event.ID)
	assert.Equal(t, "https://drop.example/event/abcdefghijklmnopqrst", resp.InviteURL)
	assert.Equal(t, []string{"upload deadline is after the event date"}, resp.Warnings)
	events.AssertExpectations(t)
}

func TestCreateEvent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"ошибка валидации", fmt.Errorf("%w: name is required", model.ErrValidation), http.StatusBadRequest, "validation failed: name is required"},
		{"окно перевёрнуто", model.ErrInvalidWindow, http.StatusBadRequest, model.ErrInvalidWindow.Error()},
		{"дубликат", model.ErrDuplicateEvent, http.StatusConflict, model.ErrDuplicateEvent.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := new(MockEventService)
			events.On("CreateEvent", mock.Anything, mock.Anything).Return(nil, nil, tt.err)

			rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPost, "/api/events/", []byte(`{"name":"x"}`))

			assert.Equal(t, tt.status, rec.Code)
			var resp requestresponse.ErrorResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestCreateEvent_BadJSON(t *testing.T) {
	events := new(MockEventService)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPost, "/api/events/", []byte(`{`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	events.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestGetEvent_NotFound(t *testing.T) {
	events := new(MockEventService)
	events.On("GetEvent", mock.Anything, "evt_x").Return(nil, fmt.Errorf("%w: evt_x", model.ErrNotFound))

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodGet, "/api/events/evt_x", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp requestresponse.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "event unavailable", resp.Message)
}

func TestListEvents_WithCurrent(t *testing.T) {
	events := new(MockEventService)
	event := testEvent()
	events.On("ListEvents", mock.Anything).Return([]model.Event{*event})
	events.On("CurrentEvent", mock.Anything).Return(event, true)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodGet, "/api/events/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.EventListResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Events, 1)
	assert.Equal(t, "evt_1", resp.Current)
}

func TestUpdateEvent(t *testing.T) {
	events := new(MockEventService)
	event := testEvent()
	event.Name = "Neuer Name"
	events.On("UpdateEvent", mock.Anything, "evt_1", mock.MatchedBy(func(patch model.EventPatch) bool {
		return patch.Name != nil && *patch.Name == "Neuer Name" && patch.IsActive == nil
	})).Return(event, nil, nil)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPatch, "/api/events/evt_1", []byte(`{"name":"Neuer Name"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.EventResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Neuer Name", resp.Event.Name)
	events.AssertExpectations(t)
}

func TestDeleteEvent(t *testing.T) {
	events := new(MockEventService)
	events.On("DeleteEvent", mock.Anything, "evt_1").Return(4, nil)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodDelete, "/api/events/evt_1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.DeleteEventResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 4, resp.RemovedUploads)
}

func TestDeleteUpload(t *testing.T) {
	events := new(MockEventService)
	events.On("DeleteUpload", mock.Anything, "evt_1", "u1").Return(nil)
	events.On("DeleteUpload", mock.Anything, "evt_1", "u2").Return(model.ErrForeignUpload)
	router := newEventRouter(events, new(MockExportService))

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/events/evt_1/uploads/u1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodDelete, "/api/events/evt_1/uploads/u2", nil).Code)
}

func TestSelectEvent_Unknown(t *testing.T) {
	events := new(MockEventService)
	events.On("SelectEvent", mock.Anything, "evt_x").Return(nil, model.ErrNotFound)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPost, "/api/events/evt_x/current", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	events := new(MockEventService)
	events.On("GetEvent", mock.Anything, "evt_1").Return(testEvent(), nil)
	events.On("Stats", mock.Anything, "evt_1").Return(&model.EventStats{EventID: "evt_1", TotalUploads: 2, TotalSize: 1536}, nil)

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodGet, "/api/events/evt_1/stats", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.StatsResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Stats.TotalUploads)
	assert.Equal(t, "1.5 KB", resp.TotalSize)
	assert.True(t, resp.WindowOpen)
	assert.Equal(t, model.TimeRemaining{Minutes: 30}, resp.TimeRemaining)
}

func TestExport(t *testing.T) {
	exports := new(MockExportService)
	exports.On("Export", mock.Anything, "evt_1").Return(&model.ExportManifest{ID: "m1", EventID: "evt_1", FileCount: 3}, nil)
	exports.On("Export", mock.Anything, "evt_2").Return(nil, fmt.Errorf("%w: presign failed", model.ErrStorage))
	router := newEventRouter(new(MockEventService), exports)

	rec := serve(router, http.MethodPost, "/api/events/evt_1/export", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp requestresponse.ExportResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 3, resp.Manifest.FileCount)
	assert.Equal(t, 3600, resp.ExpiresIn)

	rec = serve(router, http.MethodPost, "/api/events/evt_2/export", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetManifest(t *testing.T) {
	exports := new(MockExportService)
	exports.On("GetManifest", mock.Anything, "m1").Return(&model.ExportManifest{ID: "m1", ExpiresAt: handlerNow.Add(10 * time.Minute)}, nil)
	exports.On("GetManifest", mock.Anything, "m2").Return(nil, model.ErrNotFound)
	router := newEventRouter(new(MockEventService), exports)

	rec := serve(router, http.MethodGet, "/api/events/exports/m1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.ExportResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 600, resp.ExpiresIn)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/events/exports/m2", nil).Code)
}

func TestRevokeManifest(t *testing.T) {
	exports := new(MockExportService)
	exports.On("RevokeManifest", mock.Anything, "m1").Return(nil)

	rec := serve(newEventRouter(new(MockEventService), exports), http.MethodDelete, "/api/events/exports/m1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	exports.AssertExpectations(t)
}

func TestClearStore(t *testing.T) {
	events := new(MockEventService)
	events.On("ClearStore", mock.Anything).Return()

	rec := serve(newEventRouter(events, new(MockExportService)), http.MethodPost, "/api/store/clear", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	events.AssertExpectations(t)
}
