package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"photo-drop/internal/model"
	"photo-drop/internal/model/requestresponse"
	"photo-drop/internal/security"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testClaims = &model.SessionClaims{SessionID: "sess-1", EventID: "evt_1"}

type guestFixture struct {
	guests    *MockGuestService
	events    *MockEventService
	admission *MockAdmissionService
	router    http.Handler
}

func newGuestFixture() *guestFixture {
	f := &guestFixture{
		guests:    new(MockGuestService),
		events:    new(MockEventService),
		admission: new(MockAdmissionService),
	}
	h := NewGuestHandler(f.guests, f.events, f.admission, "1.0", time.Hour)
	h.now = func() time.Time { return handlerNow }

	r := chi.NewRouter()
	r.Route("/public", func(r chi.Router) {
		r.Get("/events/{token}", h.GetPublicEvent)
		r.Post("/events/{token}/sessions", h.OpenSession)
		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.CloseSession)
			r.Get("/consent", h.ConsentHistory)
			r.Post("/consent", h.AcknowledgeConsent)
			r.Delete("/consent/{kind}", h.RevokeConsent)
			r.Put("/guest", h.SetGuestInfo)
			r.Get("/uploads", h.ListSessionUploads)
			r.Post("/uploads", h.SubmitUploads)
		})
	})
	r.Get("/api/events/{event_id}/consents", h.EventConsentLog)
	f.router = r
	return f
}

// withSession : кладёт claims в контекст так же, как это делает SessionMiddleware
func withSession(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), security.SessionContextKey, testClaims))
}

func (f *guestFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionView(state model.ConsentState) *model.SessionView {
	return &model.SessionView{ID: "sess-1", EventID: "evt_1", ConsentState: state}
}

func TestGetPublicEvent_HidesOwner(t *testing.T) {
	f := newGuestFixture()
	f.events.On("ResolveEventByToken", mock.Anything, "abcdefghijklmnopqrst").Return(testEvent(), nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/public/events/abcdefghijklmnopqrst", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "anna@example.com")
	var resp requestresponse.PublicEventResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.WindowOpen)
	assert.Equal(t, "1.0", resp.ConsentVersion)
	assert.Equal(t, int64(30), resp.TimeRemaining.Minutes)
}

func TestGetPublicEvent_UnknownToken(t *testing.T) {
	f := newGuestFixture()
	f.events.On("ResolveEventByToken", mock.Anything, "nope").Return(nil, model.ErrNotFound)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/public/events/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenSession_SetsCookie(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("OpenSession", mock.Anything, "abcdefghijklmnopqrst").Return(sessionView(model.ConsentNone), "signed-token", nil)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/public/events/abcdefghijklmnopqrst/sessions", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp requestresponse.SessionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, model.ConsentNone, resp.Session.ConsentState)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestGetSession_WithoutClaims(t *testing.T) {
	f := newGuestFixture()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/public/session/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.guests.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
}

func TestAcknowledgeConsent(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("AcknowledgeConsent", mock.Anything, "sess-1", model.ConsentImageRights, mock.MatchedBy(func(meta model.RequestMeta) bool {
		return meta.UserAgent == "test-agent" && meta.IPAddress != ""
	})).Return(sessionView(model.ConsentPartial), nil)

	req := httptest.NewRequest(http.MethodPost, "/public/session/consent", bytes.NewBufferString(`{"kind":"image_rights"}`))
	req.Header.Set("User-Agent", "test-agent")
	rec := f.do(withSession(req))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.SessionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, model.ConsentPartial, resp.Session.ConsentState)
	f.guests.AssertExpectations(t)
}

func TestAcknowledgeConsent_UnknownKind(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("AcknowledgeConsent", mock.Anything, "sess-1", model.ConsentKind("marketing"), mock.Anything).
		Return(nil, model.ErrUnknownConsent)

	req := httptest.NewRequest(http.MethodPost, "/public/session/consent", bytes.NewBufferString(`{"kind":"marketing"}`))
	rec := f.do(withSession(req))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevokeConsent(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("RevokeConsent", mock.Anything, "sess-1", model.ConsentPrivacyPolicy, mock.Anything).Return(sessionView(model.ConsentPartial), nil)

	rec := f.do(withSession(httptest.NewRequest(http.MethodDelete, "/public/session/consent/privacy_policy", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.guests.AssertExpectations(t)
}

func TestSetGuestInfo_InvalidEmail(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("SetGuestInfo", mock.Anything, "sess-1", "Clara", "clara@").Return(nil, model.ErrValidation)

	req := httptest.NewRequest(http.MethodPut, "/public/session/guest", bytes.NewBufferString(`{"name":"Clara","email":"clara@"}`))
	rec := f.do(withSession(req))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func (f *guestFixture) acceptingSession(state model.ConsentState) {
	f.events.On("GetEvent", mock.Anything, "evt_1").Return(testEvent(), nil)
	f.guests.On("GetSession", mock.Anything, "sess-1").Return(sessionView(state), nil)
}

func uploadRequest(t *testing.T, files map[string][]byte) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/public/session/uploads", body)
	req.Header.Set("Content-Type", contentType)
	return withSession(req)
}

func TestSubmitUploads(t *testing.T) {
	f := newGuestFixture()
	f.acceptingSession(model.ConsentGranted)
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 64)...)
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	f.admission.On("SubmitBatch", mock.Anything, "evt_1", "sess-1", mock.MatchedBy(func(files []model.FileDescriptor) bool {
		if len(files) != 2 {
			return false
		}
		types := map[string]string{}
		for _, file := range files {
			if file.Size == 0 || int64(len(file.Content)) != file.Size {
				return false
			}
			types[file.Name] = file.Type
		}
		return types["a.jpg"] == "image/jpeg" && types["b.png"] == "image/png"
	})).Return(&model.AdmissionResult{AdmittedCount: 2, Admitted: []model.Upload{{ID: "u1"}, {ID: "u2"}}}, nil)

	rec := f.do(uploadRequest(t, map[string][]byte{"a.jpg": jpeg, "b.png": png}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.AdmissionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Result.AdmittedCount)
	f.admission.AssertExpectations(t)
}

func TestSubmitUploads_BlockedBatchIsReported(t *testing.T) {
	f := newGuestFixture()
	f.acceptingSession(model.ConsentPartial)
	f.admission.On("SubmitBatch", mock.Anything, "evt_1", "sess-1", mock.MatchedBy(func(files []model.FileDescriptor) bool {
		// без согласий байты файла не читаются, но размер и тип известны
		return len(files) == 1 && files[0].Content == nil && files[0].Size == 3 && files[0].Type == "image/jpeg"
	})).Return(&model.AdmissionResult{BatchError: model.BatchErrorConsentRequired, Admitted: []model.Upload{}, Errors: []model.FileError{}}, nil)

	rec := f.do(uploadRequest(t, map[string][]byte{"a.jpg": {0xFF, 0xD8, 0xFF}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "consent_required", raw["result"]["batch_error"])
	f.admission.AssertExpectations(t)
}

func TestSubmitUploads_SkipsContentBeyondPolicy(t *testing.T) {
	f := newGuestFixture()
	event := testEvent()
	event.MaxFilesPerBatch = 1
	event.MaxFileSizeMB = 0.0001
	f.events.On("GetEvent", mock.Anything, "evt_1").Return(event, nil)
	f.guests.On("GetSession", mock.Anything, "sess-1").Return(sessionView(model.ConsentGranted), nil)

	big := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{1}, 1024)...)
	f.admission.On("SubmitBatch", mock.Anything, "evt_1", "sess-1", mock.MatchedBy(func(files []model.FileDescriptor) bool {
		return len(files) == 1 && files[0].Content == nil && files[0].Size == int64(len(big))
	})).Return(&model.AdmissionResult{Admitted: []model.Upload{}, Errors: []model.FileError{{FileName: "big.jpg"}}}, nil)

	rec := f.do(uploadRequest(t, map[string][]byte{"big.jpg": big}))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.admission.AssertExpectations(t)
}

func TestSubmitUploads_OversizedBody(t *testing.T) {
	f := newGuestFixture()
	event := testEvent()
	event.MaxFilesPerBatch = 1
	event.MaxFileSizeMB = 0.5
	f.events.On("GetEvent", mock.Anything, "evt_1").Return(event, nil)
	f.guests.On("GetSession", mock.Anything, "sess-1").Return(sessionView(model.ConsentGranted), nil)

	huge := bytes.Repeat([]byte{0xFF}, 2<<20)

	rec := f.do(uploadRequest(t, map[string][]byte{"huge.jpg": huge}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// длина тела заранее неизвестна
	req := uploadRequest(t, map[string][]byte{"huge.jpg": huge})
	req.ContentLength = -1
	rec = f.do(req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	f.admission.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitUploads_UnknownSession(t *testing.T) {
	f := newGuestFixture()
	f.events.On("GetEvent", mock.Anything, "evt_1").Return(testEvent(), nil)
	f.guests.On("GetSession", mock.Anything, "sess-1").Return(nil, model.ErrNotFound)

	rec := f.do(uploadRequest(t, map[string][]byte{"a.jpg": {0xFF, 0xD8, 0xFF}}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.admission.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitUploads_UnknownEvent(t *testing.T) {
	f := newGuestFixture()
	f.events.On("GetEvent", mock.Anything, "evt_1").Return(nil, model.ErrNotFound)

	rec := f.do(uploadRequest(t, map[string][]byte{"a.jpg": {0xFF, 0xD8, 0xFF}}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.guests.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
}

func TestSubmitUploads_NotMultipart(t *testing.T) {
	f := newGuestFixture()
	f.acceptingSession(model.ConsentGranted)

	req := httptest.NewRequest(http.MethodPost, "/public/session/uploads", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.do(withSession(req))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.admission.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListSessionUploads(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("ListUploads", mock.Anything, "sess-1").Return([]model.Upload{{ID: "u1"}}, nil)

	rec := f.do(withSession(httptest.NewRequest(http.MethodGet, "/public/session/uploads", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.UploadListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "evt_1", resp.EventID)
}

func TestCloseSession_ExpiresCookie(t *testing.T) {
	f := newGuestFixture()
	f.guests.On("CloseSession", mock.Anything, "sess-1").Return(nil)

	rec := f.do(withSession(httptest.NewRequest(http.MethodDelete, "/public/session/", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestConsentLogs(t *testing.T) {
	f := newGuestFixture()
	records := []model.ConsentRecord{{ID: "c1", Kind: model.ConsentPrivacyPolicy, Granted: true}}
	f.guests.On("ConsentHistory", mock.Anything, "sess-1").Return(records, nil)
	f.guests.On("EventConsentLog", mock.Anything, "evt_1").Return(records, nil)
	f.guests.On("EventConsentLog", mock.Anything, "evt_x").Return(nil, model.ErrNotFound)

	var resp requestresponse.ConsentLogResponse
	rec := f.do(withSession(httptest.NewRequest(http.MethodGet, "/public/session/consent", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.Total)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/events/evt_1/consents", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/events/evt_x/consents", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
