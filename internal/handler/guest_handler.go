package handler

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/model/requestresponse"
	"photo-drop/internal/ports"
	"photo-drop/internal/security"
	"photo-drop/internal/util"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	multipartMemory   = 32 << 20
	// multipartOverhead : запас на заголовки частей и границы
	multipartOverhead = 1 << 20
	sniffLen          = 512
)

type GuestHandler struct {
	ports.GuestService
	events         ports.EventService
	admission      ports.AdmissionService
	consentVersion string
	sessionTTL     time.Duration
	now            func() time.Time
}

func NewGuestHandler(
	guestService ports.GuestService,
	eventService ports.EventService,
	admissionService ports.AdmissionService,
	consentVersion string,
	sessionTTL time.Duration,
) *GuestHandler {
	return &GuestHandler{
		GuestService:   guestService,
		events:         eventService,
		admission:      admissionService,
		consentVersion: consentVersion,
		sessionTTL:     sessionTTL,
		now:            time.Now,
	}
}

// GetPublicEvent godoc
// @Summary Событие по ссылке-приглашению
// @Description Публичные данные события: окно загрузки, оставшееся время и политика файлов. Авторизация не требуется.
// @Tags Guest
// @Produce json
// @Param token path string true "Токен приглашения"
// @Success 200 {object} requestresponse.PublicEventResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Событие недоступно"
// @Router /public/events/{token} [get]
func (h *GuestHandler) GetPublicEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.ResolveEventByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := h.now()
	util.WriteJSON(w, http.StatusOK, requestresponse.PublicEventFromModel(
		event,
		util.IsUploadWindowOpen(event.UploadWindowStart, event.UploadDeadline, now),
		util.GetTimeRemaining(event.UploadDeadline, now),
		h.consentVersion,
	))
}

// OpenSession godoc
// @Summary Открытие гостевой сессии
// @Description Создаёт сессию для события и возвращает подписанный токен. Токен также ставится в cookie.
// @Tags Guest
// @Produce json
// @Param token path string true "Токен приглашения"
// @Success 201 {object} requestresponse.SessionResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /public/events/{token}/sessions [post]
func (h *GuestHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	view, token, err := h.GuestService.OpenSession(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, security.SessionCookie(token, h.now().Add(h.sessionTTL)))
	util.WriteJSON(w, http.StatusCreated, requestresponse.SessionResponse{
		Session:   *view,
		Token:     token,
		ExpiresIn: int64(h.sessionTTL.Seconds()),
	})
}

// GetSession godoc
// @Summary Текущая гостевая сессия
// @Tags Guest
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /public/session [get]
func (h *GuestHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	view, err := h.GuestService.GetSession(r.Context(), claims.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.SessionResponse{Session: *view})
}

// AcknowledgeConsent godoc
// @Summary Подтверждение согласия
// @Description Отмечает одно из трёх согласий: privacy_policy, image_rights, data_processing. Каждое подтверждение пишется в журнал.
// @Tags Guest
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Param body body requestresponse.ConsentRequest true "Вид согласия"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /public/session/consent [post]
func (h *GuestHandler) AcknowledgeConsent(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.ConsentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	view, err := h.GuestService.AcknowledgeConsent(r.Context(), claims.SessionID, req.Kind, requestMeta(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.SessionResponse{Session: *view})
}

// RevokeConsent godoc
// @Summary Отзыв согласия
// @Tags Guest
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Param kind path string true "Вид согласия"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /public/session/consent/{kind} [delete]
func (h *GuestHandler) RevokeConsent(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	kind := model.ConsentKind(chi.URLParam(r, "kind"))
	view, err := h.GuestService.RevokeConsent(r.Context(), claims.SessionID, kind, requestMeta(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.SessionResponse{Session: *view})
}

// SetGuestInfo godoc
// @Summary Имя и почта гостя
// @Description Необязательные данные, которыми подписываются следующие загрузки.
// @Tags Guest
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Param body body requestresponse.GuestInfoRequest true "Имя и почта"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /public/session/guest [put]
func (h *GuestHandler) SetGuestInfo(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.GuestInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	view, err := h.GuestService.SetGuestInfo(r.Context(), claims.SessionID, req.Name, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.SessionResponse{Session: *view})
}

// SubmitUploads godoc
// @Summary Загрузка пачки фотографий
// @Description Файлы передаются полем files. Пачка целиком отклоняется без согласий, вне окна загрузки или при выключенном событии,
// @Description иначе каждый файл проверяется отдельно. Ошибки отдельных файлов приходят в result.errors.
// @Tags Guest
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Param files formData file true "Файлы"
// @Success 200 {object} requestresponse.AdmissionResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 413 {object} requestresponse.ErrorResponse "Тело запроса больше политики события"
// @Router /public/session/uploads [post]
func (h *GuestHandler) SubmitUploads(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	event, err := h.events.GetEvent(r.Context(), claims.EventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	view, err := h.GuestService.GetSession(r.Context(), claims.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	policy := newBatchPolicy(event)
	if r.ContentLength > policy.maxBody {
		util.HandleError(w, "слишком большой запрос", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, policy.maxBody)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.HandleError(w, "слишком большой запрос", http.StatusRequestEntityTooLarge)
			return
		}
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	// байты нужны только файлам, которые сервис допуска может принять
	accepting := view.ConsentState == model.ConsentGranted && event.IsActive &&
		util.IsUploadWindowOpen(event.UploadWindowStart, event.UploadDeadline, h.now())

	headers := r.MultipartForm.File["files"]
	files := make([]model.FileDescriptor, 0, len(headers))
	for i, header := range headers {
		load := accepting && i < policy.maxFiles && header.Size <= policy.maxFileBytes
		file, err := readFormFile(header, load)
		if err != nil {
			log.Printf("[GuestHandler] ошибка чтения файла %s: %v", header.Filename, err)
			util.HandleError(w, "ошибка чтения файла", http.StatusBadRequest)
			return
		}
		files = append(files, file)
	}

	result, err := h.admission.SubmitBatch(r.Context(), claims.EventID, claims.SessionID, files)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AdmissionResponse{Result: *result})
}

// batchPolicy : пределы тела запроса, выведенные из политики события
type batchPolicy struct {
	maxFiles     int
	maxFileBytes int64
	maxBody      int64
}

func newBatchPolicy(event *model.Event) batchPolicy {
	maxFiles := event.MaxFilesPerBatch
	if maxFiles <= 0 {
		maxFiles = config.DefaultMaxFilesPerBatch
	}
	maxSizeMB := event.MaxFileSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = config.DefaultMaxFileSizeMB
	}

	maxFileBytes := int64(maxSizeMB * (1 << 20))
	return batchPolicy{
		maxFiles:     maxFiles,
		maxFileBytes: maxFileBytes,
		maxBody:      int64(maxFiles)*maxFileBytes + multipartOverhead,
	}
}

// readFormFile : тип определяется по первым байтам, размер берётся из заголовка части.
// Содержимое читается целиком только при load.
func readFormFile(header *multipart.FileHeader, load bool) (model.FileDescriptor, error) {
	file, err := header.Open()
	if err != nil {
		return model.FileDescriptor{}, err
	}
	defer file.Close()

	sniff := make([]byte, sniffLen)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return model.FileDescriptor{}, err
	}
	sniff = sniff[:n]

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(sniff)
	}

	descriptor := model.FileDescriptor{
		Name: header.Filename,
		Type: contentType,
		Size: header.Size,
	}
	if !load {
		return descriptor, nil
	}

	rest, err := io.ReadAll(file)
	if err != nil {
		return model.FileDescriptor{}, err
	}
	descriptor.Content = append(sniff, rest...)
	return descriptor, nil
}

// ListSessionUploads godoc
// @Summary Загрузки события гостя
// @Tags Guest
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Success 200 {object} requestresponse.UploadListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /public/session/uploads [get]
func (h *GuestHandler) ListSessionUploads(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	uploads, err := h.GuestService.ListUploads(r.Context(), claims.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.UploadListResponse{EventID: claims.EventID, Uploads: uploads, Total: len(uploads)})
}

// CloseSession godoc
// @Summary Завершение гостевой сессии
// @Tags Guest
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Success 204
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /public/session [delete]
func (h *GuestHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	if err := h.GuestService.CloseSession(r.Context(), claims.SessionID); err != nil {
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, security.ExpiredSessionCookie())
	w.WriteHeader(http.StatusNoContent)
}

func sessionClaims(w http.ResponseWriter, r *http.Request) (*model.SessionClaims, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "сессия не найдена", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

func requestMeta(r *http.Request) model.RequestMeta {
	return model.RequestMeta{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// ConsentHistory godoc
// @Summary Журнал согласий гостя
// @Tags Guest
// @Produce json
// @Param Authorization header string true "Bearer токен сессии" default(Bearer <session_token>)
// @Success 200 {object} requestresponse.ConsentLogResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /public/session/consent [get]
func (h *GuestHandler) ConsentHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	records, err := h.GuestService.ConsentHistory(r.Context(), claims.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.ConsentLogResponse{Records: records, Total: len(records)})
}

// EventConsentLog godoc
// @Summary Журнал согласий события
// @Tags Events
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.ConsentLogResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/consents [get]
func (h *GuestHandler) EventConsentLog(w http.ResponseWriter, r *http.Request) {
	records, err := h.GuestService.EventConsentLog(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.ConsentLogResponse{Records: records, Total: len(records)})
}
