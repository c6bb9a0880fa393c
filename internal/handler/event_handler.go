package handler

import (
	"net/http"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/model/requestresponse"
	"photo-drop/internal/ports"
	"photo-drop/internal/util"
	"time"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	ports.EventService
	exports ports.ExportService
	baseURL string
	ttl     *config.TTL
	now     func() time.Time
}

func NewEventHandler(eventService ports.EventService, exportService ports.ExportService, baseURL string, ttl *config.TTL) *EventHandler {
	return &EventHandler{
		EventService: eventService,
		exports:      exportService,
		baseURL:      baseURL,
		ttl:          ttl,
		now:          time.Now,
	}
}

// CreateEvent godoc
// @Summary Создание события
// @Description Создаёт событие с окном загрузки и делает его текущим. Пустые поля политики загрузки берутся из конфигурации.
// @Description Дедлайн позже даты события допустим, в ответе появится предупреждение.
// @Tags Events
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateEventRequest true "Форма события"
// @Success 201 {object} requestresponse.EventResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	event, warnings, err := h.EventService.CreateEvent(r.Context(), req.ToInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.EventResponse{
		Event:     *event,
		InviteURL: util.InviteURL(h.baseURL, event.InviteToken),
		Warnings:  warnings,
	})
}

// ListEvents godoc
// @Summary Список событий
// @Tags Events
// @Produce json
// @Success 200 {object} requestresponse.EventListResponse
// @Router /api/events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	resp := requestresponse.EventListResponse{Events: h.EventService.ListEvents(r.Context())}
	if current, ok := h.EventService.CurrentEvent(r.Context()); ok {
		resp.Current = current.ID
	}
	util.WriteJSON(w, http.StatusOK, resp)
}

// GetEvent godoc
// @Summary Событие по ID
// @Tags Events
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.EventResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.EventService.GetEvent(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.EventResponse{
		Event:     *event,
		InviteURL: util.InviteURL(h.baseURL, event.InviteToken),
	})
}

// UpdateEvent godoc
// @Summary Частичное обновление события
// @Description Меняет только переданные поля. ID, токен приглашения и счётчик скачиваний не меняются.
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path string true "ID события"
// @Param body body model.EventPatch true "Изменяемые поля"
// @Success 200 {object} requestresponse.EventResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id} [patch]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch model.EventPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		return
	}

	event, warnings, err := h.EventService.UpdateEvent(r.Context(), chi.URLParam(r, "event_id"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.EventResponse{
		Event:     *event,
		InviteURL: util.InviteURL(h.baseURL, event.InviteToken),
		Warnings:  warnings,
	})
}

// DeleteEvent godoc
// @Summary Удаление события
// @Description Удаляет событие, его загрузки, объекты в хранилище и гостевые сессии.
// @Tags Events
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.DeleteEventResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id} [delete]
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	removed, err := h.EventService.DeleteEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DeleteEventResponse{EventID: eventID, RemovedUploads: removed})
}

// SelectEvent godoc
// @Summary Выбор текущего события
// @Tags Events
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.EventResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/current [post]
func (h *EventHandler) SelectEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.EventService.SelectEvent(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.EventResponse{
		Event:     *event,
		InviteURL: util.InviteURL(h.baseURL, event.InviteToken),
	})
}

// ListUploads godoc
// @Summary Загрузки события
// @Tags Uploads
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.UploadListResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/uploads [get]
func (h *EventHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	uploads, err := h.EventService.ListUploads(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UploadListResponse{EventID: eventID, Uploads: uploads, Total: len(uploads)})
}

// DeleteUpload godoc
// @Summary Удаление одной загрузки
// @Tags Uploads
// @Produce json
// @Param event_id path string true "ID события"
// @Param upload_id path string true "ID загрузки"
// @Success 204
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/uploads/{upload_id} [delete]
func (h *EventHandler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	err := h.EventService.DeleteUpload(r.Context(), chi.URLParam(r, "event_id"), chi.URLParam(r, "upload_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats godoc
// @Summary Статистика события
// @Description Количество и объём загрузок, уникальные гости, доля сессий с полным согласием, состояние окна загрузки.
// @Tags Events
// @Produce json
// @Param event_id path string true "ID события"
// @Success 200 {object} requestresponse.StatsResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/stats [get]
func (h *EventHandler) Stats(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	event, err := h.EventService.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	stats, err := h.EventService.Stats(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := h.now()
	util.WriteJSON(w, http.StatusOK, requestresponse.StatsResponse{
		Stats:         *stats,
		TotalSize:     util.FormatFileSize(stats.TotalSize),
		WindowOpen:    util.IsUploadWindowOpen(event.UploadWindowStart, event.UploadDeadline, now),
		TimeRemaining: util.GetTimeRemaining(event.UploadDeadline, now),
	})
}

// Export godoc
// @Summary Экспорт загрузок события
// @Description Формирует манифест со ссылками на все файлы события и увеличивает счётчик скачиваний.
// @Tags Export
// @Produce json
// @Param event_id path string true "ID события"
// @Success 201 {object} requestresponse.ExportResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 502 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/export [post]
func (h *EventHandler) Export(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.exports.Export(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.ExportResponse{Manifest: *manifest, ExpiresIn: h.ttl.Export})
}

// GetManifest godoc
// @Summary Манифест экспорта
// @Tags Export
// @Produce json
// @Param manifest_id path string true "ID манифеста"
// @Success 200 {object} requestresponse.ExportResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/exports/{manifest_id} [get]
func (h *EventHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.exports.GetManifest(r.Context(), chi.URLParam(r, "manifest_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	expiresIn := int(manifest.ExpiresAt.Sub(h.now()).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.ExportResponse{Manifest: *manifest, ExpiresIn: expiresIn})
}

// RevokeManifest godoc
// @Summary Отзыв манифеста экспорта
// @Tags Export
// @Param manifest_id path string true "ID манифеста"
// @Success 204
// @Router /api/events/exports/{manifest_id} [delete]
func (h *EventHandler) RevokeManifest(w http.ResponseWriter, r *http.Request) {
	if err := h.exports.RevokeManifest(r.Context(), chi.URLParam(r, "manifest_id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearStore godoc
// @Summary Полная очистка хранилища процесса
// @Tags Events
// @Produce json
// @Success 200 {object} requestresponse.StatusResponse
// @Router /api/store/clear [post]
func (h *EventHandler) ClearStore(w http.ResponseWriter, r *http.Request) {
	h.EventService.ClearStore(r.Context())
	util.WriteJSON(w, http.StatusOK, requestresponse.StatusResponse{Status: "cleared"})
}
