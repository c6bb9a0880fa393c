package handler

import (
	"log"
	"net/http"
	"photo-drop/internal/ports"
	ws "photo-drop/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type LiveHandler struct {
	events   ports.EventService
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewLiveHandler(eventService ports.EventService, hub *ws.Hub) *LiveHandler {
	return &LiveHandler{
		events: eventService,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeEvent godoc
// @Summary Живые обновления события
// @Description WebSocket: новые загрузки, изменения и удаление события, открытие и закрытие гостевых сессий.
// @Tags Events
// @Param event_id path string true "ID события"
// @Success 101
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/events/{event_id}/ws [get]
func (h *LiveHandler) ServeEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")
	if _, err := h.events.GetEvent(r.Context(), eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[LiveHandler] не удалось открыть WebSocket: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, eventID)
	select {
	case h.hub.Register <- client:
	case <-h.hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
