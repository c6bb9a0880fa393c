package websocket

import (
	"context"
	"encoding/json"
	"log"
	"photo-drop/internal/model"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client : подключение панели организатора к комнате события
type Client struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Send    chan []byte
	EventID string
}

// Hub : рассылает изменения EventStore подписанным панелям, комната на каждое событие
type Hub struct {
	Clients    map[string]map[*Client]bool // eventID -> clients
	Broadcast  chan *Message
	Register   chan *Client
	Unregister chan *Client
	Mu         sync.RWMutex

	done chan struct{}
}

type Message struct {
	Type      model.ChangeType `json:"type"`
	EventID   string           `json:"event_id,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]map[*Client]bool),
		Broadcast:  make(chan *Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Publish : подписчик EventStore. Не блокирует мутацию хранилища, при переполнении очереди сообщение теряется.
func (h *Hub) Publish(change model.StoreChange) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Printf("[Hub] ошибка сериализации изменения %s: %v", change.Type, err)
		return
	}

	message := &Message{
		Type:      change.Type,
		EventID:   change.EventID,
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case h.Broadcast <- message:
	default:
		log.Printf("[Hub] очередь переполнена, изменение %s пропущено", change.Type)
	}
}

// Run : цикл хаба до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.Register:
			h.Mu.Lock()
			if h.Clients[client.EventID] == nil {
				h.Clients[client.EventID] = make(map[*Client]bool)
			}
			h.Clients[client.EventID][client] = true
			h.Mu.Unlock()

		case client := <-h.Unregister:
			h.Mu.Lock()
			h.remove(client)
			h.Mu.Unlock()

		case message := <-h.Broadcast:
			h.deliver(message)
		}
	}
}

// deliver : изменение без EventID (очистка хранилища, сброс текущего события) уходит во все комнаты
func (h *Hub) deliver(message *Message) {
	payload := mustMarshal(message)

	h.Mu.Lock()
	defer h.Mu.Unlock()

	for eventID, clients := range h.Clients {
		if message.EventID != "" && message.EventID != eventID {
			continue
		}
		for client := range clients {
			select {
			case client.Send <- payload:
			default:
				h.remove(client)
			}
		}
	}
}

// remove : вызывается под h.Mu
func (h *Hub) remove(client *Client) {
	clients, ok := h.Clients[client.EventID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.Clients, client.EventID)
	}
}

func (h *Hub) closeAll() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for _, clients := range h.Clients {
		for client := range clients {
			h.remove(client)
		}
	}
}

// ClientCount : число подключений в комнате события
func (h *Hub) ClientCount(eventID string) int {
	h.Mu.RLock()
	defer h.Mu.RUnlock()
	return len(h.Clients[eventID])
}

// Done : закрывается, когда Run завершился
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
