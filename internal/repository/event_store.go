package repository

import (
	"fmt"
	"photo-drop/internal/model"
	"photo-drop/internal/session"
	"sync"
	"time"
)

// EventStore : единственный владелец событий, загрузок и гостевых сессий процесса.
// Все мутации выполняются под одной блокировкой, подписчики получают уведомление
// уже после того, как блокировка снята.
type EventStore struct {
	mu           sync.RWMutex
	events       []model.Event
	uploads      []model.Upload
	eventUploads []model.Upload
	currentID    string
	sessions     map[string]*session.GuestSession

	subMu       sync.RWMutex
	subscribers map[int]func(model.StoreChange)
	nextSubID   int
}

func NewEventStore() *EventStore {
	return &EventStore{
		sessions:    make(map[string]*session.GuestSession),
		subscribers: make(map[int]func(model.StoreChange)),
	}
}

// Subscribe : регистрирует подписчика, возвращает функцию отписки
func (s *EventStore) Subscribe(fn func(model.StoreChange)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *EventStore) notify(changes ...model.StoreChange) {
	s.subMu.RLock()
	subscribers := make([]func(model.StoreChange), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.RUnlock()

	for _, change := range changes {
		for _, fn := range subscribers {
			fn(change)
		}
	}
}

// AddEvent : добавляет событие и делает его текущим.
// Повторный id или токен приглашения отклоняется.
func (s *EventStore) AddEvent(event model.Event) error {
	s.mu.Lock()
	for _, existing := range s.events {
		if existing.ID == event.ID || existing.InviteToken == event.InviteToken {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", model.ErrDuplicateEvent, event.ID)
		}
	}

	stored := event.Clone()
	s.events = append(s.events, stored)
	s.currentID = stored.ID
	s.rebuildEventUploads()
	s.mu.Unlock()

	added := stored.Clone()
	s.notify(
		model.StoreChange{Type: model.ChangeEventAdded, EventID: added.ID, Event: &added},
		model.StoreChange{Type: model.ChangeCurrentEvent, EventID: added.ID},
	)
	return nil
}

// UpdateEvent : применяет patch атомарно; текущее событие хранится одной копией,
// поэтому изменение сразу видно и в списке, и как текущее
func (s *EventStore) UpdateEvent(id string, patch model.EventPatch, now time.Time) (*model.Event, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: событие %s", model.ErrNotFound, id)
	}

	updated := patch.Apply(s.events[idx])
	if !updated.UploadWindowStart.Before(updated.UploadDeadline) {
		s.mu.Unlock()
		return nil, model.ErrInvalidWindow
	}
	if len(updated.AllowedFileTypes) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: allowed file types must not be empty", model.ErrValidation)
	}
	updated.UpdatedAt = now
	s.events[idx] = updated
	s.mu.Unlock()

	result := updated.Clone()
	notified := updated.Clone()
	s.notify(model.StoreChange{Type: model.ChangeEventUpdated, EventID: id, Event: &notified})
	return &result, nil
}

// DeleteEvent : удаляет событие; загрузки события здесь не трогаются
func (s *EventStore) DeleteEvent(id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: событие %s", model.ErrNotFound, id)
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)
	wasCurrent := s.currentID == id
	if wasCurrent {
		s.currentID = ""
	}
	s.rebuildEventUploads()
	s.mu.Unlock()

	changes := []model.StoreChange{{Type: model.ChangeEventDeleted, EventID: id}}
	if wasCurrent {
		changes = append(changes, model.StoreChange{Type: model.ChangeCurrentEvent})
	}
	s.notify(changes...)
	return nil
}

func (s *EventStore) SetCurrentEvent(id string) error {
	s.mu.Lock()
	if s.indexOf(id) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: событие %s", model.ErrNotFound, id)
	}
	s.currentID = id
	s.rebuildEventUploads()
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeCurrentEvent, EventID: id})
	return nil
}

func (s *EventStore) ClearCurrentEvent() {
	s.mu.Lock()
	s.currentID = ""
	s.rebuildEventUploads()
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeCurrentEvent})
}

func (s *EventStore) CurrentEvent() (*model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(s.currentID)
	if idx < 0 {
		return nil, false
	}
	event := s.events[idx].Clone()
	return &event, true
}

func (s *EventStore) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]model.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event.Clone())
	}
	return events
}

func (s *EventStore) EventByID(id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: событие %s", model.ErrNotFound, id)
	}
	event := s.events[idx].Clone()
	return &event, nil
}

func (s *EventStore) EventByToken(token string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if token == "" {
		return nil, model.ErrNotFound
	}
	for _, event := range s.events {
		if event.InviteToken == token {
			found := event.Clone()
			return &found, nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *EventStore) TokenExists(token string) bool {
	_, err := s.EventByToken(token)
	return err == nil
}

// IncrementDownloads : счётчик экспорта только растёт
func (s *EventStore) IncrementDownloads(eventID string) (int, error) {
	s.mu.Lock()
	idx := s.indexOf(eventID)
	if idx < 0 {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: событие %s", model.ErrNotFound, eventID)
	}
	s.events[idx].DownloadsCount++
	count := s.events[idx].DownloadsCount
	updated := s.events[idx].Clone()
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeEventUpdated, EventID: eventID, Event: &updated})
	return count, nil
}

// AddUpload : добавляет загрузку в общий список и, если она относится к текущему
// событию, в его представление
func (s *EventStore) AddUpload(upload model.Upload) error {
	s.mu.Lock()
	if s.indexOf(upload.EventID) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: событие %s", model.ErrNotFound, upload.EventID)
	}

	s.uploads = append(s.uploads, upload)
	if upload.EventID == s.currentID {
		s.eventUploads = append(s.eventUploads, upload)
	}
	s.mu.Unlock()

	added := upload
	s.notify(model.StoreChange{Type: model.ChangeUploadAdded, EventID: upload.EventID, Upload: &added})
	return nil
}

// SetEventUploads : полностью заменяет загрузки текущего события.
// Загрузки других событий в общем списке не меняются.
func (s *EventStore) SetEventUploads(uploads []model.Upload) error {
	s.mu.Lock()
	if s.indexOf(s.currentID) < 0 {
		s.mu.Unlock()
		if len(uploads) == 0 {
			return nil
		}
		return model.ErrNoCurrentEvent
	}

	currentID := s.currentID
	for _, upload := range uploads {
		if upload.EventID != currentID {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", model.ErrForeignUpload, upload.ID)
		}
	}

	kept := make([]model.Upload, 0, len(s.uploads)+len(uploads))
	for _, upload := range s.uploads {
		if upload.EventID != currentID {
			kept = append(kept, upload)
		}
	}
	s.uploads = append(kept, uploads...)
	s.rebuildEventUploads()
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeUploadsReplace, EventID: currentID, Count: len(uploads)})
	return nil
}

func (s *EventStore) RemoveUpload(eventID string, uploadID string) (*model.Upload, error) {
	s.mu.Lock()
	for i, upload := range s.uploads {
		if upload.ID == uploadID && upload.EventID == eventID {
			s.uploads = append(s.uploads[:i], s.uploads[i+1:]...)
			s.rebuildEventUploads()
			s.mu.Unlock()

			removed := upload
			s.notify(model.StoreChange{Type: model.ChangeUploadRemoved, EventID: eventID, Upload: &removed})
			return &removed, nil
		}
	}
	s.mu.Unlock()
	return nil, fmt.Errorf("%w: загрузка %s", model.ErrNotFound, uploadID)
}

// RemoveUploadsForEvent : удаляет все загрузки события и возвращает их
func (s *EventStore) RemoveUploadsForEvent(eventID string) []model.Upload {
	s.mu.Lock()
	var removed []model.Upload
	kept := make([]model.Upload, 0, len(s.uploads))
	for _, upload := range s.uploads {
		if upload.EventID == eventID {
			removed = append(removed, upload)
			continue
		}
		kept = append(kept, upload)
	}
	s.uploads = kept
	s.rebuildEventUploads()
	s.mu.Unlock()

	if len(removed) > 0 {
		s.notify(model.StoreChange{Type: model.ChangeUploadsReplace, EventID: eventID})
	}
	return removed
}

func (s *EventStore) Uploads() []model.Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUploads(s.uploads)
}

// EventUploads : загрузки текущего события
func (s *EventStore) EventUploads() []model.Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUploads(s.eventUploads)
}

func (s *EventStore) UploadsForEvent(eventID string) []model.Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterUploads(s.uploads, eventID)
}

func (s *EventStore) PutSession(guestSession *session.GuestSession) error {
	s.mu.Lock()
	if s.indexOf(guestSession.EventID) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: событие %s", model.ErrNotFound, guestSession.EventID)
	}
	s.sessions[guestSession.ID] = guestSession
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeSessionOpened, EventID: guestSession.EventID})
	return nil
}

func (s *EventStore) Session(id string) (*session.GuestSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guestSession, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: сессия %s", model.ErrNotFound, id)
	}
	return guestSession, nil
}

func (s *EventStore) RemoveSession(id string) bool {
	s.mu.Lock()
	guestSession, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.notify(model.StoreChange{Type: model.ChangeSessionClosed, EventID: guestSession.EventID})
	}
	return ok
}

func (s *EventStore) SessionsForEvent(eventID string) []*session.GuestSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []*session.GuestSession
	for _, guestSession := range s.sessions {
		if guestSession.EventID == eventID {
			sessions = append(sessions, guestSession)
		}
	}
	return sessions
}

// RemoveSessionsForEvent : закрывает все гостевые сессии события
func (s *EventStore) RemoveSessionsForEvent(eventID string) int {
	s.mu.Lock()
	removed := 0
	for id, guestSession := range s.sessions {
		if guestSession.EventID == eventID {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.notify(model.StoreChange{Type: model.ChangeSessionClosed, EventID: eventID, Count: removed})
	}
	return removed
}

// Clear : сбрасывает хранилище в пустое состояние, повторный вызов ничего не меняет
func (s *EventStore) Clear() {
	s.mu.Lock()
	s.events = nil
	s.uploads = nil
	s.eventUploads = nil
	s.currentID = ""
	s.sessions = make(map[string]*session.GuestSession)
	s.mu.Unlock()

	s.notify(model.StoreChange{Type: model.ChangeCleared})
}

func (s *EventStore) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, event := range s.events {
		if event.ID == id {
			return i
		}
	}
	return -1
}

// rebuildEventUploads : вызывается под s.mu
func (s *EventStore) rebuildEventUploads() {
	s.eventUploads = filterUploads(s.uploads, s.currentID)
}

func copyUploads(uploads []model.Upload) []model.Upload {
	copied := make([]model.Upload, len(uploads))
	copy(copied, uploads)
	return copied
}

func filterUploads(uploads []model.Upload, eventID string) []model.Upload {
	filtered := make([]model.Upload, 0)
	if eventID == "" {
		return filtered
	}
	for _, upload := range uploads {
		if upload.EventID == eventID {
			filtered = append(filtered, upload)
		}
	}
	return filtered
}
