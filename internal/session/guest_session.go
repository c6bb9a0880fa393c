package session

import (
	"photo-drop/internal/model"
	"sync"
	"time"
)

// GuestSession : состояние одного гостя по ссылке-приглашению.
// Создаётся при первом открытии ссылки, удаляется при выходе или очистке хранилища.
type GuestSession struct {
	ID        string
	EventID   string
	CreatedAt time.Time
	Consent   *ConsentGate

	mu             sync.Mutex
	guestName      string
	guestEmail     string
	uploadsCount   int
	inFlight       bool
	lastActivityAt time.Time
}

func NewGuestSession(id string, eventID string, now time.Time) *GuestSession {
	return &GuestSession{
		ID:             id,
		EventID:        eventID,
		CreatedAt:      now,
		Consent:        NewConsentGate(),
		lastActivityAt: now,
	}
}

func (s *GuestSession) SetAttribution(name, email string) {
	s.mu.Lock()
	s.guestName = name
	s.guestEmail = email
	s.mu.Unlock()
}

// Attribution : снимок имени и почты на момент вызова
func (s *GuestSession) Attribution() (name string, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guestName, s.guestEmail
}

// BeginBatch : false, если у сессии уже есть незавершённая пачка
func (s *GuestSession) BeginBatch(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return false
	}
	s.inFlight = true
	s.lastActivityAt = now
	return true
}

func (s *GuestSession) EndBatch(admitted int, now time.Time) {
	s.mu.Lock()
	s.inFlight = false
	s.uploadsCount += admitted
	s.lastActivityAt = now
	s.mu.Unlock()
}

func (s *GuestSession) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

func (s *GuestSession) Touch(now time.Time) {
	s.mu.Lock()
	s.lastActivityAt = now
	s.mu.Unlock()
}

func (s *GuestSession) View() model.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.SessionView{
		ID:             s.ID,
		EventID:        s.EventID,
		ConsentState:   s.Consent.State(),
		Consents:       s.Consent.Snapshot(),
		GuestName:      s.guestName,
		GuestEmail:     s.guestEmail,
		UploadsCount:   s.uploadsCount,
		InFlight:       s.inFlight,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.lastActivityAt,
	}
}
