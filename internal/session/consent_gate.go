package session

import (
	"fmt"
	"photo-drop/internal/model"
	"sync"
)

// ConsentGate : три независимых согласия одной гостевой сессии.
// NONE -> PARTIAL -> GRANTED, отзыв любого пункта возвращает GRANTED в PARTIAL.
type ConsentGate struct {
	mu    sync.RWMutex
	flags map[model.ConsentKind]bool
}

func NewConsentGate() *ConsentGate {
	return &ConsentGate{flags: make(map[model.ConsentKind]bool, len(model.ConsentKinds))}
}

func (g *ConsentGate) Acknowledge(kind model.ConsentKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", model.ErrUnknownConsent, kind)
	}

	g.mu.Lock()
	g.flags[kind] = true
	g.mu.Unlock()
	return nil
}

func (g *ConsentGate) Revoke(kind model.ConsentKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", model.ErrUnknownConsent, kind)
	}

	g.mu.Lock()
	delete(g.flags, kind)
	g.mu.Unlock()
	return nil
}

func (g *ConsentGate) Acknowledged(kind model.ConsentKind) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.flags[kind]
}

func (g *ConsentGate) State() model.ConsentState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch len(g.flags) {
	case 0:
		return model.ConsentNone
	case len(model.ConsentKinds):
		return model.ConsentGranted
	default:
		return model.ConsentPartial
	}
}

// IsGranted : единственный предикат, который проверяет AdmissionService
func (g *ConsentGate) IsGranted() bool {
	return g.State() == model.ConsentGranted
}

func (g *ConsentGate) Snapshot() map[model.ConsentKind]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snapshot := make(map[model.ConsentKind]bool, len(model.ConsentKinds))
	for _, kind := range model.ConsentKinds {
		snapshot[kind] = g.flags[kind]
	}
	return snapshot
}
