package service

import (
	"context"
	"fmt"
	"log"
	"photo-drop/internal/model"
	"photo-drop/internal/ports"
	"photo-drop/internal/security"
	"photo-drop/internal/session"
	"photo-drop/internal/util"
	"strings"
	"time"
)

type GuestService struct {
	store          ports.EventStore
	tokens         ports.SessionTokenService
	audit          ports.ConsentAuditRepository
	hasher         *security.IPHasher
	consentVersion string
	now            func() time.Time
}

func NewGuestService(
	store ports.EventStore,
	tokens ports.SessionTokenService,
	audit ports.ConsentAuditRepository,
	hasher *security.IPHasher,
	consentVersion string,
) *GuestService {
	return &GuestService{
		store:          store,
		tokens:         tokens,
		audit:          audit,
		hasher:         hasher,
		consentVersion: consentVersion,
		now:            time.Now,
	}
}

// OpenSession : новая гостевая сессия по ссылке-приглашению и подписанный токен для неё
func (s *GuestService) OpenSession(ctx context.Context, inviteToken string) (*model.SessionView, string, error) {
	event, err := s.store.EventByToken(inviteToken)
	if err != nil {
		return nil, "", util.LogError("[GuestService] приглашение не найдено", err)
	}

	guestSession := session.NewGuestSession(util.GenerateID(), event.ID, s.now())
	if err := s.store.PutSession(guestSession); err != nil {
		return nil, "", util.LogError("[GuestService] не удалось сохранить сессию", err)
	}

	token, err := s.tokens.Issue(guestSession.ID, event.ID)
	if err != nil {
		s.store.RemoveSession(guestSession.ID)
		return nil, "", util.LogError("[GuestService] не удалось выпустить токен сессии", err)
	}

	log.Printf("[GuestService] открыта сессия %s для события %s", guestSession.ID, event.ID)
	view := guestSession.View()
	return &view, token, nil
}

func (s *GuestService) GetSession(ctx context.Context, sessionID string) (*model.SessionView, error) {
	guestSession, err := s.store.Session(sessionID)
	if err != nil {
		return nil, util.LogError("[GuestService] сессия не найдена", err)
	}
	view := guestSession.View()
	return &view, nil
}

// AcknowledgeConsent : запись в журнал идёт до смены флага, при ошибке журнала флаг не меняется
func (s *GuestService) AcknowledgeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error) {
	return s.recordConsent(ctx, sessionID, kind, true, meta)
}

func (s *GuestService) RevokeConsent(ctx context.Context, sessionID string, kind model.ConsentKind, meta model.RequestMeta) (*model.SessionView, error) {
	return s.recordConsent(ctx, sessionID, kind, false, meta)
}

func (s *GuestService) recordConsent(ctx context.Context, sessionID string, kind model.ConsentKind, granted bool, meta model.RequestMeta) (*model.SessionView, error) {
	if !kind.Valid() {
		return nil, util.LogError("[GuestService] неизвестное согласие", fmt.Errorf("%w: %s", model.ErrUnknownConsent, kind))
	}

	guestSession, err := s.store.Session(sessionID)
	if err != nil {
		return nil, util.LogError("[GuestService] сессия не найдена", err)
	}

	now := s.now()
	_, guestEmail := guestSession.Attribution()
	record := &model.ConsentRecord{
		ID:         util.GenerateID(),
		EventID:    guestSession.EventID,
		SessionID:  guestSession.ID,
		Kind:       kind,
		Version:    s.consentVersion,
		Granted:    granted,
		GuestEmail: guestEmail,
		IPHash:     s.hasher.Hash(meta.IPAddress),
		UserAgent:  meta.UserAgent,
		CreatedAt:  now,
	}
	if err := s.audit.Save(ctx, record); err != nil {
		return nil, util.LogError("[GuestService] не удалось записать согласие в журнал", err)
	}

	if granted {
		err = guestSession.Consent.Acknowledge(kind)
	} else {
		err = guestSession.Consent.Revoke(kind)
	}
	if err != nil {
		return nil, util.LogError("[GuestService] не удалось изменить согласие", err)
	}
	guestSession.Touch(now)

	view := guestSession.View()
	return &view, nil
}

// SetGuestInfo : имя и почта необязательны, но почта должна быть корректной
func (s *GuestService) SetGuestInfo(ctx context.Context, sessionID string, name string, email string) (*model.SessionView, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if email != "" && !util.ValidateEmail(email) {
		return nil, util.LogError("[GuestService] некорректная почта гостя",
			fmt.Errorf("%w: invalid email address", model.ErrValidation))
	}

	guestSession, err := s.store.Session(sessionID)
	if err != nil {
		return nil, util.LogError("[GuestService] сессия не найдена", err)
	}

	guestSession.SetAttribution(name, email)
	guestSession.Touch(s.now())

	view := guestSession.View()
	return &view, nil
}

func (s *GuestService) ListUploads(ctx context.Context, sessionID string) ([]model.Upload, error) {
	guestSession, err := s.store.Session(sessionID)
	if err != nil {
		return nil, util.LogError("[GuestService] сессия не найдена", err)
	}
	return s.store.UploadsForEvent(guestSession.EventID), nil
}

func (s *GuestService) CloseSession(ctx context.Context, sessionID string) error {
	if !s.store.RemoveSession(sessionID) {
		return util.LogError("[GuestService] сессия не найдена", fmt.Errorf("%w: сессия %s", model.ErrNotFound, sessionID))
	}
	return nil
}

// ConsentHistory : журнал согласий текущей сессии
func (s *GuestService) ConsentHistory(ctx context.Context, sessionID string) ([]model.ConsentRecord, error) {
	if _, err := s.store.Session(sessionID); err != nil {
		return nil, util.LogError("[GuestService] сессия не найдена", err)
	}

	records, err := s.audit.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, util.LogError("[GuestService] не удалось прочитать журнал согласий", err)
	}
	return records, nil
}

// EventConsentLog : журнал согласий всех гостей события для организатора
func (s *GuestService) EventConsentLog(ctx context.Context, eventID string) ([]model.ConsentRecord, error) {
	if _, err := s.store.EventByID(eventID); err != nil {
		return nil, util.LogError("[GuestService] событие не найдено", err)
	}

	records, err := s.audit.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, util.LogError("[GuestService] не удалось прочитать журнал согласий", err)
	}
	return records, nil
}
