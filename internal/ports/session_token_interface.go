package ports

import "photo-drop/internal/model"

type SessionTokenService interface {
	Issue(sessionID string, eventID string) (string, error)
	Parse(token string) (*model.SessionClaims, error)
}
