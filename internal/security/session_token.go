package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"photo-drop/internal/model"
	"photo-drop/internal/ports"
	"photo-drop/internal/util"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	SessionContextKey contextKey = "guest_session"
	sessionCookieName            = "photo_drop_session"
	issuer                       = "photo-drop"
)

type Claims struct {
	SessionID string `json:"session_id"`
	EventID   string `json:"event_id"`
	jwt.RegisteredClaims
}

// SessionTokenService : подписывает идентификатор гостевой сессии, чтобы гость не мог подставить чужой
type SessionTokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewSessionTokenService(secretKey string, ttl time.Duration) *SessionTokenService {
	return &SessionTokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (service *SessionTokenService) Issue(sessionID string, eventID string) (string, error) {
	now := service.now()
	claims := Claims{
		SessionID: sessionID,
		EventID:   eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(service.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", util.LogError("[SessionToken] ошибка подписи токена", err)
	}
	return signed, nil
}

func (service *SessionTokenService) Parse(tokenStr string) (*model.SessionClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secretKey, nil
	}, jwt.WithTimeFunc(service.now))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("невалидный токен сессии: %w", err)
	}

	result := &model.SessionClaims{
		SessionID: claims.SessionID,
		EventID:   claims.EventID,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

// SessionMiddleware : достаёт токен из Authorization или cookie и кладёт claims в контекст
func SessionMiddleware(tokens ports.SessionTokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tokenStr := extractToken(request)
			if tokenStr == "" {
				util.HandleError(writer, "сессия не найдена", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(tokenStr)
			if err != nil {
				log.Printf("[SessionMiddleware] %v", err)
				util.HandleError(writer, "невалидный токен сессии", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(request.Context(), SessionContextKey, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func extractToken(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimPrefix(authorizationHeader, "Bearer ")
	}
	if cookie, err := request.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionCookie : cookie с токеном для браузерного клиента
func SessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/public",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie : удаляет cookie при выходе
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/public",
		MaxAge:   -1,
		HttpOnly: true,
	}
}

func GetClaimsFromContext(ctx context.Context) (*model.SessionClaims, error) {
	claims, ok := ctx.Value(SessionContextKey).(*model.SessionClaims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("гостевая сессия не найдена")
	}
	return claims, nil
}
