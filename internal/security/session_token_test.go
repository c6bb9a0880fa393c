package security

import (
	"net/http"
	"net/http/httptest"
	"photo-drop/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestTokenService() *SessionTokenService {
	service := NewSessionTokenService("test-secret", time.Hour)
	service.now = func() time.Time { return issuedAt }
	return service
}

func TestSessionToken_IssueAndParse(t *testing.T) {
	service := newTestTokenService()

	token, err := service.Issue("s1", "evt_1")
	require.NoError(t, err)

	claims, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)
	assert.Equal(t, "evt_1", claims.EventID)
	assert.True(t, claims.ExpiresAt.Equal(issuedAt.Add(time.Hour)))
}

func TestSessionToken_Expired(t *testing.T) {
	service := newTestTokenService()
	token, err := service.Issue("s1", "evt_1")
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	_, err = service.Parse(token)
	assert.Error(t, err)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := newTestTokenService().Issue("s1", "evt_1")
	require.NoError(t, err)

	other := NewSessionTokenService("other-secret", time.Hour)
	other.now = func() time.Time { return issuedAt }

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestSessionToken_WrongAlgorithm(t *testing.T) {
	service := newTestTokenService()
	claims := Claims{
		SessionID: "s1",
		EventID:   "evt_1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Parse(token)
	assert.Error(t, err)
}

func TestSessionMiddleware(t *testing.T) {
	service := newTestTokenService()
	token, err := service.Issue("s1", "evt_1")
	require.NoError(t, err)

	var got *model.SessionClaims
	handler := SessionMiddleware(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Bearer заголовок", func(t *testing.T) {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/public/session", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "s1", got.SessionID)
	})

	t.Run("cookie", func(t *testing.T) {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/public/session", nil)
		req.AddCookie(SessionCookie(token, issuedAt.Add(time.Hour)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got)
		assert.Equal(t, "evt_1", got.EventID)
	})

	t.Run("без токена", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("мусорный токен", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public/session", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	_, err := GetClaimsFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.Error(t, err)
}
