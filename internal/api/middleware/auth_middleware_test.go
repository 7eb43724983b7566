package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parisboutique/storefront/internal/api/middleware"
	"github.com/parisboutique/storefront/internal/auth"
	"github.com/parisboutique/storefront/internal/config"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newManagerWithSession(t *testing.T) (*auth.Manager, *models.AuthSession, *models.LoginRequest) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	manager := auth.NewManager(store.NewMemoryStore(), &config.Security{
		JWTKey:            "middleware-test-key",
		AdminUserID:       "admin-001",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		AdminRole:         "super_admin",
	})

	req := &models.LoginRequest{
		Username:       "admin",
		Password:       "password",
		UserAgent:      "test-agent",
		Language:       "en-US",
		Screen:         "1920x1080",
		TimezoneOffset: 0,
	}

	session, err := manager.Authenticate(context.Background(), req)
	require.NoError(t, err)

	return manager, session, req
}

func protectedHandler(sawSession *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, *sawSession = middleware.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	manager, session, loginReq := newManagerWithSession(t)

	sawSession := false
	handler := middleware.NewAuthMiddleware(manager).Authenticate(protectedHandler(&sawSession))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set(middleware.FingerprintHeader,
		auth.Fingerprint(loginReq.UserAgent, loginReq.Language, loginReq.Screen, loginReq.TimezoneOffset))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawSession, "downstream handler must see the validated session")
}

func TestAuthenticateMissingHeader(t *testing.T) {
	manager, _, _ := newManagerWithSession(t)

	sawSession := false
	handler := middleware.NewAuthMiddleware(manager).Authenticate(protectedHandler(&sawSession))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sawSession)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	manager, session, _ := newManagerWithSession(t)

	sawSession := false
	handler := middleware.NewAuthMiddleware(manager).Authenticate(protectedHandler(&sawSession))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Token "+session.Token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateForgedToken(t *testing.T) {
	manager, _, _ := newManagerWithSession(t)

	sawSession := false
	handler := middleware.NewAuthMiddleware(manager).Authenticate(protectedHandler(&sawSession))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer not.a.real.token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sawSession)
}

func TestAuthenticateFingerprintMismatch(t *testing.T) {
	manager, session, _ := newManagerWithSession(t)

	sawSession := false
	handler := middleware.NewAuthMiddleware(manager).Authenticate(protectedHandler(&sawSession))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	req.Header.Set(middleware.FingerprintHeader, auth.Fingerprint("other-device", "fr-FR", "800x600", 60))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, sawSession)
}

func TestLoggingSetsRequestID(t *testing.T) {
	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		assert.NotNil(t, logger)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLoggingKeepsSuppliedRequestID(t *testing.T) {
	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get("X-Request-ID"))
}
