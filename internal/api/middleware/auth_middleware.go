package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/parisboutique/storefront/internal/auth"
	"github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/utils/response"
)

type sessionContextKey string

// SessionContextKey holds the validated AuthSession in the request context.
const SessionContextKey = sessionContextKey("session")

// FingerprintHeader carries the client-computed device fingerprint. When
// absent, the fingerprint check is skipped at the middleware layer.
const FingerprintHeader = "X-Client-Fingerprint"

type AuthMiddleware struct {
	manager *auth.Manager
}

func NewAuthMiddleware(manager *auth.Manager) *AuthMiddleware {
	return &AuthMiddleware{manager: manager}
}

// Authenticate verifies the bearer token signature, then checks the token
// against the persisted operator session. Both must agree.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		tokenString := tokenParts[1]

		claims, err := m.manager.ParseToken(tokenString)
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		session, err := m.manager.ValidateSession(r.Context(), tokenString, r.Header.Get(FingerprintHeader))
		if err != nil {
			logger.Warn("Session validation failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)

		requestScopedLogger := logger.With(slog.String("username", claims.Username))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// SessionFromContext returns the validated session, if any.
func SessionFromContext(ctx context.Context) (*models.AuthSession, bool) {
	session, ok := ctx.Value(SessionContextKey).(*models.AuthSession)
	return session, ok
}
