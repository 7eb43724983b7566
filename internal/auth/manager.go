package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parisboutique/storefront/internal/config"
	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionDuration applies to plain logins, RememberMeDuration when the
	// operator ticks "remember me".
	SessionDuration    = 2 * time.Hour
	RememberMeDuration = 7 * 24 * time.Hour
)

// Manager is the single-operator convenience gate for the admin surface.
// Credentials and session data live in the local store; this is not a
// security boundary.
type Manager struct {
	store  store.Store
	cfg    *config.Security
	jwtKey []byte
	now    func() time.Time
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(st store.Store, cfg *config.Security, opts ...Option) *Manager {
	manager := &Manager{
		store:  st,
		cfg:    cfg,
		jwtKey: []byte(cfg.JWTKey),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// Fingerprint derives the client fingerprint from client-reported
// attributes. The same inputs always yield the same fingerprint.
func Fingerprint(userAgent, language, screen string, timezoneOffset int) string {
	raw := strings.Join([]string{
		userAgent,
		language,
		screen,
		fmt.Sprintf("%d", timezoneOffset),
	}, "|")

	sum := sha256.Sum256([]byte(raw))

	return base64.StdEncoding.EncodeToString(sum[:])[:32]
}

// Authenticate checks the supplied credentials against the configured
// operator account and, on success, fabricates and persists a session.
func (m *Manager) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.AuthSession, error) {
	if req.Username != m.cfg.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(m.cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.UnauthorizedError("Invalid username or password. Please check your credentials and try again.")
	}

	now := m.now()

	duration := SessionDuration
	if req.RememberMe {
		duration = RememberMeDuration
	}

	expiresAt := now.Add(duration)

	claims := &models.Claims{
		UserID:   m.cfg.AdminUserID,
		Username: m.cfg.AdminUsername,
		Role:     m.cfg.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate session token").WithError(err)
	}

	session := &models.AuthSession{
		Token:       token,
		UserID:      m.cfg.AdminUserID,
		Username:    m.cfg.AdminUsername,
		Email:       m.cfg.AdminEmail,
		Role:        m.cfg.AdminRole,
		LoginTime:   now.UTC().Format(time.RFC3339),
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		Fingerprint: Fingerprint(req.UserAgent, req.Language, req.Screen, req.TimezoneOffset),
		RememberMe:  req.RememberMe,
	}

	if err := m.persistSession(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("Operator authenticated", slog.String("username", session.Username), slog.Bool("remember_me", session.RememberMe))

	return session, nil
}

// ValidateSession checks the persisted session against the presented token
// and fingerprint. Expiry, fingerprint mismatch, and unparsable records
// clear the stored session; a token mismatch only rejects the caller.
// RememberMe sessions get their expiry extended on each successful
// validation.
func (m *Manager) ValidateSession(ctx context.Context, token, fingerprint string) (*models.AuthSession, error) {
	data, err := m.store.Get(ctx, store.KeySession)
	if err != nil {
		return nil, appErrors.UnauthorizedError("No active session")
	}

	var session models.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		m.clearSession(ctx)
		return nil, appErrors.UnauthorizedError("Session record is corrupt")
	}

	// A stale token from an earlier login is rejected without clearing,
	// so it cannot log out the operator holding the current session.
	if token != "" && session.Token != token {
		return nil, appErrors.UnauthorizedError("Session token mismatch")
	}

	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil || m.now().After(expiresAt) {
		m.clearSession(ctx)
		return nil, appErrors.UnauthorizedError("Session expired")
	}

	if fingerprint != "" && session.Fingerprint != fingerprint {
		m.clearSession(ctx)
		return nil, appErrors.UnauthorizedError("Session fingerprint mismatch")
	}

	if session.RememberMe {
		session.ExpiresAt = m.now().Add(RememberMeDuration).UTC().Format(time.RFC3339)
		if err := m.persistSession(ctx, &session); err != nil {
			slog.Warn("Failed to extend remembered session", slog.String("error", err.Error()))
		}
	}

	return &session, nil
}

// ParseToken verifies the JWT signature and returns its claims. Used by the
// HTTP middleware before the stored session is consulted.
func (m *Manager) ParseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.jwtKey, nil
	})
	if err != nil {
		return nil, appErrors.UnauthorizedError("Invalid or expired token").WithError(err)
	}

	if !token.Valid {
		return nil, appErrors.UnauthorizedError("Invalid token")
	}

	return claims, nil
}

// Logout clears the persisted session.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, store.KeySession)
}

// IsAuthenticated reports whether a valid session exists.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, err := m.ValidateSession(ctx, "", "")
	return err == nil
}

func (m *Manager) persistSession(ctx context.Context, session *models.AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return appErrors.StorageError("Failed to serialize session").WithError(err)
	}

	if err := m.store.Set(ctx, store.KeySession, data); err != nil {
		return appErrors.StorageError("Failed to persist session").WithError(err)
	}

	return nil
}

func (m *Manager) clearSession(ctx context.Context) {
	if err := m.store.Delete(ctx, store.KeySession); err != nil {
		slog.Warn("Failed to clear session", slog.String("error", err.Error()))
	}
}
