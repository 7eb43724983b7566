package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/parisboutique/storefront/internal/auth"
	"github.com/parisboutique/storefront/internal/config"
	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery staple"

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestManager(t *testing.T) (*auth.Manager, store.Store, *testClock) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Security{
		JWTKey:            "test-signing-key",
		AdminUserID:       "admin-001",
		AdminUsername:     "boutique-admin",
		AdminPasswordHash: string(hash),
		AdminEmail:        "admin@example.com",
		AdminRole:         "super_admin",
	}

	// The jwt library validates exp against the wall clock, so the test
	// clock starts at real now instead of a fixed date.
	clock := &testClock{now: time.Now().UTC().Truncate(time.Second)}
	st := store.NewMemoryStore()

	return auth.NewManager(st, cfg, auth.WithClock(clock.Now)), st, clock
}

func loginRequest(rememberMe bool) *models.LoginRequest {
	return &models.LoginRequest{
		Username:       "boutique-admin",
		Password:       testPassword,
		RememberMe:     rememberMe,
		UserAgent:      "Mozilla/5.0 (test)",
		Language:       "en-US",
		Screen:         "1920x1080",
		TimezoneOffset: -180,
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	manager, st, clock := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin-001", session.UserID)
	assert.Equal(t, "boutique-admin", session.Username)
	assert.Equal(t, "super_admin", session.Role)
	assert.Equal(t, clock.Now().Add(auth.SessionDuration).UTC().Format(time.RFC3339), session.ExpiresAt)
	assert.False(t, session.RememberMe)

	// The session must be persisted under the session key.
	_, err = st.Get(ctx, store.KeySession)
	require.NoError(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	req := loginRequest(false)
	req.Password = "wrong"

	_, err := manager.Authenticate(ctx, req)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
}

func TestAuthenticateWrongUsername(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	req := loginRequest(false)
	req.Username = "intruder"

	_, err := manager.Authenticate(ctx, req)
	assert.Error(t, err)
}

func TestValidateSession(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	req := loginRequest(false)
	session, err := manager.Authenticate(ctx, req)
	require.NoError(t, err)

	fingerprint := auth.Fingerprint(req.UserAgent, req.Language, req.Screen, req.TimezoneOffset)

	validated, err := manager.ValidateSession(ctx, session.Token, fingerprint)
	require.NoError(t, err)
	assert.Equal(t, session.Token, validated.Token)
}

func TestValidateSessionExpired(t *testing.T) {
	manager, st, clock := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)

	clock.Advance(auth.SessionDuration + time.Minute)

	_, err = manager.ValidateSession(ctx, session.Token, "")
	require.Error(t, err)

	// An expired session is cleared, not left behind.
	_, err = st.Get(ctx, store.KeySession)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestValidateSessionFingerprintMismatch(t *testing.T) {
	manager, st, _ := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)

	_, err = manager.ValidateSession(ctx, session.Token, auth.Fingerprint("other-agent", "fr-FR", "800x600", 0))
	require.Error(t, err)

	_, err = st.Get(ctx, store.KeySession)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestValidateSessionTokenMismatch(t *testing.T) {
	manager, _, clock := newTestManager(t)
	ctx := context.Background()

	stale, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)

	// A second login replaces the stored session and its token.
	clock.Advance(time.Second)
	current, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)
	require.NotEqual(t, stale.Token, current.Token)

	_, err = manager.ValidateSession(ctx, stale.Token, "")
	require.Error(t, err)

	// The stale token must not evict the operator's live session.
	validated, err := manager.ValidateSession(ctx, current.Token, "")
	require.NoError(t, err)
	assert.Equal(t, current.Token, validated.Token)
}

func TestValidateSessionExtendsRememberMe(t *testing.T) {
	manager, _, clock := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Authenticate(ctx, loginRequest(true))
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(auth.RememberMeDuration).UTC().Format(time.RFC3339), session.ExpiresAt)

	// Six days later the session is still valid and gets a fresh window.
	clock.Advance(6 * 24 * time.Hour)

	validated, err := manager.ValidateSession(ctx, session.Token, "")
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(auth.RememberMeDuration).UTC().Format(time.RFC3339), validated.ExpiresAt)

	// The extension outlives the original expiry.
	clock.Advance(2 * 24 * time.Hour)

	_, err = manager.ValidateSession(ctx, session.Token, "")
	assert.NoError(t, err)
}

func TestParseToken(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	session, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)

	claims, err := manager.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-001", claims.UserID)
	assert.Equal(t, "boutique-admin", claims.Username)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	manager, _, _ := newTestManager(t)

	_, err := manager.ParseToken("not.a.token")
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
}

func TestLogout(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Authenticate(ctx, loginRequest(false))
	require.NoError(t, err)
	require.True(t, manager.IsAuthenticated(ctx))

	require.NoError(t, manager.Logout(ctx))
	assert.False(t, manager.IsAuthenticated(ctx))
}

func TestFingerprintDeterministic(t *testing.T) {
	first := auth.Fingerprint("agent", "en-US", "1920x1080", -180)
	second := auth.Fingerprint("agent", "en-US", "1920x1080", -180)
	different := auth.Fingerprint("agent", "en-GB", "1920x1080", -180)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, different)
	assert.Len(t, first, 32)
}
