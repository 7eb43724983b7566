package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parisboutique/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
env: development
http_server:
  address: ":9090"
store:
  path: /tmp/test-storefront.db
sync:
  poll_interval: 250ms
security:
  jwt_key: file-secret
  admin_username: boutique-admin
  admin_password_hash: $2a$10$abcdefghijklmnopqrstuv
contact:
  whatsapp_number: "211900000000"
`)

	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTPServer.Addr)
	assert.Equal(t, "/tmp/test-storefront.db", cfg.Store.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, "file-secret", cfg.Security.JWTKey)
	assert.Equal(t, "boutique-admin", cfg.Security.AdminUsername)
	assert.Equal(t, "211900000000", cfg.Contact.WhatsAppNumber)
}

func TestMustLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, `
security:
  jwt_key: defaults-secret
  admin_username: admin
  admin_password_hash: hash
`)

	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPServer.Addr)
	assert.Equal(t, "storefront.db", cfg.Store.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, "admin-001", cfg.Security.AdminUserID)
	assert.Equal(t, "super_admin", cfg.Security.AdminRole)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
http_server:
  address: ":9090"
security:
  jwt_key: file-secret
  admin_username: admin
  admin_password_hash: hash
`)

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("JWT_KEY", "env-secret")

	cfg := config.MustLoad()

	assert.Equal(t, ":7070", cfg.HTTPServer.Addr)
	assert.Equal(t, "env-secret", cfg.Security.JWTKey)
}
