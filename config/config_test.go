package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "lapillo_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func clearOptional(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ORIGINS", "PUBLIC_BASE_URL",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD",
		"SMTP_FROM", "SMTP_FROM_NAME", "NOTIFY_TO",
		"SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD", "SEED_ADMIN_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresMongoURL(t *testing.T) {
	setRequired(t)
	t.Setenv("MONGO_URL", "")
	_, err := Load()
	assert.ErrorContains(t, err, "MONGO_URL")
}

func TestLoadRequiresDBName(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_NAME", "")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_NAME")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	clearOptional(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.Equal(t, "admin@example.com", cfg.SeedAdminEmail)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadPortGetsColonPrefix(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Port)
}

func TestLoadCORSOriginsSplit(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadPublicBaseURLTrimsSlash(t *testing.T) {
	setRequired(t)
	t.Setenv("PUBLIC_BASE_URL", "https://guida.example.com/")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://guida.example.com", cfg.PublicBaseURL)
}

func TestSMTPEnabled(t *testing.T) {
	assert.False(t, SMTP{Host: "smtp.example.com"}.Enabled())
	assert.True(t, SMTP{Host: "smtp.example.com", Username: "u", To: "host@example.com"}.Enabled())
}
