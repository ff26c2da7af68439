package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "secret")
	t.Setenv("SAVE_DIR", "/data/incoming")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_IPS", "100.64.0.1, 100.64.0.2")
	t.Setenv("FETCH_TIMEOUT_SEC", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, "/data/incoming", cfg.SaveDir)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"100.64.0.1", "100.64.0.2"}, cfg.AllowedIPs)
	assert.Equal(t, 10, cfg.Fetch.TimeoutSec)
	assert.Equal(t, 95, cfg.JPEGQuality)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_TOKEN")
}

func TestLoadBadQuality(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "secret")
	t.Setenv("JPEG_QUALITY", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList("a"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
