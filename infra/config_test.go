package infra

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TOKEN_TTL", "MAX_UPLOAD_SIZE", "FILE_STORE", "ADMIN_EMAIL"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, "local", cfg.FileStore)
	assert.Equal(t, "admin@boutique.local", cfg.AdminEmail)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	os.Unsetenv("ADMIN_EMAIL")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_EMAIL=owner@shop.test\nTOKEN_TTL=30m\n"), 0o600))
	t.Setenv("TOKEN_TTL", "")
	os.Unsetenv("TOKEN_TTL")

	require.True(t, Initialize(path))
	cfg := LoadConfig()

	assert.Equal(t, "owner@shop.test", cfg.AdminEmail)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.False(t, Initialize(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSetupFileStore(t *testing.T) {
	store, err := SetupFileStore(context.Background(), &Config{FileStore: "local", UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.NotNil(t, store)

	_, err = SetupFileStore(context.Background(), &Config{FileStore: "cloudinary"})
	assert.Error(t, err)

	_, err = SetupFileStore(context.Background(), &Config{FileStore: "ftp"})
	assert.Error(t, err)
}
