package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReturnRateLimit)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 900, cfg.Cache.ConfirmTTLSeconds)
	assert.Equal(t, "equipment-exports", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nDATABASE_DRIVER=sqlite\nDATABASE_NAME=:memory:\nCACHE_ENABLED=true\nPIN_SECRET=s3cret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"SERVER_PORT", "DATABASE_DRIVER", "DATABASE_NAME", "CACHE_ENABLED", "PIN_SECRET"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Name)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "s3cret", cfg.Pin.Secret)
}
