package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/tobsdb/invdb/internal/config"
	"github.com/tobsdb/invdb/pkg"
	"gotest.tools/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invdb.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvDataPath, "")
		os.Unsetenv(EnvDataPath)
		t.Setenv(EnvLogPath, "")
		os.Unsetenv(EnvLogPath)

		cfg, err := Load("")
		assert.NilError(t, err)
		assert.DeepEqual(t, cfg, Default())
		assert.Equal(t, cfg.DataPath, "products.db")
		assert.Equal(t, cfg.LogPath, "operations.log")
		assert.Equal(t, cfg.BackupPath, "products_backup.db")
		assert.Equal(t, cfg.LowStockThreshold, int64(5))
		assert.Equal(t, cfg.LogTail, 200)
		assert.Equal(t, cfg.Level(), pkg.LogLevelErrOnly)
	})

	t.Run("file over defaults", func(t *testing.T) {
		t.Setenv(EnvDataPath, "")
		os.Unsetenv(EnvDataPath)
		t.Setenv(EnvLogPath, "")
		os.Unsetenv(EnvLogPath)

		path := writeConfig(t, `
data: /var/lib/invdb/products.db
low_stock_threshold: 2
log_level: debug
refresh_indexes_on_update: true
`)
		cfg, err := Load(path)
		assert.NilError(t, err)
		assert.Equal(t, cfg.DataPath, "/var/lib/invdb/products.db")
		assert.Equal(t, cfg.LogPath, "operations.log")
		assert.Equal(t, cfg.LowStockThreshold, int64(2))
		assert.Equal(t, cfg.Level(), pkg.LogLevelDebug)

		settings := cfg.StoreSettings()
		assert.Equal(t, settings.DataPath, "/var/lib/invdb/products.db")
		assert.Assert(t, settings.RefreshIndexesOnUpdate)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv(EnvDataPath, "env.db")
		t.Setenv(EnvLogPath, "")

		cfg, err := Load(writeConfig(t, "data: file.db\nlog: file.log\n"))
		assert.NilError(t, err)
		assert.Equal(t, cfg.DataPath, "env.db")
		// set but empty disables the log
		assert.Equal(t, cfg.LogPath, "")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "Failed to read config")

		_, err = Load(writeConfig(t, "data: [unclosed"))
		assert.ErrorContains(t, err, "Invalid config")

		_, err = Load(writeConfig(t, "log_tail: -1\nlog_level: loud\n"))
		assert.ErrorContains(t, err, "log_tail cannot be negative")
		assert.ErrorContains(t, err, "Invalid log level: loud")
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvLogPath: "/tmp/ops.log"}
	cfg := Default().ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	assert.Equal(t, cfg.DataPath, "products.db")
	assert.Equal(t, cfg.LogPath, "/tmp/ops.log")
}
