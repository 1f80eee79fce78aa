// Package config resolves CLI settings: defaults, then an optional YAML
// file, then environment variables. Flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tobsdb/invdb/internal/store"
	"github.com/tobsdb/invdb/pkg"
	"gopkg.in/yaml.v3"
)

const (
	EnvDataPath = "INVDB_DATA"
	EnvLogPath  = "INVDB_LOG"
)

type Config struct {
	DataPath   string `yaml:"data"`
	LogPath    string `yaml:"log"`
	BackupPath string `yaml:"backup"`

	LowStockThreshold int64  `yaml:"low_stock_threshold"`
	LogTail           int    `yaml:"log_tail"`
	LogLevel          string `yaml:"log_level"`

	RefreshIndexesOnUpdate bool `yaml:"refresh_indexes_on_update"`
}

func Default() Config {
	return Config{
		DataPath:          "products.db",
		LogPath:           "operations.log",
		BackupPath:        "products_backup.db",
		LowStockThreshold: store.DefaultLowStockThreshold,
		LogTail:           store.DefaultLogTail,
		LogLevel:          pkg.LogLevelErrOnly.String(),
	}
}

// Load reads path over the defaults and then applies the environment.
// An empty path skips the file; a path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("Failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("Invalid config %s: %w", path, err)
		}
	}

	cfg = cfg.ApplyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

func (c Config) ApplyEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvDataPath); ok {
		c.DataPath = v
	}
	if v, ok := lookup(EnvLogPath); ok {
		c.LogPath = v
	}
	return c
}

func (c Config) Validate() error {
	var errs []error
	if c.LowStockThreshold < 0 {
		errs = append(errs, errors.New("low_stock_threshold cannot be negative"))
	}
	if c.LogTail < 0 {
		errs = append(errs, errors.New("log_tail cannot be negative"))
	}
	if _, err := pkg.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Level() pkg.LogLevel {
	level, err := pkg.ParseLogLevel(c.LogLevel)
	if err != nil {
		return pkg.LogLevelErrOnly
	}
	return level
}

// StoreSettings maps the config onto a store. An empty DataPath keeps the
// store in memory.
func (c Config) StoreSettings() store.Settings {
	return store.Settings{
		DataPath:               c.DataPath,
		LogPath:                c.LogPath,
		RefreshIndexesOnUpdate: c.RefreshIndexesOnUpdate,
	}
}
