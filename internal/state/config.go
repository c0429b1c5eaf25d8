package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultVersion is the game version used when none is configured.
	DefaultVersion = "1.16.5"

	// DefaultLoader is the mod loader used when none is configured.
	DefaultLoader = "fabric"
)

// Config is the user's target: which game version and loader to fetch mods for.
type Config struct {
	Version string `toml:"version"`
	Loader  string `toml:"loader"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Version: DefaultVersion,
		Loader:  DefaultLoader,
	}
}

// String returns the configured game version.
func (c *Config) String() string {
	return c.Version
}

// fillDefaults replaces empty fields with their defaults and reports whether
// anything changed.
func (c *Config) fillDefaults() bool {
	changed := false
	if strings.TrimSpace(c.Version) == "" {
		c.Version = DefaultVersion
		changed = true
	}
	if strings.TrimSpace(c.Loader) == "" {
		c.Loader = DefaultLoader
		changed = true
	}
	return changed
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, it creates a new one with defaults.
// If the file can't be parsed, it is moved to path+".old", whatever fields
// can still be read from it are kept, and a fresh file is written.
// A canceled ctx aborts before the lock is taken.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	lock, err := LockFile(LockPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to lock config: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := writeConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		slog.Debug("created default config", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if parseErr := toml.Unmarshal(data, &cfg); parseErr != nil {
		backupPath := QuarantinePath(path)
		slog.Warn("failed to parse config file",
			"path", path,
			"moved_to", backupPath,
			"error", parseErr)

		if err := os.Rename(path, backupPath); err != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to move it aside: %w (original error: %v)", err, parseErr)
		}

		recovered := recoverConfig(data)
		if err := writeConfig(path, recovered); err != nil {
			return nil, fmt.Errorf("config file was corrupted (moved to %s), failed to save fresh config: %w", backupPath, err)
		}

		slog.Info("rebuilt config file",
			"version", recovered.Version,
			"loader", recovered.Loader)

		return recovered, nil
	}

	if cfg.fillDefaults() {
		slog.Debug("config had empty fields, using defaults",
			"version", cfg.Version,
			"loader", cfg.Loader)
	}

	return &cfg, nil
}

// SaveConfig writes cfg to path atomically. A canceled ctx aborts before the
// lock is taken.
func SaveConfig(ctx context.Context, path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	lock, err := LockFile(LockPath(path))
	if err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return writeConfig(path, cfg)
}

// writeConfig must be called with the config lock held.
func writeConfig(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// recoverConfig salvages fields from a document that failed strict decoding.
// It first tries the document as a generic table (this handles type errors
// such as `version = 1.2`), then falls back to decoding line by line so that
// one broken line does not lose the others.
func recoverConfig(data []byte) *Config {
	cfg := DefaultConfig()

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err == nil {
		applyFields(cfg, doc)
		return cfg
	}

	for _, line := range strings.Split(string(data), "\n") {
		var kv map[string]any
		if err := toml.Unmarshal([]byte(line), &kv); err != nil {
			continue
		}
		applyFields(cfg, kv)
	}

	return cfg
}

func applyFields(cfg *Config, doc map[string]any) {
	if v, ok := doc["version"].(string); ok && strings.TrimSpace(v) != "" {
		cfg.Version = v
	}
	if v, ok := doc["loader"].(string); ok && strings.TrimSpace(v) != "" {
		cfg.Loader = v
	}
}

// ValidateConfig checks that both fields are set. It applies the same rule
// LoadConfig does, so any file that loads can be saved again.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateVersion(cfg.Version); err != nil {
		return err
	}

	if err := ValidateLoaderName(cfg.Loader); err != nil {
		return err
	}

	return nil
}
