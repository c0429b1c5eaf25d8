package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are endpoint overrides read from the environment. They exist so
// mdget can be pointed at a mirror or a test server.
type Settings struct {
	APIURL      string        `env:"MDGET_API_URL"      envDefault:"https://api.modrinth.com/v2"`
	ManifestURL string        `env:"MDGET_MANIFEST_URL" envDefault:"https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"`
	// UserAgent overrides the signature built from the version when set.
	UserAgent   string        `env:"MDGET_USER_AGENT"`
	Timeout     time.Duration `env:"MDGET_TIMEOUT"      envDefault:"5s"`
}

// UserAgent returns the client signature for the given build version.
func UserAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("steviee/mdget/%s (https://github.com/steviee/mdget)", version)
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Timeout <= 0 {
		return Settings{}, fmt.Errorf("parse env: MDGET_TIMEOUT must be positive, got %s", s.Timeout)
	}
	return s, nil
}
