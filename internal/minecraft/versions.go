package minecraft

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	// VersionManifestURL is the Mojang endpoint for the version manifest.
	VersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 5 * time.Second

	// UserAgent is sent when Config.UserAgent is empty.
	UserAgent = "steviee/mdget/dev (https://github.com/steviee/mdget)"
)

// Version types as they appear in the manifest.
const (
	TypeRelease  = "release"
	TypeSnapshot = "snapshot"
	TypeAll      = "all"
)

// VersionManifest represents the Mojang version manifest response.
type VersionManifest struct {
	Latest struct {
		Release  string `json:"release" yaml:"release"`
		Snapshot string `json:"snapshot" yaml:"snapshot"`
	} `json:"latest" yaml:"latest"`
	Versions []VersionInfo `json:"versions" yaml:"versions"`
}

// VersionInfo represents a single Minecraft version entry.
type VersionInfo struct {
	ID              string `json:"id" yaml:"id"`
	Type            string `json:"type" yaml:"type"` // "release", "snapshot", "old_beta", "old_alpha"
	URL             string `json:"url" yaml:"url"`
	Time            string `json:"time" yaml:"time"`
	ReleaseTime     string `json:"releaseTime" yaml:"release_time"`
	SHA1            string `json:"sha1,omitempty" yaml:"sha1,omitempty"`
	ComplianceLevel int    `json:"complianceLevel" yaml:"compliance_level"`
}

// Client is a Minecraft version manifest client.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	manifestURL string
}

// Config holds client configuration.
type Config struct {
	// URL overrides VersionManifestURL.
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new Minecraft version manifest client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.URL == "" {
		config.URL = VersionManifestURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	slog.Debug("creating Minecraft version manifest client",
		"url", config.URL,
		"timeout", config.Timeout)

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		userAgent:   config.UserAgent,
		manifestURL: config.URL,
	}
}

// GetVersionManifest fetches the version manifest.
// Every failure wraps ErrConnectivity: mdget uses this call as its
// connectivity probe before doing anything else.
func (c *Client) GetVersionManifest(ctx context.Context) (*VersionManifest, error) {
	manifest, err := c.fetchManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	return manifest, nil
}

func (c *Client) fetchManifest(ctx context.Context) (*VersionManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching Minecraft version manifest",
		"url", c.manifestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var manifest VersionManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	slog.Debug("fetched version manifest",
		"total_versions", len(manifest.Versions),
		"latest_release", manifest.Latest.Release,
		"latest_snapshot", manifest.Latest.Snapshot)

	return &manifest, nil
}

// FindVersion looks up a version by exact id.
func (m *VersionManifest) FindVersion(id string) (*VersionInfo, error) {
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			return &m.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, id)
}

// FilterVersions filters versions by type and applies a limit.
// Valid types are "release", "snapshot", or "all".
// If limit is 0 or negative, all matching versions are returned.
func FilterVersions(versions []VersionInfo, versionType string, limit int) []VersionInfo {
	filtered := make([]VersionInfo, 0)

	for _, v := range versions {
		if versionType != TypeAll && v.Type != versionType {
			continue
		}

		filtered = append(filtered, v)

		if limit > 0 && len(filtered) >= limit {
			break
		}
	}

	return filtered
}
