package state

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mdget", ConfigFileName)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "1.16.5", cfg.Version)
	assert.Equal(t, "fabric", cfg.Loader)
	assert.Equal(t, "1.16.5", cfg.String())
}

func TestLoadConfig_CreatesDefaultIfMissing(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, toml.Unmarshal(data, &onDisk))
	assert.Equal(t, "1.16.5", onDisk.Version)
	assert.Equal(t, "fabric", onDisk.Loader)
}

func TestLoadConfig_LoadsExisting(t *testing.T) {
	ctx := context.Background()
	path := testConfigPath(t)

	require.NoError(t, SaveConfig(ctx, path, &Config{Version: "1.20.1", Loader: "quilt"}))

	cfg, err := LoadConfig(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", cfg.Version)
	assert.Equal(t, "quilt", cfg.Loader)
}

func TestLoadConfig_EmptyFieldsUseDefaults(t *testing.T) {
	path := testConfigPath(t)
	require.NoError(t, EnsureDir(filepath.Dir(path)))
	require.NoError(t, os.WriteFile(path, []byte("version = \"\"\nloader = \"forge\"\n"), 0644))

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, "forge", cfg.Loader)
}

func TestLoadConfig_QuarantinesCorruptFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantVersion string
		wantLoader  string
	}{
		{
			name:        "garbage",
			content:     "this is not valid TOML: {[}]",
			wantVersion: DefaultVersion,
			wantLoader:  DefaultLoader,
		},
		{
			name:        "wrong type keeps other field",
			content:     "version = 1.2\nloader = \"forge\"\n",
			wantVersion: DefaultVersion,
			wantLoader:  "forge",
		},
		{
			name:        "broken line keeps other field",
			content:     "version = \"1.20.1\"\nloader = = broken\n",
			wantVersion: "1.20.1",
			wantLoader:  DefaultLoader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testConfigPath(t)
			require.NoError(t, EnsureDir(filepath.Dir(path)))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadConfig(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, cfg.Version)
			assert.Equal(t, tt.wantLoader, cfg.Loader)

			// the original bytes are preserved beside the config
			old, err := os.ReadFile(QuarantinePath(path))
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(old))

			// and the rewritten file parses cleanly
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			var onDisk Config
			require.NoError(t, toml.Unmarshal(data, &onDisk))
			assert.Equal(t, *cfg, onDisk)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	ctx := context.Background()
	path := testConfigPath(t)

	cfg := &Config{Version: "1.19.2", Loader: "fabric"}
	require.NoError(t, SaveConfig(ctx, path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = '1.19.2'")
	assert.Contains(t, string(data), "loader = 'fabric'")

	_, err = os.Stat(QuarantinePath(path))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveConfig_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "empty version", cfg: &Config{Version: "", Loader: "fabric"}},
		{name: "blank version", cfg: &Config{Version: "  ", Loader: "fabric"}},
		{name: "empty loader", cfg: &Config{Version: "1.20.1", Loader: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testConfigPath(t)
			require.Error(t, SaveConfig(ctx, path, tt.cfg))

			_, err := os.Stat(path)
			assert.True(t, os.IsNotExist(err), "nothing should be written")
		})
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(DefaultConfig()))
	assert.NoError(t, ValidateConfig(&Config{Version: "1.14 Pre-Release 5", Loader: "Fabric"}))
	assert.Error(t, ValidateConfig(nil))
	assert.Error(t, ValidateConfig(&Config{Version: "1.20.1"}))
	assert.Error(t, ValidateConfig(&Config{Loader: "fabric"}))
}

func TestConfig_AnythingLoadedCanBeSaved(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "version with spaces",
			content: "version = \"1.14 Pre-Release 5\"\nloader = \"fabric\"\n",
			want:    Config{Version: "1.14 Pre-Release 5", Loader: "fabric"},
		},
		{
			name:    "capitalised loader",
			content: "version = \"1.20.1\"\nloader = \"Fabric\"\n",
			want:    Config{Version: "1.20.1", Loader: "Fabric"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testConfigPath(t)
			require.NoError(t, EnsureDir(filepath.Dir(path)))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadConfig(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)

			require.NoError(t, SaveConfig(ctx, path, cfg))

			reloaded, err := LoadConfig(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *reloaded)
		})
	}
}

func TestConfig_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := testConfigPath(t)

	_, err := LoadConfig(ctx, path)
	require.ErrorIs(t, err, context.Canceled)

	err = SaveConfig(ctx, path, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing should be written")
}

func TestConfig_ConcurrentSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := testConfigPath(t)
	versions := []string{"1.18.2", "1.19.4", "1.20.1", "1.20.4"}

	var wg sync.WaitGroup
	for _, v := range versions {
		wg.Add(2)
		go func(version string) {
			defer wg.Done()
			assert.NoError(t, SaveConfig(ctx, path, &Config{Version: version, Loader: "fabric"}))
		}(v)
		go func() {
			defer wg.Done()
			cfg, err := LoadConfig(ctx, path)
			if assert.NoError(t, err) {
				assert.Equal(t, "fabric", cfg.Loader)
			}
		}()
	}
	wg.Wait()

	_, err := os.Stat(QuarantinePath(path))
	assert.True(t, os.IsNotExist(err), "concurrent access must never look corrupt")
}
