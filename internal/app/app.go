package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/steviee/mdget/internal/minecraft"
	"github.com/steviee/mdget/internal/modrinth"
	"github.com/steviee/mdget/internal/mods"
	"github.com/steviee/mdget/internal/state"
	"github.com/steviee/mdget/internal/ui"
)

// ErrUnknownLoader is returned when a loader is not offered by the registry.
var ErrUnknownLoader = errors.New("unknown mod loader")

// Options configures Open.
type Options struct {
	// ConfigPath overrides the default preference file location.
	ConfigPath string
	Settings   Settings
	Output     ui.Format
}

// App is the state of one mdget run: the clients, the version manifest
// fetched at startup and the user's preferences. Commands receive it at
// construction and use it once the root command has opened it.
type App struct {
	ConfigPath string
	Config     *state.Config
	Manifest   *minecraft.VersionManifest
	Output     ui.Format

	Modrinth  *modrinth.Client
	Minecraft *minecraft.Client
}

// New returns an unopened App.
func New() *App {
	return &App{Output: ui.FormatText}
}

// Open checks connectivity by fetching the version manifest, then loads the
// preference file. A manifest failure wraps minecraft.ErrConnectivity and
// leaves the preference file untouched.
func (a *App) Open(ctx context.Context, opts Options) error {
	path := opts.ConfigPath
	if path == "" {
		p, err := state.GetConfigPath()
		if err != nil {
			return fmt.Errorf("get config path: %w", err)
		}
		path = p
	}
	a.ConfigPath = path

	if opts.Output != "" {
		a.Output = opts.Output
	}

	a.Minecraft = minecraft.NewClient(&minecraft.Config{
		URL:       opts.Settings.ManifestURL,
		Timeout:   opts.Settings.Timeout,
		UserAgent: opts.Settings.UserAgent,
	})
	a.Modrinth = modrinth.NewClient(&modrinth.Config{
		BaseURL:   opts.Settings.APIURL,
		Timeout:   opts.Settings.Timeout,
		UserAgent: opts.Settings.UserAgent,
	})

	manifest, err := a.Minecraft.GetVersionManifest(ctx)
	if err != nil {
		return err
	}
	a.Manifest = manifest

	cfg, err := state.LoadConfig(ctx, path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.Config = cfg

	slog.Debug("session opened",
		"config", path,
		"version", cfg.Version,
		"loader", cfg.Loader)

	return nil
}

// Close persists the preferences. It is a no-op on an App that never opened.
func (a *App) Close(ctx context.Context) error {
	if a.Config == nil {
		return nil
	}
	if err := state.SaveConfig(ctx, a.ConfigPath, a.Config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Target returns the configured game version and loader.
func (a *App) Target() mods.Target {
	return mods.Target{GameVersion: a.Config.Version, Loader: a.Config.Loader}
}

// SetVersion changes the game version after checking it exists in the manifest.
func (a *App) SetVersion(id string) error {
	if err := state.ValidateVersion(id); err != nil {
		return err
	}
	if _, err := a.Manifest.FindVersion(id); err != nil {
		return err
	}
	a.Config.Version = id
	return nil
}

// SetLoader changes the mod loader after checking the registry offers it.
func (a *App) SetLoader(ctx context.Context, name string) error {
	if err := state.ValidateLoader(name); err != nil {
		return err
	}

	loaders, err := a.Modrinth.GetLoaders(ctx)
	if err != nil {
		return fmt.Errorf("list loaders: %w", err)
	}
	if !modrinth.HasLoader(loaders, name) {
		return fmt.Errorf("%w: %q", ErrUnknownLoader, name)
	}

	a.Config.Loader = name
	return nil
}
