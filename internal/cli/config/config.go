package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/state"
	"github.com/steviee/mdget/internal/ui"
)

// ConfigOutput is the machine-readable result of "config show".
type ConfigOutput struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
	Loader  string `json:"loader" yaml:"loader"`
}

// PathOutput is the machine-readable result of "config path".
type PathOutput struct {
	Path       string `json:"path" yaml:"path"`
	Quarantine string `json:"quarantine" yaml:"quarantine"`
}

// NewCommand creates the config command group. Without a subcommand it
// behaves like "config show".
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the preference file",
		Long: `Show the preference file and the target it holds.

The target game version and mod loader are stored in
~/.config/mdget/config.toml by default. Change them with "mdget version set"
and "mdget loader set". A file that can no longer be parsed is moved to
config.toml.old and replaced with a fresh one.`,
		Example: `  # View current configuration
  mdget config show

  # Show configuration file path
  mdget config path`,
		Aliases: []string{"cfg"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), a)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the preference file path and its settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), a)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preference file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := PathOutput{
				Path:       a.ConfigPath,
				Quarantine: state.QuarantinePath(a.ConfigPath),
			}
			return ui.Render(cmd.OutOrStdout(), a.Output, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Path)
				return err
			})
		},
	})

	return cmd
}

func runShow(w io.Writer, a *app.App) error {
	out := ConfigOutput{
		Path:    a.ConfigPath,
		Version: a.Config.Version,
		Loader:  a.Config.Loader,
	}

	return ui.Render(w, a.Output, out, func(w io.Writer) error {
		_, _ = fmt.Fprintf(w, "%s %s\n", ui.Label("Config file:"), out.Path)
		_, _ = fmt.Fprintf(w, "%s %s\n", ui.Label("Minecraft version:"), out.Version)
		_, err := fmt.Fprintf(w, "%s %s\n", ui.Label("Mod loader:"), out.Loader)
		return err
	})
}
