package versions

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/minecraft"
	"github.com/steviee/mdget/internal/ui"
)

// VersionOutput is the machine-readable result of get and set.
type VersionOutput struct {
	Version string `json:"version" yaml:"version"`
	Latest  string `json:"latest_release,omitempty" yaml:"latest_release,omitempty"`
}

// NewCommand creates the version command group. Without a subcommand it
// behaves like "version get".
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show or change the target Minecraft version",
		Long: `Show or change the Minecraft version mods are downloaded for.

The version must be one listed in Mojang's version manifest, snapshots included.`,
		Example: `  # Show the current target
  mdget version

  # Target Minecraft 1.20.1
  mdget version set 1.20.1

  # List recent releases
  mdget version list --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), a)
		},
	}

	cmd.AddCommand(newGetCommand(a))
	cmd.AddCommand(newSetCommand(a))
	cmd.AddCommand(newListCommand(a))

	return cmd
}

func newGetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the target Minecraft version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), a)
		},
	}
}

func newSetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <version>",
		Short: "Change the target Minecraft version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.OutOrStdout(), a, args[0])
		},
	}
}

func runGet(w io.Writer, a *app.App) error {
	out := VersionOutput{
		Version: a.Config.Version,
		Latest:  a.Manifest.Latest.Release,
	}

	return ui.Render(w, a.Output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s\n", ui.Label("Minecraft version:"), out.Version)
		return err
	})
}

func runSet(w io.Writer, a *app.App, id string) error {
	if err := a.SetVersion(id); err != nil {
		_ = ui.RenderError(w, a.Output, nil, err)
		return fmt.Errorf("set version: %w", err)
	}

	out := VersionOutput{Version: a.Config.Version}

	return ui.Render(w, a.Output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s Minecraft version set to %s\n", ui.Indicator(true), out.Version)
		return err
	})
}

// latestLabel marks the manifest's latest entries in list output.
func latestLabel(m *minecraft.VersionManifest, id string) string {
	switch id {
	case m.Latest.Release:
		return "latest release"
	case m.Latest.Snapshot:
		return "latest snapshot"
	}
	return ""
}
