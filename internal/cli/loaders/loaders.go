package loaders

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/ui"
)

// LoaderOutput is the machine-readable result of get and set.
type LoaderOutput struct {
	Loader string `json:"loader" yaml:"loader"`
}

// NewCommand creates the loader command group. Without a subcommand it
// behaves like "loader get".
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loader",
		Short: "Show or change the target mod loader",
		Long: `Show or change the mod loader mods are downloaded for.

The loader must be one Modrinth lists for mods, such as fabric, quilt, forge
or neoforge.`,
		Example: `  # Show the current loader
  mdget loader

  # Switch to Quilt
  mdget loader set quilt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), a)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the target mod loader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), a)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <loader>",
		Short: "Change the target mod loader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.SetLoader(cmd.Context(), args[0]); err != nil {
				_ = ui.RenderError(cmd.OutOrStdout(), a.Output, nil, err)
				return fmt.Errorf("set loader: %w", err)
			}

			out := LoaderOutput{Loader: a.Config.Loader}
			return ui.Render(cmd.OutOrStdout(), a.Output, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s Mod loader set to %s\n", ui.Indicator(true), out.Loader)
				return err
			})
		},
	})

	return cmd
}

func runGet(w io.Writer, a *app.App) error {
	out := LoaderOutput{Loader: a.Config.Loader}

	return ui.Render(w, a.Output, out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s\n", ui.Label("Mod loader:"), out.Loader)
		return err
	})
}
