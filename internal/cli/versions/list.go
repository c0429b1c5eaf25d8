package versions

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/minecraft"
	"github.com/steviee/mdget/internal/ui"
)

// ListEntry is one row of "version list".
type ListEntry struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	ReleaseTime string `json:"release_time" yaml:"release_time"`
	Current     bool   `json:"current" yaml:"current"`
}

type listOptions struct {
	versionType string
	limit       int
}

func newListCommand(a *app.App) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Minecraft versions from the manifest",
		Example: `  # Ten most recent releases
  mdget version list

  # Every snapshot
  mdget version list --type snapshot --limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.versionType, "type", "t", minecraft.TypeRelease, "version type: release, snapshot or all")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 10, "maximum versions to show (0 for no limit)")

	return cmd
}

func runList(w io.Writer, a *app.App, opts *listOptions) error {
	switch opts.versionType {
	case minecraft.TypeRelease, minecraft.TypeSnapshot, minecraft.TypeAll:
	default:
		return fmt.Errorf("invalid type %q: must be release, snapshot or all", opts.versionType)
	}

	filtered := minecraft.FilterVersions(a.Manifest.Versions, opts.versionType, opts.limit)

	entries := make([]ListEntry, len(filtered))
	for i, v := range filtered {
		entries[i] = ListEntry{
			ID:          v.ID,
			Type:        v.Type,
			ReleaseTime: v.ReleaseTime,
			Current:     v.ID == a.Config.Version,
		}
	}

	return ui.Render(w, a.Output, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "No versions found.")
			return err
		}

		_, _ = fmt.Fprintf(w, "  %-20s %-10s %s\n", "VERSION", "TYPE", "RELEASED")
		_, _ = fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 50))

		for _, e := range entries {
			marker := " "
			if e.Current {
				marker = "*"
			}
			released, _, _ := strings.Cut(e.ReleaseTime, "T")
			line := fmt.Sprintf("%s %-20s %-10s %s", marker, e.ID, e.Type, released)
			if label := latestLabel(a.Manifest, e.ID); label != "" {
				line += " " + ui.Muted("("+label+")")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
