package mods

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/mods"
	"github.com/steviee/mdget/internal/ui"
)

// FileOutput is one project's outcome in machine-readable output.
type FileOutput struct {
	ProjectID string `json:"project_id" yaml:"project_id"`
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	Filename  string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Size      int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ModOutput is one requested mod's outcome in machine-readable output.
type ModOutput struct {
	ID       string       `json:"id" yaml:"id"`
	Status   string       `json:"status" yaml:"status"`
	Error    string       `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Files    []FileOutput `json:"files,omitempty" yaml:"files,omitempty"`
}

// InstallOutput is the machine-readable result of "mdget mod".
type InstallOutput struct {
	Target mods.Target `json:"target" yaml:"target"`
	Mods   []ModOutput `json:"mods" yaml:"mods"`
}

type modOptions struct {
	dest         string
	jobs         int
	requiredOnly bool
}

// NewModCommand creates the mod command
func NewModCommand(a *app.App) *cobra.Command {
	opts := &modOptions{}

	cmd := &cobra.Command{
		Use:   "mod <id> [id...]",
		Short: "Download mods and their dependencies",
		Long: `Download one or more mods from Modrinth, by slug or project id.

Each mod's direct dependencies are downloaded too, as long as they support the
target Minecraft version. For every project the newest version matching the
target version and loader is chosen, and its file is only written after its
SHA-512 digest has been verified.

A failure for one mod does not stop the others. The command exits with an error
if any requested mod or dependency could not be downloaded.`,
		Example: `  # Download Sodium and Lithium into the current directory
  mdget mod sodium lithium

  # Download into a mods folder, four mods at a time
  mdget mod sodium lithium iris --dest ./mods --jobs 4

  # Skip optional dependencies
  mdget mod iris --required-only`,
		Args: cobra.MinimumNArgs(1),
		// Flag-like arguments are ignored rather than rejected
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMod(cmd.Context(), cmd.OutOrStdout(), a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.dest, "dest", "d", ".", "directory to write mod files to")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", mods.DefaultWorkers, "number of mods to process at once")
	cmd.Flags().BoolVar(&opts.requiredOnly, "required-only", false, "only fetch dependencies the chosen version marks as required")

	return cmd
}

func runMod(ctx context.Context, stdout io.Writer, a *app.App, opts *modOptions, args []string) error {
	ids := mods.FilterIDs(args)
	if len(ids) == 0 {
		return outputModError(stdout, a.Output, nil, fmt.Errorf("no mod ids given"))
	}

	if opts.jobs < 1 {
		return outputModError(stdout, a.Output, nil, fmt.Errorf("jobs must be at least 1"))
	}

	installer := mods.NewInstaller(a.Modrinth, mods.Options{
		Target:       a.Target(),
		DestDir:      opts.dest,
		Workers:      opts.jobs,
		RequiredOnly: opts.requiredOnly,
	})

	reports := installer.Install(ctx, ids)
	out := toInstallOutput(a.Target(), reports)

	failed := 0
	for i := range reports {
		if reports[i].Failed() {
			failed++
		}
	}

	if failed > 0 {
		err := fmt.Errorf("%d of %d mods failed", failed, len(reports))
		if a.Output == ui.FormatText {
			_ = outputModTable(stdout, out)
		}
		return outputModError(stdout, a.Output, out, err)
	}

	return ui.Render(stdout, a.Output, out, func(w io.Writer) error {
		return outputModTable(w, out)
	})
}

func toInstallOutput(target mods.Target, reports []mods.ModReport) InstallOutput {
	out := InstallOutput{
		Target: target,
		Mods:   make([]ModOutput, len(reports)),
	}

	for i := range reports {
		r := &reports[i]
		m := ModOutput{ID: r.ID, Status: "success"}
		if r.Failed() {
			m.Status = "error"
		}
		if r.Err != nil {
			m.Error = r.Err.Error()
		}
		for _, w := range r.Warnings {
			m.Warnings = append(m.Warnings, w.Error())
		}
		for _, p := range r.Projects {
			f := FileOutput{
				ProjectID: p.ProjectID,
				Name:      p.Title,
				Version:   p.VersionNumber,
				Filename:  p.Filename,
				Path:      p.Path,
				Size:      p.Size,
			}
			if p.Err != nil {
				f.Error = p.Err.Error()
			}
			m.Files = append(m.Files, f)
		}
		out.Mods[i] = m
	}

	return out
}

// outputModTable prints one block per requested mod
func outputModTable(w io.Writer, out InstallOutput) error {
	for _, m := range out.Mods {
		if m.Error != "" {
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", ui.Indicator(false), ui.Label(m.ID), ui.Error(m.Error))
			continue
		}

		_, _ = fmt.Fprintf(w, "%s %s\n", ui.Indicator(m.Status == "success"), ui.Label(m.ID))
		for _, f := range m.Files {
			if f.Error != "" {
				_, _ = fmt.Fprintf(w, "    %s %s: %s\n", ui.Indicator(false), f.Name, ui.Error(f.Error))
				continue
			}
			_, _ = fmt.Fprintf(w, "    %s %s %s  %s %s\n",
				ui.Indicator(true), f.Name, f.Version, f.Filename, ui.Muted("("+ui.HumanSize(f.Size)+")"))
		}
		for _, warning := range m.Warnings {
			_, _ = fmt.Fprintf(w, "    %s %s\n", ui.Warning("!"), ui.Muted(warning))
		}
	}
	return nil
}

// outputModError reports err in machine-readable modes and returns it
func outputModError(stdout io.Writer, format ui.Format, data any, err error) error {
	_ = ui.RenderError(stdout, format, data, err)
	return err
}
