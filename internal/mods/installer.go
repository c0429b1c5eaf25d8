package mods

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docker/go-units"
	"github.com/steviee/mdget/internal/modrinth"
	"github.com/steviee/mdget/internal/state"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers processes requested mods one at a time.
const DefaultWorkers = 1

// Options configures an Installer.
type Options struct {
	Target Target

	// DestDir is where files are written. Defaults to the working directory.
	DestDir string

	// Workers bounds how many requested mods are processed at once.
	Workers int

	// RequiredOnly narrows dependencies to those declared as required.
	RequiredOnly bool
}

// ProjectReport is the outcome for one project: the requested mod itself or
// one of its dependencies.
type ProjectReport struct {
	ProjectID     string
	Title         string
	VersionNumber string
	Filename      string
	Path          string
	Size          int64
	Err           error
}

// ModReport is the outcome for one requested mod id.
type ModReport struct {
	ID       string
	Projects []ProjectReport

	// Warnings lists dependencies that were dropped or could not be resolved.
	Warnings []error

	// Err is set when the mod itself could not be looked up or is not
	// available for the target game version.
	Err error
}

// Failed reports whether the requested mod or any of its projects failed.
func (r *ModReport) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, p := range r.Projects {
		if p.Err != nil {
			return true
		}
	}
	return false
}

// Installer runs the acquisition pipeline for requested mods: look up each
// project, resolve its dependencies, pick a version of every project, then
// download and verify its file.
type Installer struct {
	registry Registry
	resolver *Resolver
	acquirer *Acquirer
	opts     Options
}

// NewInstaller creates an installer backed by registry.
func NewInstaller(registry Registry, opts Options) *Installer {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if opts.DestDir == "" {
		opts.DestDir = "."
	}

	return &Installer{
		registry: registry,
		resolver: NewResolver(registry, opts.Target, opts.RequiredOnly),
		acquirer: NewAcquirer(registry),
		opts:     opts,
	}
}

// Install processes every id independently and returns one report per id,
// in input order. A failure for one id never stops the others.
//
// Example:
//
//	installer := NewInstaller(client, Options{Target: Target{GameVersion: "1.20.1", Loader: "fabric"}})
//	reports := installer.Install(ctx, []string{"sodium", "lithium"})
func (i *Installer) Install(ctx context.Context, ids []string) []ModReport {
	ids = FilterIDs(ids)
	reports := make([]ModReport, len(ids))

	slog.Info("fetching mods",
		"mods", ids,
		"target", i.opts.Target.String(),
		"dest", i.opts.DestDir,
		"workers", i.opts.Workers)

	var g errgroup.Group
	g.SetLimit(i.opts.Workers)

	for idx, id := range ids {
		g.Go(func() error {
			reports[idx] = i.installOne(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func (i *Installer) installOne(ctx context.Context, id string) ModReport {
	report := ModReport{ID: id}

	if err := state.ValidateModID(id); err != nil {
		report.Err = err
		return report
	}

	project, err := i.registry.GetProject(ctx, id)
	if err != nil {
		report.Err = fmt.Errorf("get project: %w", err)
		slog.Error("failed to get project", "mod", id, "error", err)
		return report
	}

	if !IsCompatible(project.GameVersions, i.opts.Target.GameVersion) {
		report.Err = &IncompatibleVersionError{ProjectID: id, GameVersion: i.opts.Target.GameVersion}
		slog.Error("mod not available for game version",
			"mod", id,
			"game_version", i.opts.Target.GameVersion)
		return report
	}

	projects, warnings := i.resolver.Resolve(ctx, project)
	report.Warnings = warnings

	for idx := range projects {
		report.Projects = append(report.Projects, i.acquireProject(ctx, &projects[idx]))
	}

	return report
}

func (i *Installer) acquireProject(ctx context.Context, project *modrinth.Project) ProjectReport {
	report := ProjectReport{
		ProjectID: project.ID,
		Title:     project.Name(),
	}

	versions, err := i.registry.GetVersions(ctx, project.ID)
	if err != nil {
		report.Err = fmt.Errorf("list versions: %w", err)
		slog.Error("failed to list versions", "project", report.Title, "error", err)
		return report
	}

	best := SelectBest(versions, i.opts.Target)
	if best == nil {
		report.Err = Diagnose(project.ID, versions, i.opts.Target)
		slog.Error("no eligible version", "project", report.Title, "error", report.Err)
		return report
	}
	report.VersionNumber = best.VersionNumber

	file, err := PrimaryFile(best)
	if err != nil {
		report.Err = err
		return report
	}
	report.Filename = file.Filename
	report.Size = file.Size

	path, err := i.acquirer.Acquire(ctx, *file, i.opts.DestDir)
	if err != nil {
		report.Err = err
		slog.Error("failed to download", "project", report.Title, "file", file.Filename, "error", err)
		return report
	}
	report.Path = path

	slog.Info("downloaded",
		"project", report.Title,
		"version", best.VersionNumber,
		"file", file.Filename,
		"size", units.HumanSize(float64(file.Size)))

	return report
}

// FilterIDs drops empty arguments and anything that looks like a flag.
func FilterIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || strings.HasPrefix(id, "-") {
			continue
		}
		out = append(out, id)
	}
	return out
}
