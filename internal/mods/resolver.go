package mods

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steviee/mdget/internal/modrinth"
)

// ResolveDepth is how many levels of dependencies are expanded.
// Dependencies of dependencies are never fetched.
const ResolveDepth = 1

// Registry is the subset of the Modrinth client the pipeline needs.
type Registry interface {
	GetProject(ctx context.Context, idOrSlug string) (*modrinth.Project, error)
	GetVersions(ctx context.Context, projectID string) ([]modrinth.Version, error)
	GetDependencies(ctx context.Context, idOrSlug string) (*modrinth.Dependencies, error)
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Resolver expands a project into itself plus its direct dependencies.
type Resolver struct {
	registry     Registry
	target       Target
	requiredOnly bool
}

// NewResolver creates a resolver for target. With requiredOnly set, the
// dependency bundle is narrowed to the projects the best eligible version of
// the root declares as required.
func NewResolver(registry Registry, target Target, requiredOnly bool) *Resolver {
	return &Resolver{
		registry:     registry,
		target:       target,
		requiredOnly: requiredOnly,
	}
}

// Resolve returns root first, followed by every dependency project that
// supports the target game version. The returned errors are warnings: a
// dropped dependency or a failed bundle query never discards root.
func (r *Resolver) Resolve(ctx context.Context, root *modrinth.Project) ([]modrinth.Project, []error) {
	projects := []modrinth.Project{*root}
	seen := map[string]bool{root.ID: true}

	slog.Debug("resolving dependencies",
		"project", root.ID,
		"depth", ResolveDepth,
		"required_only", r.requiredOnly)

	deps, err := r.registry.GetDependencies(ctx, root.ID)
	if err != nil {
		return projects, []error{fmt.Errorf("resolve dependencies of %s: %w", root.ID, err)}
	}

	var allowed map[string]bool
	if r.requiredOnly {
		allowed, err = r.requiredProjects(ctx, root, deps)
		if err != nil {
			return projects, []error{fmt.Errorf("resolve dependencies of %s: %w", root.ID, err)}
		}
	}

	var warnings []error
	for _, dep := range deps.Projects {
		if seen[dep.ID] {
			continue
		}
		seen[dep.ID] = true

		if allowed != nil && !allowed[dep.ID] {
			slog.Debug("skipping non-required dependency",
				"project", root.ID,
				"dependency", dep.ID)
			continue
		}

		if !IsCompatible(dep.GameVersions, r.target.GameVersion) {
			depErr := &IncompatibleVersionError{ProjectID: dep.ID, GameVersion: r.target.GameVersion}
			slog.Warn("dropping incompatible dependency",
				"project", root.ID,
				"dependency", dep.Name(),
				"game_version", r.target.GameVersion)
			warnings = append(warnings, depErr)
			continue
		}

		projects = append(projects, dep)
	}

	slog.Debug("dependencies resolved",
		"project", root.ID,
		"total", len(projects),
		"dropped", len(warnings))

	return projects, warnings
}

// requiredProjects returns the ids of projects the best eligible version of
// root marks as required. Dependencies naming only a version are mapped to a
// project through the bundle's versions.
func (r *Resolver) requiredProjects(ctx context.Context, root *modrinth.Project, deps *modrinth.Dependencies) (map[string]bool, error) {
	versions, err := r.registry.GetVersions(ctx, root.ID)
	if err != nil {
		return nil, err
	}

	best := SelectBest(versions, r.target)
	if best == nil {
		return nil, Diagnose(root.ID, versions, r.target)
	}

	versionProject := make(map[string]string, len(deps.Versions))
	for _, v := range deps.Versions {
		versionProject[v.ID] = v.ProjectID
	}

	required := make(map[string]bool)
	for _, d := range best.Dependencies {
		if d.DependencyType != modrinth.DependencyRequired {
			continue
		}
		switch {
		case d.ProjectID != "":
			required[d.ProjectID] = true
		case d.VersionID != "":
			if pid, ok := versionProject[d.VersionID]; ok {
				required[pid] = true
			}
		}
	}

	return required, nil
}
