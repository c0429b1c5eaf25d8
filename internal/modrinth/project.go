package modrinth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// GetProject fetches project details by ID or slug.
func (c *Client) GetProject(ctx context.Context, idOrSlug string) (*Project, error) {
	if idOrSlug == "" {
		return nil, fmt.Errorf("project ID or slug cannot be empty")
	}

	slog.Debug("fetching project details",
		"id_or_slug", idOrSlug)

	var project Project
	if err := c.getJSON(ctx, idOrSlug, "/project/"+url.PathEscape(idOrSlug), &project); err != nil {
		return nil, err
	}

	slog.Debug("project details retrieved",
		"id", project.ID,
		"title", project.Title,
		"game_versions", len(project.GameVersions))

	return &project, nil
}

// GetDependencies fetches the dependency bundle of a project: every project
// and version its versions depend on, as resolved by the registry.
func (c *Client) GetDependencies(ctx context.Context, idOrSlug string) (*Dependencies, error) {
	if idOrSlug == "" {
		return nil, fmt.Errorf("project ID or slug cannot be empty")
	}

	slog.Debug("fetching project dependencies",
		"id_or_slug", idOrSlug)

	var deps Dependencies
	if err := c.getJSON(ctx, idOrSlug, "/project/"+url.PathEscape(idOrSlug)+"/dependencies", &deps); err != nil {
		return nil, err
	}

	slog.Debug("project dependencies retrieved",
		"id_or_slug", idOrSlug,
		"projects", len(deps.Projects),
		"versions", len(deps.Versions))

	return &deps, nil
}
