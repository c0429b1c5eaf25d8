package modrinth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// GetVersions fetches every version of a project in registry order.
// Filtering is left to the caller so that it can explain empty results.
func (c *Client) GetVersions(ctx context.Context, projectID string) ([]Version, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project ID cannot be empty")
	}

	slog.Debug("fetching project versions",
		"project_id", projectID)

	var versions []Version
	if err := c.getJSON(ctx, projectID, "/project/"+url.PathEscape(projectID)+"/version", &versions); err != nil {
		return nil, err
	}

	slog.Debug("versions retrieved",
		"project_id", projectID,
		"count", len(versions))

	return versions, nil
}
