package modrinth

import (
	"context"
	"log/slog"
)

// GetLoaders fetches the loaders the registry knows about.
func (c *Client) GetLoaders(ctx context.Context) ([]Loader, error) {
	var loaders []Loader
	if err := c.getJSON(ctx, "loader tags", "/tag/loader", &loaders); err != nil {
		return nil, err
	}

	slog.Debug("loader tags retrieved", "count", len(loaders))

	return loaders, nil
}

// HasLoader reports whether name is one of loaders, for mod projects.
func HasLoader(loaders []Loader, name string) bool {
	for _, l := range loaders {
		if l.Name != name {
			continue
		}
		if len(l.SupportedProjectTypes) == 0 {
			return true
		}
		for _, t := range l.SupportedProjectTypes {
			if t == "mod" {
				return true
			}
		}
	}
	return false
}
