package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// Search searches for projects on Modrinth.
func (c *Client) Search(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	if opts.Limit <= 0 {
		opts.Limit = 20
	}

	if opts.Limit > 100 {
		opts.Limit = 100
	}

	params := url.Values{}
	if opts.Query != "" {
		params.Add("query", opts.Query)
	}

	if len(opts.Facets) > 0 {
		facetsJSON, err := json.Marshal(opts.Facets)
		if err != nil {
			return nil, fmt.Errorf("marshal facets: %w", err)
		}
		params.Add("facets", string(facetsJSON))
	}

	params.Add("limit", strconv.Itoa(opts.Limit))
	params.Add("offset", strconv.Itoa(opts.Offset))

	slog.Debug("searching Modrinth",
		"query", opts.Query,
		"limit", opts.Limit,
		"offset", opts.Offset)

	var result SearchResult
	if err := c.getJSON(ctx, "search "+strconv.Quote(opts.Query), "/search?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	slog.Debug("search completed",
		"hits", len(result.Hits),
		"total", result.TotalHits)

	return &result, nil
}

// SearchMods searches mods installable with the given loader and game version.
// Empty loader or game version drops that facet.
func (c *Client) SearchMods(ctx context.Context, query, loader, gameVersion string, limit int) (*SearchResult, error) {
	if query == "" {
		return nil, ErrInvalidSearchQuery
	}

	facets := [][]string{{"project_type:mod"}}
	if loader != "" {
		facets = append(facets, []string{"categories:" + loader})
	}
	if gameVersion != "" {
		facets = append(facets, []string{"versions:" + gameVersion})
	}

	return c.Search(ctx, &SearchOptions{
		Query:  query,
		Facets: facets,
		Limit:  limit,
	})
}
