package mods

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/steviee/mdget/internal/app"
	"github.com/steviee/mdget/internal/modrinth"
	"github.com/steviee/mdget/internal/ui"
)

// SearchResultData is one search hit in machine-readable output.
type SearchResultData struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Downloads   int      `json:"downloads" yaml:"downloads"`
	Author      string   `json:"author" yaml:"author"`
	Categories  []string `json:"categories" yaml:"categories"`
	ProjectID   string   `json:"project_id" yaml:"project_id"`
}

// SearchOutput is the machine-readable result of a search.
type SearchOutput struct {
	Results []SearchResultData `json:"results" yaml:"results"`
	Count   int                `json:"count" yaml:"count"`
	Total   int                `json:"total" yaml:"total"`
	Limit   int                `json:"limit" yaml:"limit"`
	Offset  int                `json:"offset" yaml:"offset"`
}

type searchOptions struct {
	limit  int
	sortBy string
}

// NewSearchCommand creates the search command
func NewSearchCommand(a *app.App) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Modrinth for mods",
		Long: `Search Modrinth for mods available for the target Minecraft version and loader.

Sort options:
  - relevance: Best match for search query (default)
  - downloads: Most downloaded mods first`,
		Example: `  # Search for a mod
  mdget search sodium

  # Search with custom limit and sort
  mdget search optimization --limit 50 --sort downloads

  # Get JSON output for scripting
  mdget search lithium --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd.OutOrStdout(), a, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 20, "Maximum results to show (1-100)")
	cmd.Flags().StringVar(&opts.sortBy, "sort", "relevance", "Sort by: relevance, downloads")

	return cmd
}

// runSearch executes the search command
func runSearch(ctx context.Context, stdout io.Writer, a *app.App, opts *searchOptions, query string) error {
	if opts.limit < 1 || opts.limit > 100 {
		return outputSearchError(stdout, a.Output, fmt.Errorf("limit must be between 1 and 100"))
	}

	if opts.sortBy != "relevance" && opts.sortBy != "downloads" {
		return outputSearchError(stdout, a.Output, fmt.Errorf("invalid sort: must be relevance or downloads"))
	}

	target := a.Target()
	results, err := a.Modrinth.SearchMods(ctx, query, target.Loader, target.GameVersion, opts.limit)
	if err != nil {
		return outputSearchError(stdout, a.Output, fmt.Errorf("search failed: %w", err))
	}

	sortResults(results.Hits, opts.sortBy)

	return ui.Render(stdout, a.Output, toSearchOutput(results), func(w io.Writer) error {
		return outputSearchTable(w, results)
	})
}

// sortResults sorts the search results by the specified field. Relevance is
// the order the registry returns.
func sortResults(hits []modrinth.SearchHit, sortBy string) {
	if sortBy == "downloads" {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Downloads > hits[j].Downloads
		})
	}
}

func toSearchOutput(results *modrinth.SearchResult) SearchOutput {
	data := make([]SearchResultData, len(results.Hits))
	for i, hit := range results.Hits {
		data[i] = SearchResultData{
			Slug:        hit.Slug,
			Name:        hit.Title,
			Description: hit.Description,
			Downloads:   hit.Downloads,
			Author:      hit.Author,
			Categories:  hit.Categories,
			ProjectID:   hit.ProjectID,
		}
	}

	return SearchOutput{
		Results: data,
		Count:   len(results.Hits),
		Total:   results.TotalHits,
		Limit:   results.Limit,
		Offset:  results.Offset,
	}
}

// outputSearchTable outputs results in table format
func outputSearchTable(stdout io.Writer, results *modrinth.SearchResult) error {
	if len(results.Hits) == 0 {
		_, _ = fmt.Fprintln(stdout, "No mods found. Try a different search query.")
		return nil
	}

	_, _ = fmt.Fprintf(stdout, "%-20s %-25s %-10s %s\n",
		"SLUG", "NAME", "DOWNLOADS", "DESCRIPTION")
	_, _ = fmt.Fprintf(stdout, "%s\n", strings.Repeat("-", 100))

	for _, mod := range results.Hits {
		_, _ = fmt.Fprintf(stdout, "%-20s %-25s %-10s %s\n",
			truncate(mod.Slug, 20),
			truncate(mod.Title, 25),
			formatDownloads(mod.Downloads),
			truncate(mod.Description, 40))
	}

	if results.TotalHits > len(results.Hits) {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d results. Use --limit to see more.\n",
			len(results.Hits), results.TotalHits)
	} else {
		_, _ = fmt.Fprintf(stdout, "\nFound %d result(s).\n", results.TotalHits)
	}

	return nil
}

// outputSearchError reports err in machine-readable modes and returns it
func outputSearchError(stdout io.Writer, format ui.Format, err error) error {
	_ = ui.RenderError(stdout, format, nil, err)
	return err
}

// truncate truncates a string to the specified maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatDownloads formats download counts in human-readable format
func formatDownloads(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
