package cli

import "fmt"

// BuildInfo contains build information for the application
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
}

// versionTemplate renders the output of "mdget --version".
func versionTemplate(info BuildInfo) string {
	return fmt.Sprintf("mdget version %s\nCommit: %s\nBuilt: %s\nBuilt by: %s\n",
		info.Version, info.Commit, info.Date, info.BuiltBy)
}
