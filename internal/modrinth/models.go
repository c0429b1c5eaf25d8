package modrinth

// SearchResult represents the response from the search API.
type SearchResult struct {
	Hits      []SearchHit `json:"hits" yaml:"hits"`
	Offset    int         `json:"offset" yaml:"offset"`
	Limit     int         `json:"limit" yaml:"limit"`
	TotalHits int         `json:"total_hits" yaml:"total_hits"`
}

// SearchHit represents a mod project in search results.
type SearchHit struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ProjectID   string   `json:"project_id" yaml:"project_id"`
	ProjectType string   `json:"project_type" yaml:"project_type"`
	Downloads   int      `json:"downloads" yaml:"downloads"`
	Author      string   `json:"author" yaml:"author"`
	Categories  []string `json:"categories" yaml:"categories"`
	Versions    []string `json:"versions" yaml:"versions"`
}

// Project is a mod's registry entry: metadata, not a downloadable file.
type Project struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ProjectType  string   `json:"project_type"`
	Categories   []string `json:"categories"`
	GameVersions []string `json:"game_versions"`
	Loaders      []string `json:"loaders"`
	Versions     []string `json:"versions"`
	Downloads    int      `json:"downloads"`
}

// Name returns the title, falling back to the slug and then the id.
func (p *Project) Name() string {
	switch {
	case p.Title != "":
		return p.Title
	case p.Slug != "":
		return p.Slug
	default:
		return p.ID
	}
}

// Version is one published release of a project.
type Version struct {
	ID            string       `json:"id"`
	ProjectID     string       `json:"project_id"`
	Name          string       `json:"name"`
	VersionNumber string       `json:"version_number"`
	Dependencies  []Dependency `json:"dependencies"`
	GameVersions  []string     `json:"game_versions"`
	Loaders       []string     `json:"loaders"`
	Files         []File       `json:"files"`
	DatePublished string       `json:"date_published"` // RFC3339
}

// Dependency types reported by the registry.
const (
	DependencyRequired     = "required"
	DependencyOptional     = "optional"
	DependencyIncompatible = "incompatible"
	DependencyEmbedded     = "embedded"
)

// Dependency references another project or version. Either id may be empty.
type Dependency struct {
	VersionID      string `json:"version_id,omitempty"`
	ProjectID      string `json:"project_id,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	DependencyType string `json:"dependency_type"`
}

// Dependencies is the bundle returned by the project dependencies endpoint.
type Dependencies struct {
	Projects []Project `json:"projects"`
	Versions []Version `json:"versions"`
}

// Hashes holds the digests the registry declares for a file.
type Hashes struct {
	SHA1   string `json:"sha1"`
	SHA512 string `json:"sha512"`
}

// File represents a downloadable file.
type File struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
	Hashes   Hashes `json:"hashes"`
}

// Loader is an entry of the loader tag list.
type Loader struct {
	Name                  string   `json:"name"`
	SupportedProjectTypes []string `json:"supported_project_types"`
}

// SearchOptions holds search parameters.
type SearchOptions struct {
	Query  string
	Facets [][]string // e.g., [["project_type:mod"], ["categories:fabric"]]
	Limit  int        // default: 20, max: 100
	Offset int
}
