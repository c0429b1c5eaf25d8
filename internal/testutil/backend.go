// Package testutil provides an in-process stand-in for the Modrinth API and
// the Mojang version manifest.
package testutil

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/steviee/mdget/internal/modrinth"
)

// DefaultManifest lists a handful of versions, newest first.
const DefaultManifest = `{
	"latest": {"release": "1.20.4", "snapshot": "23w51a"},
	"versions": [
		{"id": "23w51a", "type": "snapshot", "releaseTime": "2023-12-18T12:00:00+00:00"},
		{"id": "1.20.4", "type": "release", "releaseTime": "2023-12-07T12:00:00+00:00"},
		{"id": "1.20.1", "type": "release", "releaseTime": "2023-06-12T12:00:00+00:00"},
		{"id": "1.19.4", "type": "release", "releaseTime": "2023-03-14T12:00:00+00:00"},
		{"id": "1.16.5", "type": "release", "releaseTime": "2021-01-14T16:05:32+00:00"}
	]
}`

// DefaultLoaders is the /tag/loader response.
var DefaultLoaders = []modrinth.Loader{
	{Name: "fabric", SupportedProjectTypes: []string{"mod", "modpack"}},
	{Name: "forge", SupportedProjectTypes: []string{"mod", "modpack"}},
	{Name: "quilt", SupportedProjectTypes: []string{"mod", "modpack"}},
	{Name: "paper", SupportedProjectTypes: []string{"plugin"}},
}

// Backend serves registry and manifest fixtures over HTTP.
//
//	/manifest.json                 version manifest
//	/project/{id}                  project
//	/project/{id}/version          versions
//	/project/{id}/dependencies     dependency bundle
//	/tag/loader                    loaders
//	/search                        search hits
//	/files/{name}                  file bytes
type Backend struct {
	*httptest.Server

	mu       sync.RWMutex
	manifest string
	projects map[string]modrinth.Project
	versions map[string][]modrinth.Version
	deps     map[string]modrinth.Dependencies
	files    map[string][]byte
	hits     []modrinth.SearchHit
	requests []string
	agents   []string
}

// NewBackend starts a Backend that is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		manifest: DefaultManifest,
		projects: map[string]modrinth.Project{},
		versions: map[string][]modrinth.Version{},
		deps:     map[string]modrinth.Dependencies{},
		files:    map[string][]byte{},
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)

	return b
}

// ManifestURL is the URL of the served version manifest.
func (b *Backend) ManifestURL() string {
	return b.URL + "/manifest.json"
}

// Setenv points mdget's endpoint settings at b for the rest of the test.
func (b *Backend) Setenv(t testing.TB) {
	t.Helper()
	t.Setenv("MDGET_API_URL", b.URL)
	t.Setenv("MDGET_MANIFEST_URL", b.ManifestURL())
}

// SetManifest replaces the served manifest body.
func (b *Backend) SetManifest(body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.manifest = body
}

// AddProject serves p under its id and, if set, its slug.
func (b *Backend) AddProject(p modrinth.Project) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.projects[p.ID] = p
	if p.Slug != "" {
		b.projects[p.Slug] = p
	}
}

// SetVersions serves versions for projectID.
func (b *Backend) SetVersions(projectID string, versions ...modrinth.Version) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.versions[projectID] = versions
}

// SetDependencies serves deps as the dependency bundle of projectID.
func (b *Backend) SetDependencies(projectID string, deps modrinth.Dependencies) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deps[projectID] = deps
}

// SetSearchHits serves hits for every search.
func (b *Backend) SetSearchHits(hits ...modrinth.SearchHit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hits = hits
}

// AddFile serves data under name and returns a matching file entry with a
// correct SHA-512 digest.
func (b *Backend) AddFile(name string, data []byte) modrinth.File {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[name] = data
	return modrinth.File{
		URL:      b.URL + "/files/" + name,
		Filename: name,
		Size:     int64(len(data)),
		Hashes:   modrinth.Hashes{SHA512: SHA512Hex(data)},
	}
}

// Requests returns the paths requested so far, query included.
func (b *Backend) Requests() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.requests...)
}

// UserAgents returns the User-Agent header of every request so far.
func (b *Backend) UserAgents() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.agents...)
}

// Client returns a registry client for b.
func (b *Backend) Client() *modrinth.Client {
	return modrinth.NewClient(&modrinth.Config{BaseURL: b.URL})
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.URL.RequestURI())
	b.agents = append(b.agents, r.UserAgent())
	b.mu.Unlock()

	b.mu.RLock()
	defer b.mu.RUnlock()

	path := r.URL.Path
	switch {
	case path == "/manifest.json":
		_, _ = w.Write([]byte(b.manifest))
		return
	case path == "/tag/loader":
		writeJSON(w, DefaultLoaders)
		return
	case path == "/search":
		writeJSON(w, modrinth.SearchResult{Hits: b.hits, Limit: len(b.hits), TotalHits: len(b.hits)})
		return
	}

	if name, ok := strings.CutPrefix(path, "/files/"); ok {
		data, found := b.files[name]
		if !found {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
		return
	}

	rest, ok := strings.CutPrefix(path, "/project/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	id, sub, _ := strings.Cut(rest, "/")
	p, found := b.projects[id]
	if found {
		id = p.ID
	}

	switch sub {
	case "":
		if !found {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found","description":"the requested project was not found"}`))
			return
		}
		writeJSON(w, p)
	case "version":
		writeJSON(w, b.versions[id])
	case "dependencies":
		writeJSON(w, b.deps[id])
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// SHA512Hex returns the lowercase hex SHA-512 digest of data.
func SHA512Hex(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// Version builds a registry version for tests.
func Version(id, projectID, published string, gameVersions, loaders []string, files ...modrinth.File) modrinth.Version {
	return modrinth.Version{
		ID:            id,
		ProjectID:     projectID,
		VersionNumber: id,
		DatePublished: published,
		GameVersions:  gameVersions,
		Loaders:       loaders,
		Files:         files,
	}
}
