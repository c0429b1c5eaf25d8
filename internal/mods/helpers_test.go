package mods

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/steviee/mdget/internal/modrinth"
)

var target = Target{GameVersion: "1.20.1", Loader: "fabric"}

func sha512Hex(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

func version(id, projectID, date string, gameVersions, loaders []string) modrinth.Version {
	return modrinth.Version{
		ID:            id,
		ProjectID:     projectID,
		VersionNumber: id,
		DatePublished: date,
		GameVersions:  gameVersions,
		Loaders:       loaders,
	}
}

// fakeRegistry is an in-memory Registry.
type fakeRegistry struct {
	mu       sync.Mutex
	projects map[string]modrinth.Project
	versions map[string][]modrinth.Version
	deps     map[string]modrinth.Dependencies
	blobs    map[string][]byte
	failDeps map[string]error
	calls    []string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		projects: map[string]modrinth.Project{},
		versions: map[string][]modrinth.Version{},
		deps:     map[string]modrinth.Dependencies{},
		blobs:    map[string][]byte{},
		failDeps: map[string]error{},
	}
}

func (f *fakeRegistry) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRegistry) GetProject(_ context.Context, id string) (*modrinth.Project, error) {
	f.record("project " + id)
	p, ok := f.projects[id]
	if !ok {
		return nil, &modrinth.QueryFailedError{Target: id, Err: modrinth.ErrProjectNotFound}
	}
	return &p, nil
}

func (f *fakeRegistry) GetVersions(_ context.Context, id string) ([]modrinth.Version, error) {
	f.record("versions " + id)
	return f.versions[id], nil
}

func (f *fakeRegistry) GetDependencies(_ context.Context, id string) (*modrinth.Dependencies, error) {
	f.record("dependencies " + id)
	if err := f.failDeps[id]; err != nil {
		return nil, err
	}
	d := f.deps[id]
	return &d, nil
}

func (f *fakeRegistry) FetchBytes(_ context.Context, url string) ([]byte, error) {
	f.record("fetch " + url)
	b, ok := f.blobs[url]
	if !ok {
		return nil, &modrinth.QueryFailedError{Target: url, Err: fmt.Errorf("not found")}
	}
	return b, nil
}
