package mods

import (
	"fmt"

	"github.com/steviee/mdget/internal/modrinth"
)

// SelectBest returns the most recently published eligible version, or nil if
// none is eligible. Publication dates are compared as strings; the registry
// emits them in a uniform RFC3339 form. On equal dates the earlier entry in
// versions wins.
func SelectBest(versions []modrinth.Version, t Target) *modrinth.Version {
	var best *modrinth.Version
	for i := range versions {
		v := &versions[i]
		if !Eligible(v, t) {
			continue
		}
		if best == nil || v.DatePublished > best.DatePublished {
			best = v
		}
	}
	return best
}

// Diagnose explains why SelectBest found nothing for projectID.
func Diagnose(projectID string, versions []modrinth.Version, t Target) error {
	for i := range versions {
		if IsCompatible(versions[i].GameVersions, t.GameVersion) {
			return &IncompatibleLoaderError{
				ProjectID:   projectID,
				Loader:      t.Loader,
				GameVersion: t.GameVersion,
			}
		}
	}
	return &IncompatibleVersionError{ProjectID: projectID, GameVersion: t.GameVersion}
}

// PrimaryFile returns the file to download for v: always the first listed.
// The registry's primary flag is not consulted.
func PrimaryFile(v *modrinth.Version) (*modrinth.File, error) {
	if v == nil || len(v.Files) == 0 {
		id := ""
		if v != nil {
			id = v.ID
		}
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, id)
	}
	return &v.Files[0], nil
}
