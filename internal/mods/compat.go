package mods

import (
	"slices"

	"github.com/steviee/mdget/internal/modrinth"
)

// Target is the game version and loader mods are fetched for.
type Target struct {
	GameVersion string `json:"game_version" yaml:"game_version"`
	Loader      string `json:"loader" yaml:"loader"`
}

func (t Target) String() string {
	return t.Loader + "/" + t.GameVersion
}

// IsCompatible reports whether gameVersions contains target exactly.
// No normalization is done: "1.20" does not match "1.20.0".
func IsCompatible(gameVersions []string, target string) bool {
	return slices.Contains(gameVersions, target)
}

// SupportsLoader reports whether loaders contains target exactly.
func SupportsLoader(loaders []string, target string) bool {
	return slices.Contains(loaders, target)
}

// Eligible reports whether v can be installed for t.
func Eligible(v *modrinth.Version, t Target) bool {
	return IsCompatible(v.GameVersions, t.GameVersion) && SupportsLoader(v.Loaders, t.Loader)
}
