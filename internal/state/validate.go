package state

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// loaderRegex matches registry loader tags ("fabric", "neoforge", "bukkit")
	loaderRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

	// modIDRegex matches project ids and slugs
	modIDRegex = regexp.MustCompile(`^[A-Za-z0-9!@$()` + "`" + `.+,"'_-]{1,64}$`)
)

// ValidateVersion validates a Minecraft version string. Manifest ids such as
// "1.14 Pre-Release 5" contain spaces, so only blank values are rejected;
// whether a version exists is decided by the manifest.
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return fmt.Errorf("version cannot be empty")
	}

	return nil
}

// ValidateLoaderName rejects blank loader names. It is the only rule applied
// to a loader read back from the preference file.
func ValidateLoaderName(loader string) error {
	if strings.TrimSpace(loader) == "" {
		return fmt.Errorf("loader cannot be empty")
	}

	return nil
}

// ValidateLoader validates a mod loader name given to "loader set". Registry
// loader tags are lowercase.
func ValidateLoader(loader string) error {
	if loader == "" {
		return fmt.Errorf("loader cannot be empty")
	}

	if !loaderRegex.MatchString(loader) {
		return fmt.Errorf("invalid loader: %q (lowercase letters, digits, '-' and '_' only)", loader)
	}

	return nil
}

// ValidateModID validates a project id or slug given on the command line.
func ValidateModID(id string) error {
	if id == "" {
		return fmt.Errorf("mod id cannot be empty")
	}

	if strings.HasPrefix(id, "-") {
		return fmt.Errorf("mod id cannot start with '-': %q", id)
	}

	if !modIDRegex.MatchString(id) {
		return fmt.Errorf("invalid mod id: %q", id)
	}

	return nil
}

// ValidateFilename validates a registry-supplied file name before it is
// joined onto a destination directory.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid filename: %q", name)
	}

	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("filename cannot contain path separators: %q", name)
	}

	return nil
}
