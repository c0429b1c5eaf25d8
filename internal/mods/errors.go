package mods

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEligibleVersion is returned when no version of a project matches
	// the target game version and loader.
	ErrNoEligibleVersion = errors.New("no eligible version")

	// ErrIntegrityMismatch is returned when downloaded bytes do not hash to
	// the declared SHA-512 digest.
	ErrIntegrityMismatch = errors.New("integrity mismatch")

	// ErrNoFiles is returned when a version carries no downloadable files.
	ErrNoFiles = errors.New("version has no files")
)

// IncompatibleVersionError reports a project that has nothing for the
// target game version.
type IncompatibleVersionError struct {
	ProjectID   string
	GameVersion string
}

func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("%s is not available for Minecraft %s", e.ProjectID, e.GameVersion)
}

func (e *IncompatibleVersionError) Unwrap() error { return ErrNoEligibleVersion }

// IncompatibleLoaderError reports a project that has versions for the target
// game version, but none for the target loader.
type IncompatibleLoaderError struct {
	ProjectID   string
	Loader      string
	GameVersion string
}

func (e *IncompatibleLoaderError) Error() string {
	return fmt.Sprintf("%s is not available for %s on Minecraft %s", e.ProjectID, e.Loader, e.GameVersion)
}

func (e *IncompatibleLoaderError) Unwrap() error { return ErrNoEligibleVersion }

// IntegrityError is returned when a download fails SHA-512 verification.
type IntegrityError struct {
	Filename string
	Expected string
	Got      string
}

func (e *IntegrityError) Error() string {
	expected := e.Expected
	if expected == "" {
		expected = "(none declared)"
	}
	return fmt.Sprintf("integrity check failed for %s: expected sha512 %s, got %s", e.Filename, expected, e.Got)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrityMismatch }
