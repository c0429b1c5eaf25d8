package mods

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
	"github.com/steviee/mdget/internal/modrinth"
	"github.com/steviee/mdget/internal/state"
)

// Fetcher downloads the body of a URL.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Acquirer downloads files, verifies them and writes them to disk.
type Acquirer struct {
	fetcher Fetcher
}

// NewAcquirer creates an acquirer that downloads through fetcher.
func NewAcquirer(fetcher Fetcher) *Acquirer {
	return &Acquirer{fetcher: fetcher}
}

// Acquire downloads file, checks its SHA-512 digest and writes it to
// destDir/file.Filename, replacing any existing file. Nothing is written when
// the digest does not match or none is declared. It returns the written path.
func (a *Acquirer) Acquire(ctx context.Context, file modrinth.File, destDir string) (string, error) {
	if err := state.ValidateFilename(file.Filename); err != nil {
		return "", fmt.Errorf("refusing to write file: %w", err)
	}

	slog.Debug("downloading file",
		"filename", file.Filename,
		"url", file.URL,
		"size", units.HumanSize(float64(file.Size)))

	data, err := a.fetcher.FetchBytes(ctx, file.URL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", file.Filename, err)
	}

	if err := VerifySHA512(file.Filename, data, file.Hashes.SHA512); err != nil {
		return "", err
	}

	destPath := filepath.Join(destDir, file.Filename)
	if err := state.AtomicWrite(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", file.Filename, err)
	}

	slog.Debug("file written",
		"path", destPath,
		"size", units.HumanSize(float64(len(data))))

	return destPath, nil
}

// VerifySHA512 checks data against the expected hex digest, ignoring case.
// An empty expected digest never matches.
func VerifySHA512(filename string, data []byte, expected string) error {
	sum := sha512.Sum512(data)
	got := hex.EncodeToString(sum[:])

	if expected == "" || !strings.EqualFold(got, expected) {
		return &IntegrityError{
			Filename: filename,
			Expected: expected,
			Got:      got,
		}
	}

	return nil
}
