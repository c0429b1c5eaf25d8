package state

import (
	"fmt"
	"os"
	"syscall"
)

// FileLock is an advisory flock(2) lock held on a sidecar file.
// It serialises the read-quarantine-rewrite sequence of LoadConfig and the
// write in SaveConfig between concurrent mdget processes.
type FileLock struct {
	file *os.File
	path string
}

// LockFile acquires an exclusive lock on path, creating the file if needed.
// It blocks until the lock is available. Locks taken twice by the same
// process on different descriptors deadlock, so callers must not nest them.
func LockFile(path string) (*FileLock, error) {
	//nolint:gosec // G304: lock path is derived from the config path
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for locking: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &FileLock{
		file: f,
		path: path,
	}, nil
}

// Unlock releases the lock and closes the file. It is safe to call twice.
func (fl *FileLock) Unlock() error {
	if fl.file == nil {
		return nil
	}

	if err := syscall.Flock(int(fl.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = fl.file.Close()
		fl.file = nil
		return fmt.Errorf("failed to release lock: %w", err)
	}

	if err := fl.file.Close(); err != nil {
		fl.file = nil
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	fl.file = nil
	return nil
}

// Path returns the path to the lock file.
func (fl *FileLock) Path() string {
	return fl.path
}
