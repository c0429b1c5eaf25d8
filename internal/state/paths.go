package state

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory name for mdget configuration
	ConfigDirName = "mdget"

	// ConfigFileName is the name of the preference file
	ConfigFileName = "config.toml"

	// QuarantineSuffix is appended to a config file that failed to parse
	QuarantineSuffix = ".old"

	// LockSuffix names the advisory lock file guarding a config file
	LockSuffix = ".lock"
)

// GetConfigDir returns the path to the mdget configuration directory.
// It honours XDG_CONFIG_HOME and defaults to ~/.config/mdget/.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the path to the preference file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// QuarantinePath returns where a corrupt config file at path is moved.
func QuarantinePath(path string) string {
	return path + QuarantineSuffix
}

// LockPath returns the advisory lock file for the config file at path.
func LockPath(path string) string {
	return path + LockSuffix
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}
