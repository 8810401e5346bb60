// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the directory name used below the user config directory.
	AppName = "tante"
	// HomeEnv overrides the application home directory when set.
	HomeEnv = "TANTE_HOME"
)

// PathProvider abstracts OS-level operations for path resolution.
// Used to enable testing of error paths in storage, config and log path lookups.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir returns the application home joined with sub, creating it if needed.
// The home is $TANTE_HOME when set, otherwise <UserConfigDir>/tante.
func AppDir(sub ...string) (string, error) {
	home := os.Getenv(HomeEnv)
	if home == "" {
		configDir, err := Provider.UserConfigDir()
		if err != nil {
			return "", err
		}
		home = filepath.Join(configDir, AppName)
	}

	dir := filepath.Join(append([]string{home}, sub...)...)
	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
