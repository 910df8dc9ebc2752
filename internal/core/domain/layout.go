package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for configuration and state directories.
	AppName = "deps"

	// DeclarationFileName is the name of the dependency declaration file in a scope.
	DeclarationFileName = "deps"

	// LockfileName is the name of the lockfile in a scope.
	LockfileName = "deps.lock"

	// SettingsFileName is the name of the optional settings file in the global directory.
	SettingsFileName = "config.yaml"

	// ProfilesDirName is the name of the directory holding per-scope installation profiles.
	ProfilesDirName = "profiles"

	// GlobalDirEnv overrides the global scope directory.
	GlobalDirEnv = "DEPS_GLOBAL_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DeclarationPath returns the declaration file path for a scope directory.
func DeclarationPath(scopeDir string) string {
	return filepath.Join(scopeDir, DeclarationFileName)
}

// LockfilePath returns the lockfile path for a scope directory.
func LockfilePath(scopeDir string) string {
	return filepath.Join(scopeDir, LockfileName)
}

// DefaultGlobalDir returns the global scope directory.
// It honors DEPS_GLOBAL_DIR and falls back to ~/.config/deps.
func DefaultGlobalDir() (string, error) {
	if dir := os.Getenv(GlobalDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultStateDir returns the default state directory, ~/.local/state/deps.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", AppName), nil
}

// ProfilePath returns the installation profile path of a scope under stateDir.
func ProfilePath(stateDir, scopeID string) string {
	return filepath.Join(stateDir, ProfilesDirName, scopeID)
}
