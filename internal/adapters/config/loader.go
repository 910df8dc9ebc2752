// Package config provides the declaration file store and process settings for deps.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileDeclarationStore implements ports.DeclarationStore on the scope directory.
type FileDeclarationStore struct {
	// Filename is the declaration file name inside a scope directory.
	Filename string
}

// NewDeclarationStore creates a store for the standard declaration file name.
func NewDeclarationStore() *FileDeclarationStore {
	return &FileDeclarationStore{Filename: domain.DeclarationFileName}
}

// Load returns the exact text of the declaration file in scopeDir.
func (s *FileDeclarationStore) Load(scopeDir string) (string, error) {
	path := filepath.Join(scopeDir, s.Filename)

	// A directory or other non-regular entry of that name is not a declaration file.
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return "", zerr.With(zerr.Wrap(domain.ErrDeclarationFileNotFound, "not a regular file"), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the scope directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrDeclarationFileNotFound, ""), "path", path)
		}
		return "", zerr.With(zerr.Wrap(domain.ErrDeclarationReadFailed, err.Error()), "path", path)
	}
	return string(data), nil
}

// Save replaces the declaration file in scopeDir, creating the directory if needed.
func (s *FileDeclarationStore) Save(scopeDir, text string) error {
	if err := os.MkdirAll(scopeDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDeclarationWriteFailed, err.Error()), "path", scopeDir)
	}

	path := filepath.Join(scopeDir, s.Filename)
	if err := os.WriteFile(path, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDeclarationWriteFailed, err.Error()), "path", path)
	}
	return nil
}
