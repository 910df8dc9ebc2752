// Package lockfile implements the per-scope lockfile store.
package lockfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockfileStore with one JSON file per scope directory.
type Store struct {
	filename string
}

// NewStore creates a Store using the standard lockfile name.
func NewStore() *Store {
	return &Store{filename: domain.LockfileName}
}

func (s *Store) path(scopeDir string) string {
	return filepath.Join(scopeDir, s.filename)
}

// Read returns the lockfile of scopeDir.
// A missing, unreadable or unparseable lockfile yields nil so the caller resolves again.
func (s *Store) Read(scopeDir string) *domain.Lockfile {
	data, err := os.ReadFile(s.path(scopeDir)) //nolint:gosec // path is derived from the scope directory
	if err != nil {
		return nil
	}

	var l domain.Lockfile
	if err := json.Unmarshal(data, &l); err != nil {
		return nil
	}
	if l.FormatVersion != domain.LockfileFormatVersion || l.DeclarationContentHash == "" {
		return nil
	}
	return &l
}

// IsStale reports whether the lockfile of scopeDir is missing or keyed to other text.
func (s *Store) IsStale(scopeDir, declarationText string) bool {
	return !s.Read(scopeDir).Matches(declarationText)
}

// Write replaces the lockfile of scopeDir in a single rename.
func (s *Store) Write(scopeDir, declarationText string, resolved domain.ResolvedSet) (*domain.Lockfile, error) {
	l := domain.NewLockfile(declarationText, resolved)

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileMarshalFailed, err.Error())
	}
	data = append(data, '\n')

	path := s.path(scopeDir)
	if err := atomicWriteFile(path, data); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	return l, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".deps-lock-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
