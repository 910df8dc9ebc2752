package ports

import "go.trai.ch/deps/internal/core/domain"

// LockfileStore persists one lockfile per scope directory.
//
//go:generate mockgen -source=lockfile_store.go -destination=mocks/mock_lockfile_store.go -package=mocks
type LockfileStore interface {
	// Read returns the lockfile of scopeDir, or nil when it is missing or unreadable.
	Read(scopeDir string) *domain.Lockfile

	// Write replaces the lockfile of scopeDir with one keyed by the digest of declarationText.
	Write(scopeDir, declarationText string, resolved domain.ResolvedSet) (*domain.Lockfile, error)

	// IsStale reports whether the lockfile of scopeDir is missing or was written for different text.
	IsStale(scopeDir, declarationText string) bool
}
