package ports

import "go.trai.ch/deps/internal/core/domain"

// VersionIndex is the read-only catalog of installable package versions.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type VersionIndex interface {
	// Versions returns the known versions of a package in index order.
	// It returns an empty slice for unknown packages.
	Versions(name string) []string

	// Entry returns the artifact reference for one package version.
	Entry(name, version string) (domain.IndexEntry, bool)
}
