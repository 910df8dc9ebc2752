// Package resolver pins declared dependencies to concrete versions from the version index.
package resolver

import (
	"fmt"
	"strings"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxListedVersions bounds the sample of versions named in a VersionNotFound error.
const maxListedVersions = 5

// Resolver implements ports.Resolver over a version index.
type Resolver struct {
	index ports.VersionIndex
}

// New creates a Resolver reading from index.
func New(index ports.VersionIndex) *Resolver {
	return &Resolver{index: index}
}

// Resolve picks the best indexed version for decl.
func (r *Resolver) Resolve(decl domain.Declaration) (domain.ResolvedDependency, error) {
	versions := r.index.Versions(decl.Name)
	if len(versions) == 0 {
		err := zerr.Wrap(domain.ErrPackageNotFound, fmt.Sprintf("package %q not found in index", decl.Name))
		return domain.ResolvedDependency{}, zerr.With(err, "package", decl.Name)
	}

	match, ok := domain.FindBestMatch(versions, domain.ParseVersion(decl.VersionSpecifier))
	if !ok {
		return domain.ResolvedDependency{}, versionNotFound(decl, versions)
	}

	entry, ok := r.index.Entry(decl.Name, match)
	if !ok {
		// Versions and Entry read the same index, so this only happens with a broken index.
		return domain.ResolvedDependency{}, versionNotFound(decl, versions)
	}

	return domain.ResolvedDependency{
		Name:             decl.Name,
		RequestedVersion: decl.VersionSpecifier,
		ResolvedVersion:  match,
		CommitReference:  entry.Commit,
		ArtifactID:       entry.Attr,
	}, nil
}

// ResolveAll resolves decls in order, stopping at the first failure.
func (r *Resolver) ResolveAll(decls []domain.Declaration) ([]domain.ResolvedDependency, error) {
	resolved := make([]domain.ResolvedDependency, 0, len(decls))
	for _, decl := range decls {
		dep, err := r.Resolve(decl)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, dep)
	}
	return resolved, nil
}

func versionNotFound(decl domain.Declaration, versions []string) error {
	sample := versions
	if len(sample) > maxListedVersions {
		sample = sample[:maxListedVersions]
	}

	msg := fmt.Sprintf("no version of %s matches %q. Available: %s", decl.Name, decl.VersionSpecifier, strings.Join(sample, ", "))
	if len(versions) > maxListedVersions {
		msg += ", ..."
	}

	err := zerr.Wrap(domain.ErrVersionNotFound, msg)
	err = zerr.With(err, "package", decl.Name)
	return zerr.With(err, "specifier", decl.VersionSpecifier)
}
