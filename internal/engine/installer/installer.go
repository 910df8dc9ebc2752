// Package installer keeps the installed dependencies of a scope in sync with its declaration file.
package installer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the outcome of EnsureInstalled.
type Result struct {
	// Lockfile is nil when the scope declares nothing.
	Lockfile *domain.Lockfile

	// Installed is true when dependencies were resolved and installed during the call,
	// false when the existing lockfile was already up to date.
	Installed bool
}

// Installer orchestrates resolution, installation and lockfile writes for a scope.
type Installer struct {
	declarations ports.DeclarationStore
	resolver     ports.Resolver
	lockfiles    ports.LockfileStore
	packages     ports.PackageManager
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates an Installer.
func New(
	declarations ports.DeclarationStore,
	resolver ports.Resolver,
	lockfiles ports.LockfileStore,
	packages ports.PackageManager,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Installer {
	return &Installer{
		declarations: declarations,
		resolver:     resolver,
		lockfiles:    lockfiles,
		packages:     packages,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// EnsureInstalled makes the lockfile of scopeDir valid for its current declaration text.
//
// A missing declaration file or one without declarations yields an empty Result.
// When the lockfile is current it is returned as is and nothing is resolved or installed.
// Otherwise every declaration is resolved and installed in order and the lockfile is rewritten.
// Any failure aborts the call before the lockfile is touched.
func (i *Installer) EnsureInstalled(ctx context.Context, scopeDir string) (Result, error) {
	text, err := i.declarations.Load(scopeDir)
	if err != nil {
		if errors.Is(err, domain.ErrDeclarationFileNotFound) {
			return Result{}, nil
		}
		return Result{}, err
	}

	decls, err := domain.ParseDeclarations(text)
	if err != nil {
		return Result{}, zerr.With(err, "path", domain.DeclarationPath(scopeDir))
	}
	if len(decls) == 0 {
		return Result{}, nil
	}

	if !i.lockfiles.IsStale(scopeDir, text) {
		if existing := i.lockfiles.Read(scopeDir); existing != nil {
			_, vertex := i.telemetry.Record(ctx, "lockfile "+domain.LockfilePath(scopeDir))
			vertex.Cached()
			vertex.Complete(nil)
			return Result{Lockfile: existing}, nil
		}
	}

	absDir, err := filepath.Abs(scopeDir)
	if err != nil {
		return Result{}, zerr.With(zerr.Wrap(domain.ErrScopeResolveFailed, err.Error()), "dir", scopeDir)
	}

	i.logger.Info(fmt.Sprintf("Resolving %d dependencies...", len(decls)))
	resolved, err := i.resolver.ResolveAll(decls)
	if err != nil {
		return Result{}, err
	}

	installed, err := i.installAll(ctx, domain.ScopeID(absDir), resolved)
	if err != nil {
		return Result{}, err
	}

	lockfile, err := i.lockfiles.Write(scopeDir, text, installed)
	if err != nil {
		return Result{}, err
	}
	i.logger.Info("Dependencies installed successfully.")

	return Result{Lockfile: lockfile, Installed: true}, nil
}

func (i *Installer) installAll(ctx context.Context, scopeID string, deps []domain.ResolvedDependency) (domain.ResolvedSet, error) {
	var set domain.ResolvedSet
	for _, dep := range deps {
		if dep.InstallLocation == "" {
			location, err := i.install(ctx, scopeID, dep)
			if err != nil {
				return domain.ResolvedSet{}, err
			}
			dep.InstallLocation = location
		}
		set.Put(dep)
	}
	return set, nil
}

func (i *Installer) install(ctx context.Context, scopeID string, dep domain.ResolvedDependency) (string, error) {
	label := dep.Name + "@" + dep.ResolvedVersion
	i.logger.Info("Installing " + label + "...")

	ctx, vertex := i.telemetry.Record(ctx, "install "+label)
	location, err := i.packages.Install(ctx, scopeID, dep)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}
	if location == "" {
		i.logger.Warn("no install location reported for " + label)
	}
	return location, nil
}
