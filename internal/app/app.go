// Package app implements the application layer for deps.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/deps/internal/adapters/config"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/deps/internal/engine/installer"
	"go.trai.ch/zerr"
)

// defaultShell is started by Shell when $SHELL is unset.
const defaultShell = "/bin/sh"

// App represents the main application logic.
type App struct {
	declarations ports.DeclarationStore
	installer    *installer.Installer
	executor     ports.Executor
	logger       ports.Logger
	globalDir    string
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	declarations ports.DeclarationStore,
	inst *installer.Installer,
	executor ports.Executor,
	log ports.Logger,
	globalDir string,
) *App {
	return &App{
		declarations: declarations,
		installer:    inst,
		executor:     executor,
		logger:       log,
		globalDir:    globalDir,
		getwd:        os.Getwd,
	}
}

// WithWorkingDir makes the App treat dir as the current directory.
// This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// ScopeDir returns the global directory when global is set, otherwise the working directory.
func (a *App) ScopeDir(global bool) (string, error) {
	if global {
		return a.globalDir, nil
	}
	dir, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(domain.ErrScopeResolveFailed, err.Error())
	}
	return dir, nil
}

// Init creates a declaration file from the template.
func (a *App) Init(dir string) error {
	if _, err := a.declarations.Load(dir); err == nil {
		return zerr.With(zerr.Wrap(domain.ErrDeclarationFileExists, ""), "path", domain.DeclarationPath(dir))
	} else if !errors.Is(err, domain.ErrDeclarationFileNotFound) {
		return err
	}

	if err := a.declarations.Save(dir, config.InitTemplate); err != nil {
		return err
	}
	a.logger.Info("Created deps file at " + domain.DeclarationPath(dir))
	return nil
}

// Install brings the lockfile of dir up to date with its declaration file.
func (a *App) Install(ctx context.Context, dir string) error {
	if _, err := a.declarations.Load(dir); err != nil {
		return err
	}

	res, err := a.installer.EnsureInstalled(ctx, dir)
	if err != nil {
		return err
	}

	switch {
	case res.Lockfile == nil:
		a.logger.Info("No dependencies declared.")
	case !res.Installed:
		a.logger.Info("Dependencies already installed (lockfile up to date).")
	default:
		a.logger.Info(fmt.Sprintf("Installed %d dependencies.", res.Lockfile.Resolved.Len()))
	}
	return nil
}

// Add declares name at version in dir, creating the declaration file if needed, then installs.
func (a *App) Add(ctx context.Context, dir, name, version string) error {
	text, err := a.declarations.Load(dir)
	if err != nil && !errors.Is(err, domain.ErrDeclarationFileNotFound) {
		return err
	}

	updated := config.AddDeclaration(text, name, version)
	if _, err := domain.ParseDeclarations(updated); err != nil {
		return err
	}
	if err := a.declarations.Save(dir, updated); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Added %s %s", name, version))

	return a.Install(ctx, dir)
}

// Remove drops every declaration of name from dir, then installs.
func (a *App) Remove(ctx context.Context, dir, name string) error {
	text, err := a.declarations.Load(dir)
	if err != nil {
		return err
	}

	updated, err := config.RemoveDeclaration(text, name)
	if err != nil {
		return err
	}
	if err := a.declarations.Save(dir, updated); err != nil {
		return err
	}
	a.logger.Info("Removed " + name)

	return a.Install(ctx, dir)
}

// List returns the resolved dependencies of dir in declaration order.
func (a *App) List(ctx context.Context, dir string) ([]domain.ResolvedDependency, error) {
	res, err := a.installer.EnsureInstalled(ctx, dir)
	if err != nil {
		return nil, err
	}
	if res.Lockfile == nil {
		return nil, nil
	}
	return res.Lockfile.Resolved.All(), nil
}

// Env returns the PATH export line for cwd, or "" when nothing is installed.
func (a *App) Env(ctx context.Context) (string, error) {
	paths, err := a.binPaths(ctx)
	if err != nil {
		return "", err
	}
	return domain.ExportLine(paths), nil
}

// Shell starts $SHELL in cwd with the merged dependency paths on PATH.
func (a *App) Shell(ctx context.Context) error {
	paths, err := a.binPaths(ctx)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.logger.Warn("No dependencies installed.")
	}

	cwd, err := a.ScopeDir(false)
	if err != nil {
		return err
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = defaultShell
	}
	return a.executor.Execute(ctx, cwd, []string{shell}, paths)
}

// binPaths ensures the global scope and then the working directory scope are installed
// and merges their binary paths, local first. A working directory that resolves to the
// global directory is ensured once.
func (a *App) binPaths(ctx context.Context) ([]string, error) {
	cwd, err := a.ScopeDir(false)
	if err != nil {
		return nil, err
	}

	global, err := a.installer.EnsureInstalled(ctx, a.globalDir)
	if err != nil {
		return nil, err
	}
	if sameDir(cwd, a.globalDir) {
		return domain.BinPaths(global.Lockfile), nil
	}

	local, err := a.installer.EnsureInstalled(ctx, cwd)
	if err != nil {
		return nil, err
	}
	return domain.MergeBinPaths(domain.BinPaths(global.Lockfile), domain.BinPaths(local.Lockfile)), nil
}

// sameDir reports whether a and b name the same directory after resolving symlinks.
func sameDir(a, b string) bool {
	return canonicalDir(a) == canonicalDir(b)
}

func canonicalDir(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(dir)
}
