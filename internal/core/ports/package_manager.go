package ports

import (
	"context"

	"go.trai.ch/deps/internal/core/domain"
)

// PackageManager installs resolved dependencies into an isolated per-scope profile.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install makes dep available in the profile selected by scopeID and returns its install location.
	// Installing an already installed artifact returns the same location.
	Install(ctx context.Context, scopeID string, dep domain.ResolvedDependency) (installLocation string, err error)
}
