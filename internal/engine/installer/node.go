package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deps/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/adapters/lockfile"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/adapters/nix"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/deps/internal/engine/resolver"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			lockfile.NodeID,
			nix.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			declarations, err := graft.Dep[ports.DeclarationStore](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			lockfiles, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}

			packages, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(declarations, res, lockfiles, packages, log, telemetry), nil
		},
	})
}
