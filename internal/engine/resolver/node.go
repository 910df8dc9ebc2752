package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deps/internal/adapters/index" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/deps/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{index.NodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			idx, err := graft.Dep[ports.VersionIndex](ctx)
			if err != nil {
				return nil, err
			}
			return New(idx), nil
		},
	})
}
