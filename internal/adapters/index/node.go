package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deps/internal/adapters/config"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
)

// NodeID is the unique identifier for the version index Graft node.
const NodeID graft.ID = "adapter.index"

func init() {
	graft.Register(graft.Node[ports.VersionIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.VersionIndex, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			load := Bundled
			if settings.IndexPath != "" {
				load = func() (*Index, error) { return LoadFile(settings.IndexPath) }
			}
			idx, err := load()
			if err != nil {
				return nil, err
			}
			return idx, nil
		},
	})
}
