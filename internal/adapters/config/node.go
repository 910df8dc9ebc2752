package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deps/internal/core/domain"
	"go.trai.ch/deps/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the declaration store Graft node.
	NodeID graft.ID = "adapter.declarations"
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.DeclarationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DeclarationStore, error) {
			return NewDeclarationStore(), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Settings, error) {
			globalDir, err := domain.DefaultGlobalDir()
			if err != nil {
				return nil, zerr.Wrap(domain.ErrSettingsLoadFailed, err.Error())
			}
			return LoadSettings(globalDir)
		},
	})
}
