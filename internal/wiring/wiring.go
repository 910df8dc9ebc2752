// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/deps/internal/adapters/config"
	_ "go.trai.ch/deps/internal/adapters/index"
	_ "go.trai.ch/deps/internal/adapters/lockfile"
	_ "go.trai.ch/deps/internal/adapters/logger"
	_ "go.trai.ch/deps/internal/adapters/nix"
	_ "go.trai.ch/deps/internal/adapters/shell"
	_ "go.trai.ch/deps/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/deps/internal/app"
	_ "go.trai.ch/deps/internal/engine/installer"
	_ "go.trai.ch/deps/internal/engine/resolver"
)
