// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/deco/internal/adapters/cache"
	_ "go.trai.ch/deco/internal/adapters/config"
	_ "go.trai.ch/deco/internal/adapters/esbuild"
	_ "go.trai.ch/deco/internal/adapters/fingerprint"
	_ "go.trai.ch/deco/internal/adapters/fs"
	_ "go.trai.ch/deco/internal/adapters/logger"
	_ "go.trai.ch/deco/internal/adapters/scan"
	_ "go.trai.ch/deco/internal/adapters/shell"
	_ "go.trai.ch/deco/internal/adapters/strip"
	_ "go.trai.ch/deco/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/deco/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/deco/internal/app"
	_ "go.trai.ch/deco/internal/engine/scheduler"
)
