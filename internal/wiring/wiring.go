// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/requiregen/internal/adapters/cas"
	_ "go.trai.ch/requiregen/internal/adapters/config"
	_ "go.trai.ch/requiregen/internal/adapters/fs"
	_ "go.trai.ch/requiregen/internal/adapters/logger"
	_ "go.trai.ch/requiregen/internal/adapters/telemetry"
	_ "go.trai.ch/requiregen/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/requiregen/internal/app"
)
