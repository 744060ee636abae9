// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cratepath/internal/adapters/cargo"
	_ "go.trai.ch/cratepath/internal/adapters/config"
	_ "go.trai.ch/cratepath/internal/adapters/logger"
	_ "go.trai.ch/cratepath/internal/adapters/manifest"
	_ "go.trai.ch/cratepath/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/cratepath/internal/app"
)
