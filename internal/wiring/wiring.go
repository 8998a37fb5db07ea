// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/iconkit/internal/adapters/bridge"
	_ "go.trai.ch/iconkit/internal/adapters/config"
	_ "go.trai.ch/iconkit/internal/adapters/logger"
	_ "go.trai.ch/iconkit/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/iconkit/internal/app"
	_ "go.trai.ch/iconkit/internal/engine/badgesync"
	_ "go.trai.ch/iconkit/internal/engine/resolver"
)
