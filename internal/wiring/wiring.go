// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/roslock/internal/adapters/colcon"
	_ "go.trai.ch/roslock/internal/adapters/config"
	_ "go.trai.ch/roslock/internal/adapters/git"
	_ "go.trai.ch/roslock/internal/adapters/lockfile"
	_ "go.trai.ch/roslock/internal/adapters/logger"
	_ "go.trai.ch/roslock/internal/adapters/rosdep"
	_ "go.trai.ch/roslock/internal/adapters/rosdistro"
	_ "go.trai.ch/roslock/internal/adapters/syspkg"
	_ "go.trai.ch/roslock/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/roslock/internal/app"
	_ "go.trai.ch/roslock/internal/engine/index"
	_ "go.trai.ch/roslock/internal/engine/resolver"
)
