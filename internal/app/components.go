package app

import (
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
)

// Components contains all the initialized application components. This
// struct provides controlled access to what the CLI layer needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Config    domain.Config
}
