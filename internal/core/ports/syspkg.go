package ports

import (
	"context"

	"go.trai.ch/roslock/internal/core/domain"
)

//go:generate mockgen -source=syspkg.go -destination=mocks/mock_syspkg.go -package=mocks

// AptInspector looks up apt package metadata.
type AptInspector interface {
	// Show returns the candidate version of the package, or nil when the
	// package is not known to apt.
	Show(ctx context.Context, pkg string) (*domain.AptVersion, error)
}

// PipInspector looks up pip package metadata.
type PipInspector interface {
	// Show returns the installed version of the package, or nil when the
	// package is not installed.
	Show(ctx context.Context, pkg string) (*domain.PipVersion, error)
}
