package ports

import (
	"context"

	"go.trai.ch/roslock/internal/core/domain"
)

//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks

// PackageScanner enumerates the source packages present in the workspace.
type PackageScanner interface {
	Scan(ctx context.Context) ([]domain.SourcePackage, error)
}

// RepoInspector reports the version-control identity of the repository
// enclosing a path.
type RepoInspector interface {
	// Version returns the identity of the nearest enclosing repository,
	// or nil when the path is not inside one.
	Version(ctx context.Context, path string) (*domain.GitVersion, error)
}
