package ports

import "go.trai.ch/roslock/internal/core/domain"

//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks

// LockfileStore serializes lockfiles to and from disk.
type LockfileStore interface {
	// Write serializes the lockfile to the given path.
	Write(path string, lf *domain.Lockfile) error

	// Read deserializes the lockfile at the given path. Unknown format
	// versions are rejected.
	Read(path string) (*domain.Lockfile, error)
}
