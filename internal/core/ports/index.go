package ports

import (
	"context"

	"go.trai.ch/roslock/internal/core/domain"
)

//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks

// IndexRepo manages the local clone of the distribution index repository.
type IndexRepo interface {
	// Ensure clones the index repository if it is not present yet.
	Ensure(ctx context.Context) error

	// DistributionBytes reads the distribution declaration file for the
	// given distribution from the clone.
	DistributionBytes(distro string) ([]byte, error)
}

// CatalogStore persists the release catalog between runs. The store is
// advisory: a miss or an invalidated entry simply means the catalog is
// rebuilt.
type CatalogStore interface {
	// Load returns the cached catalog for the distribution if it was built
	// from distribution declaration content with the given digest.
	Load(distro string, digest uint64) (map[string]domain.ReleasedPackage, bool, error)

	// Store persists the catalog together with the digest of the
	// distribution declaration content it was built from.
	Store(distro string, digest uint64, catalog map[string]domain.ReleasedPackage) error
}
