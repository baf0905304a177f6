package index

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service serves release catalogs, backed by the disk cache when possible.
type Service struct {
	builder *Builder
	store   ports.CatalogStore
	logger  ports.Logger
}

// NewService creates a Service.
func NewService(builder *Builder, store ports.CatalogStore, logger ports.Logger) *Service {
	return &Service{
		builder: builder,
		store:   store,
		logger:  logger,
	}
}

// Catalog returns the release catalog for a distribution. The cache entry is
// keyed by distribution name and stamped with the digest of the distribution
// declaration content it was built from, so a stale or foreign cache is
// never served. A failed cache read or write degrades to a rebuild, not an
// error; the cache is advisory.
func (s *Service) Catalog(
	ctx context.Context,
	distro string,
	declaration []byte,
	repos map[string]domain.ReleaseRepoInfo,
) (map[string]domain.ReleasedPackage, error) {
	digest := xxhash.Sum64(declaration)

	catalog, ok, err := s.store.Load(distro, digest)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("ignoring unreadable catalog cache for %s: %v", distro, err))
	} else if ok {
		return catalog, nil
	}

	catalog, err = s.builder.Build(ctx, repos)
	if err != nil {
		return nil, zerr.With(err, "distro", distro)
	}

	if err := s.store.Store(distro, digest, catalog); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to cache catalog for %s: %v", distro, err))
	}

	return catalog, nil
}
