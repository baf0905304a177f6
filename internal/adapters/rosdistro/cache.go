package rosdistro

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// catalogCacheVersion guards the cache file schema. Bump it when the
// serialized shape changes; old files then read as misses.
const catalogCacheVersion = 1

// CatalogCache persists release catalogs as YAML files under the cache
// directory, one per distribution, stamped with the digest of the
// distribution declaration they were built from.
type CatalogCache struct {
	cfg domain.Config
}

// NewCatalogCache creates a CatalogCache.
func NewCatalogCache(cfg domain.Config) *CatalogCache {
	return &CatalogCache{cfg: cfg}
}

type catalogCacheFile struct {
	Version int                               `yaml:"version"`
	Distro  string                            `yaml:"distro"`
	Digest  string                            `yaml:"distribution_digest"`
	Catalog map[string]domain.ReleasedPackage `yaml:"catalog"`
}

// Load returns the cached catalog for the distribution if it exists and was
// built from declaration content with the given digest. Any mismatch is a
// miss, never an error; the cache is advisory.
func (c *CatalogCache) Load(distro string, digest uint64) (map[string]domain.ReleasedPackage, bool, error) {
	data, err := os.ReadFile(c.cfg.CatalogCachePath(distro)) //nolint:gosec // path derives from trusted config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.Wrap(err, "failed to read catalog cache")
	}

	var file catalogCacheFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, false, zerr.Wrap(err, "failed to parse catalog cache")
	}

	if file.Version != catalogCacheVersion || file.Distro != distro || file.Digest != formatDigest(digest) {
		return nil, false, nil
	}

	return file.Catalog, true, nil
}

// Store persists the catalog for the distribution.
func (c *CatalogCache) Store(distro string, digest uint64, catalog map[string]domain.ReleasedPackage) error {
	path := c.cfg.CatalogCachePath(distro)

	data, err := yaml.Marshal(catalogCacheFile{
		Version: catalogCacheVersion,
		Distro:  distro,
		Digest:  formatDigest(digest),
		Catalog: catalog,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to marshal catalog cache")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create catalog cache directory")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // cache file, world readable is fine
		return zerr.Wrap(err, "failed to write catalog cache")
	}
	return nil
}

func formatDigest(digest uint64) string {
	return fmt.Sprintf("%016x", digest)
}
