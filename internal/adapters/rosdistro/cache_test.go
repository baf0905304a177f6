package rosdistro_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/adapters/rosdistro"
	"go.trai.ch/roslock/internal/core/domain"
)

func cacheConfig(t *testing.T) domain.Config {
	t.Helper()
	return domain.Config{CacheDir: t.TempDir()}
}

func TestCatalogCache_RoundTrip(t *testing.T) {
	cfg := cacheConfig(t)
	cache := rosdistro.NewCatalogCache(cfg)

	catalog := map[string]domain.ReleasedPackage{
		"rclcpp": {
			Name:           "rclcpp",
			ReleaseRepoURL: "https://github.com/ros2-gbp/rclcpp-release.git",
			Versions: []domain.ReleasedVersion{
				{
					Version:    domain.Version{Major: 16, Minor: 0, Patch: 4, Increment: 2},
					Tag:        "release/humble/rclcpp/16.0.4-2",
					CommitHash: "aaa111",
				},
			},
		},
	}

	require.NoError(t, cache.Store("humble", 42, catalog))

	loaded, ok, err := cache.Load("humble", 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog, loaded)
}

func TestCatalogCache_Misses(t *testing.T) {
	cfg := cacheConfig(t)
	cache := rosdistro.NewCatalogCache(cfg)

	catalog := map[string]domain.ReleasedPackage{"rclcpp": {Name: "rclcpp"}}
	require.NoError(t, cache.Store("humble", 42, catalog))

	t.Run("NoFile", func(t *testing.T) {
		_, ok, err := cache.Load("jazzy", 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DigestMismatch", func(t *testing.T) {
		_, ok, err := cache.Load("humble", 43)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("CorruptFile", func(t *testing.T) {
		path := cfg.CatalogCachePath("humble")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o644))

		_, ok, err := cache.Load("humble", 42)
		require.Error(t, err)
		assert.False(t, ok)
	})
}
