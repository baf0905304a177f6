package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/adapters/config"
	"go.trai.ch/roslock/internal/core/domain"
)

func envFrom(env map[string]string) config.Getenv {
	return func(key string) string { return env[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(envFrom(map[string]string{"HOME": "/home/dev"}))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultIndexRepoURL, cfg.IndexRepoURL)
	assert.Equal(t, domain.DefaultIndexBaseURL, cfg.IndexBaseURL)
	assert.Equal(t, filepath.Join("/home/dev", ".cache", "roslock"), cfg.CacheDir)
	assert.Equal(t, filepath.Join("/home/dev", ".roslock"), cfg.DataDir)
	assert.Equal(t, domain.DefaultLockfileName, cfg.LockfileName)
}

func TestLoad_MissingHome(t *testing.T) {
	_, err := config.Load(envFrom(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestLoad_Overrides(t *testing.T) {
	t.Run("CacheDirMovesIndexClone", func(t *testing.T) {
		cfg, err := config.Load(envFrom(map[string]string{
			"HOME":              "/home/dev",
			"ROSLOCK_CACHE_DIR": "/fast/cache",
		}))
		require.NoError(t, err)

		assert.Equal(t, "/fast/cache", cfg.CacheDir)
		assert.Equal(t, filepath.Join("/fast/cache", "rosdistro", "repository"), cfg.IndexRepoPath)
	})

	t.Run("ExplicitIndexRepoPathWinsOverCacheDir", func(t *testing.T) {
		cfg, err := config.Load(envFrom(map[string]string{
			"HOME":                    "/home/dev",
			"ROSLOCK_CACHE_DIR":       "/fast/cache",
			"ROSLOCK_INDEX_REPO_PATH": "/mnt/rosdistro",
		}))
		require.NoError(t, err)

		assert.Equal(t, "/fast/cache", cfg.CacheDir)
		assert.Equal(t, "/mnt/rosdistro", cfg.IndexRepoPath)
	})

	t.Run("IndexURLs", func(t *testing.T) {
		cfg, err := config.Load(envFrom(map[string]string{
			"HOME":                   "/home/dev",
			"ROSLOCK_INDEX_REPO_URL": "https://git.internal/mirror/rosdistro.git",
			"ROSLOCK_INDEX_BASE_URL": "https://git.internal/raw/rosdistro/master",
		}))
		require.NoError(t, err)

		assert.Equal(t, "https://git.internal/mirror/rosdistro.git", cfg.IndexRepoURL)
		assert.Equal(t,
			"https://git.internal/raw/rosdistro/master/humble/distribution.yaml",
			cfg.DistributionURI("humble"))
	})
}
