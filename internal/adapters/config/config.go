// Package config builds the application configuration value object. The
// environment is read exactly once, here; every other component receives
// the resulting domain.Config.
package config

import (
	"errors"
	"path/filepath"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix namespaces every environment override the tool honors.
const EnvPrefix = "ROSLOCK_"

// Getenv is the environment lookup injected into Load. Tests substitute a
// map-backed implementation.
type Getenv func(key string) string

// Load constructs the configuration from defaults under the user's home
// directory, applying ROSLOCK_* overrides. A missing HOME is a
// configuration error.
func Load(getenv Getenv) (domain.Config, error) {
	home := getenv("HOME")
	if home == "" {
		return domain.Config{}, errors.Join(domain.ErrConfiguration,
			zerr.New("environment variable HOME is not set"))
	}

	cfg := domain.DefaultConfig(home)

	// CACHE_DIR first: the index clone path defaults to a location inside
	// the cache directory.
	if v := getenv(EnvPrefix + "CACHE_DIR"); v != "" {
		cfg.CacheDir = v
		cfg.IndexRepoPath = filepath.Join(v, "rosdistro", "repository")
	}
	if v := getenv(EnvPrefix + "INDEX_REPO_URL"); v != "" {
		cfg.IndexRepoURL = v
	}
	if v := getenv(EnvPrefix + "INDEX_BASE_URL"); v != "" {
		cfg.IndexBaseURL = v
	}
	if v := getenv(EnvPrefix + "INDEX_REPO_PATH"); v != "" {
		cfg.IndexRepoPath = v
	}
	if v := getenv(EnvPrefix + "DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	return cfg, nil
}
