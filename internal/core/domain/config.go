package domain

import "path/filepath"

// DefaultIndexRepoURL is the distribution index repository cloned when no
// override is configured.
const DefaultIndexRepoURL = "https://github.com/ros/rosdistro.git"

// DefaultIndexBaseURL is the base URL under which distribution declaration
// files are published. Dependency keys defined under any other index are
// routed to system resolution.
const DefaultIndexBaseURL = "https://raw.githubusercontent.com/ros/rosdistro/master"

// Config carries every path and URL the tool needs. It is constructed once
// at startup and passed into the components that use it; nothing below the
// entry point reads the process environment.
type Config struct {
	// IndexRepoURL is the URL of the distribution index repository.
	IndexRepoURL string

	// IndexBaseURL is the base URL distribution declaration files are
	// published under, used to recognize keys defined by the target index.
	IndexBaseURL string

	// IndexRepoPath is the local clone of the index repository.
	IndexRepoPath string

	// CacheDir is the root of the persistent cache.
	CacheDir string

	// DataDir holds durable tool state.
	DataDir string

	// LockfileName is the lockfile path relative to the workspace root.
	LockfileName string
}

// DefaultConfig returns the configuration rooted under the given home
// directory.
func DefaultConfig(home string) Config {
	cacheDir := filepath.Join(home, ".cache", "roslock")
	return Config{
		IndexRepoURL:  DefaultIndexRepoURL,
		IndexBaseURL:  DefaultIndexBaseURL,
		IndexRepoPath: filepath.Join(cacheDir, "rosdistro", "repository"),
		CacheDir:      cacheDir,
		DataDir:       filepath.Join(home, ".roslock"),
		LockfileName:  DefaultLockfileName,
	}
}

// DistributionFilePath returns the distribution declaration file for the
// given distribution inside the index clone.
func (c Config) DistributionFilePath(distro string) string {
	return filepath.Join(c.IndexRepoPath, distro, "distribution.yaml")
}

// DistributionURI returns the canonical URI of the distribution declaration
// file under the published index. A key counts as index-defined only when
// its declared origin matches this URI exactly.
func (c Config) DistributionURI(distro string) string {
	return c.IndexBaseURL + "/" + distro + "/distribution.yaml"
}

// CatalogCachePath returns the release catalog cache file for the given
// distribution.
func (c Config) CatalogCachePath(distro string) string {
	return filepath.Join(c.CacheDir, "rosdistro", distro+"-catalog.yaml")
}
