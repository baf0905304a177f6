package domain

// ReleaseRepoInfo declares where and how a package's releases are tagged.
type ReleaseRepoInfo struct {
	// URL is the release repository URL.
	URL string `yaml:"url"`

	// TagPattern is the release tag template containing {package} and
	// {version} placeholders, e.g. "release/humble/{package}/{version}".
	TagPattern string `yaml:"tag_pattern"`
}

// TagInfo is one remote tag and the commit it points to.
type TagInfo struct {
	Tag string
	Ref string
}

// ReleasedVersion is one released version of a package, pinned to the tag
// that published it and the commit the tag points to.
type ReleasedVersion struct {
	Version    Version `yaml:"version"`
	Tag        string  `yaml:"tag"`
	CommitHash string  `yaml:"commit_hash"`
}

// ReleasedPackage is a package known to the release catalog together with
// every version found for it.
type ReleasedPackage struct {
	Name           string            `yaml:"name"`
	ReleaseRepoURL string            `yaml:"release_repo_url"`
	Versions       []ReleasedVersion `yaml:"versions"`
}

// AddVersion appends a released version to the package. An exact duplicate
// (same version, tag and commit) is dropped. A version number already present
// under a different tag or commit is kept and reported as an anomaly so the
// caller can warn about it.
func (p *ReleasedPackage) AddVersion(v ReleasedVersion) (added, anomaly bool) {
	for _, existing := range p.Versions {
		if existing == v {
			return false, false
		}
		if existing.Version == v.Version {
			anomaly = true
		}
	}
	p.Versions = append(p.Versions, v)
	return true, anomaly
}
