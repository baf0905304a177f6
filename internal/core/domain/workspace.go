package domain

// SourcePackage is a locally present source package that is part of the
// workspace being locked.
type SourcePackage struct {
	// Name is the package name as reported by the workspace scan.
	Name string `yaml:"name"`

	// Path is the absolute path to the package directory.
	Path string `yaml:"path"`

	// Type is the build type, e.g. "ros.ament_cmake".
	Type string `yaml:"type"`

	// Git is the version-control identity of the enclosing repository,
	// or nil when the package is not inside one.
	Git *GitVersion `yaml:"git,omitempty"`
}

// GitVersion is the version-control identity of a repository checkout.
type GitVersion struct {
	// RefName is the checked-out branch, or the tag exactly matching HEAD
	// when detached. Empty only in a detached, untagged state.
	RefName string `yaml:"ref_name,omitempty"`

	// CommitHash is the commit HEAD points to.
	CommitHash string `yaml:"commit_hash"`

	// Dirty reports uncommitted changes in the working tree.
	Dirty bool `yaml:"dirty"`
}
