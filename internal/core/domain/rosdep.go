package domain

// ResolvedRosdep is a dependency key resolved through the system package
// manager, with the packages the key expands to.
type ResolvedRosdep struct {
	// Key is the dependency key as declared by the workspace.
	Key string `yaml:"key"`

	// Source is the package manager that serves the key, e.g. "apt" or "pip".
	Source string `yaml:"source"`

	// Packages lists the native packages the key resolves to, in the order
	// reported by the resolver.
	Packages []string `yaml:"packages"`

	// Apt carries per-package apt metadata for apt-sourced keys. A package
	// absent from the map was not found in the apt database.
	Apt map[string]AptVersion `yaml:"apt,omitempty"`

	// Pip carries per-package pip metadata for pip-sourced keys.
	Pip map[string]PipVersion `yaml:"pip,omitempty"`
}

// AptVersion is the installable version of an apt package and the hash of
// its archive.
type AptVersion struct {
	Version string `yaml:"version"`
	SHA256  string `yaml:"sha256"`
}

// PipVersion is the installed version of a pip package.
type PipVersion struct {
	Version string `yaml:"version"`
}
