package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// LockfileVersion is the current lockfile format version. It must be
// incremented on any incompatible schema change; readers reject versions
// they do not know.
const LockfileVersion = 0

// DefaultLockfileName is the well-known lockfile path relative to the
// workspace root.
const DefaultLockfileName = "roslock.lock"

// Lockfile is a reproducible snapshot of every dependency of a workspace.
// Every dependency key the workspace declares appears in exactly one of
// RosdistroPackages or SystemPackages.
type Lockfile struct {
	Version int `yaml:"version"`

	// ProjectPackages maps package names to the workspace's own source packages.
	ProjectPackages map[string]SourcePackage `yaml:"project_packages"`

	// RosdistroPackages maps package names to packages served by the
	// distribution's release index.
	RosdistroPackages map[string]ReleasedPackage `yaml:"rosdistro_packages"`

	// SystemPackages maps dependency keys to their system package resolution.
	SystemPackages map[string]ResolvedRosdep `yaml:"system_packages"`
}

// NewLockfile merges the workspace inventory, release index resolutions and
// system resolutions into one snapshot. keys is the workspace's full
// dependency key set; the merge fails if any key is missing from both
// resolved maps or present in both.
func NewLockfile(
	keys map[string]struct{},
	project map[string]SourcePackage,
	rosdistro map[string]ReleasedPackage,
	system map[string]ResolvedRosdep,
) (*Lockfile, error) {
	for key := range keys {
		_, inRosdistro := rosdistro[key]
		_, inSystem := system[key]
		switch {
		case inRosdistro && inSystem:
			return nil, closureViolation("dependency key resolved by both sources", key)
		case !inRosdistro && !inSystem:
			return nil, closureViolation("dependency key resolved by neither source", key)
		}
	}

	for name := range rosdistro {
		if _, ok := keys[name]; !ok {
			return nil, closureViolation("resolved package not in dependency key set", name)
		}
	}
	for key := range system {
		if _, ok := keys[key]; !ok {
			return nil, closureViolation("resolved key not in dependency key set", key)
		}
	}

	return &Lockfile{
		Version:           LockfileVersion,
		ProjectPackages:   project,
		RosdistroPackages: rosdistro,
		SystemPackages:    system,
	}, nil
}

func closureViolation(msg, key string) error {
	return errors.Join(ErrValidation, zerr.With(zerr.New(msg), "key", key))
}
