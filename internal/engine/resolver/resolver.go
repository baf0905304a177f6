// Package resolver partitions a workspace's dependency keys between the
// release index and the system package manager, and resolves the system
// side.
package resolver

import (
	"context"
	"fmt"
	"sort"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Membership reports whether a dependency key is served by the release
// index of the target distribution.
type Membership func(key string) bool

// CatalogMembership builds a Membership from catalog presence. Dependency
// keys and catalog package names share one identity; no translation is
// applied.
func CatalogMembership(catalog map[string]domain.ReleasedPackage) Membership {
	return func(key string) bool {
		_, ok := catalog[key]
		return ok
	}
}

// OriginMembership builds a Membership from a per-key defining-index lookup.
// A key belongs to the release index only when its declared origin equals
// the canonical distribution URI exactly; any other origin routes the key to
// system resolution.
func OriginMembership(origins map[string]string, canonicalURI string) Membership {
	return func(key string) bool {
		return origins[key] == canonicalURI
	}
}

// Partition splits keys into the set served by the release index and the
// set left to the system package manager. The two results are disjoint and
// their union is the input; both are sorted.
func Partition(keys []string, member Membership) (sourceKeys, systemKeys []string) {
	sourceKeys = make([]string, 0, len(keys))
	systemKeys = make([]string, 0, len(keys))

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if member(key) {
			sourceKeys = append(sourceKeys, key)
		} else {
			systemKeys = append(systemKeys, key)
		}
	}

	sort.Strings(sourceKeys)
	sort.Strings(systemKeys)
	return sourceKeys, systemKeys
}

// Resolver resolves system dependency keys and enriches the results with
// package manager metadata.
type Resolver struct {
	rosdep ports.KeyResolver
	apt    ports.AptInspector
	pip    ports.PipInspector
	logger ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(rosdep ports.KeyResolver, apt ports.AptInspector, pip ports.PipInspector, logger ports.Logger) *Resolver {
	return &Resolver{
		rosdep: rosdep,
		apt:    apt,
		pip:    pip,
		logger: logger,
	}
}

// ResolveSystem maps each key to its system package resolution. Keys whose
// resolver source is apt or pip additionally carry the exact package
// versions currently served by that ecosystem; a package missing from the
// ecosystem's database is skipped, not an error.
func (r *Resolver) ResolveSystem(ctx context.Context, keys []string) (map[string]domain.ResolvedRosdep, error) {
	if len(keys) == 0 {
		return map[string]domain.ResolvedRosdep{}, nil
	}

	resolved, err := r.rosdep.Resolve(ctx, keys)
	if err != nil {
		return nil, zerr.Wrap(err, "system key resolution failed")
	}

	for key, dep := range resolved {
		enriched, err := r.enrich(ctx, dep)
		if err != nil {
			return nil, zerr.With(err, "key", key)
		}
		resolved[key] = enriched
	}

	return resolved, nil
}

func (r *Resolver) enrich(ctx context.Context, dep domain.ResolvedRosdep) (domain.ResolvedRosdep, error) {
	switch dep.Source {
	case "apt":
		for _, pkg := range dep.Packages {
			info, err := r.apt.Show(ctx, pkg)
			if err != nil {
				return dep, err
			}
			if info == nil {
				r.logger.Warn(fmt.Sprintf("apt package %q not found, recording without version", pkg))
				continue
			}
			if dep.Apt == nil {
				dep.Apt = make(map[string]domain.AptVersion)
			}
			dep.Apt[pkg] = *info
		}
	case "pip":
		for _, pkg := range dep.Packages {
			info, err := r.pip.Show(ctx, pkg)
			if err != nil {
				return dep, err
			}
			if info == nil {
				r.logger.Warn(fmt.Sprintf("pip package %q not installed, recording without version", pkg))
				continue
			}
			if dep.Pip == nil {
				dep.Pip = make(map[string]domain.PipVersion)
			}
			dep.Pip[pkg] = *info
		}
	}
	return dep, nil
}
