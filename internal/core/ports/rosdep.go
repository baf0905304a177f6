package ports

import (
	"context"

	"go.trai.ch/roslock/internal/core/domain"
)

//go:generate mockgen -source=rosdep.go -destination=mocks/mock_rosdep.go -package=mocks

// KeyLister enumerates the raw dependency keys a workspace declares.
type KeyLister interface {
	ListKeys(ctx context.Context) ([]string, error)
}

// KeyResolver resolves dependency keys through the system package manager.
type KeyResolver interface {
	// Resolve maps each key to its system package resolution. The call is
	// batched; all keys are resolved in one invocation.
	Resolve(ctx context.Context, keys []string) (map[string]domain.ResolvedRosdep, error)
}

// OriginLookup reports, per key, the URI of the index that defines it.
type OriginLookup interface {
	WhereDefined(ctx context.Context, keys []string) (map[string]string, error)
}
