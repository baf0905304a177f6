// Package app implements the application layer for roslock.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.trai.ch/roslock/internal/adapters/rosdistro"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/roslock/internal/engine/index"
	"go.trai.ch/roslock/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Partition modes selectable on the command line.
const (
	// PartitionCatalog routes a key to source resolution when the release
	// catalog contains a package of the same name.
	PartitionCatalog = "catalog"

	// PartitionOrigin routes a key to source resolution when the index
	// defining it is exactly the target distribution's canonical index.
	PartitionOrigin = "origin"
)

// App represents the main application logic.
type App struct {
	cfg       domain.Config
	indexRepo ports.IndexRepo
	scanner   ports.PackageScanner
	keys      ports.KeyLister
	origins   ports.OriginLookup
	catalog   *index.Service
	resolver  *resolver.Resolver
	lockStore ports.LockfileStore
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	indexRepo ports.IndexRepo,
	scanner ports.PackageScanner,
	keys ports.KeyLister,
	origins ports.OriginLookup,
	catalog *index.Service,
	res *resolver.Resolver,
	lockStore ports.LockfileStore,
	logger ports.Logger,
) *App {
	return &App{
		cfg:       cfg,
		indexRepo: indexRepo,
		scanner:   scanner,
		keys:      keys,
		origins:   origins,
		catalog:   catalog,
		resolver:  res,
		lockStore: lockStore,
		logger:    logger,
	}
}

// LockOptions configuration for the Lock method.
type LockOptions struct {
	// Distro is the target distribution, e.g. "humble".
	Distro string

	// PartitionMode selects how keys are split between the release index
	// and system resolution: PartitionCatalog or PartitionOrigin.
	PartitionMode string
}

// Lock resolves every dependency of the workspace under the current
// directory and writes the lockfile.
func (a *App) Lock(ctx context.Context, opts LockOptions) error {
	if err := a.lock(ctx, opts); err != nil {
		return errors.Join(domain.ErrLockFailed, err)
	}
	return nil
}

//nolint:cyclop // orchestration function
func (a *App) lock(ctx context.Context, opts LockOptions) error {
	// 1. Make sure the distribution index is available locally.
	if err := a.indexRepo.Ensure(ctx); err != nil {
		return zerr.Wrap(err, "failed to prepare distribution index")
	}

	declaration, err := a.indexRepo.DistributionBytes(opts.Distro)
	if err != nil {
		return err
	}

	extraction, err := rosdistro.ExtractReleaseRepos(declaration)
	if err != nil {
		return err
	}
	if n := len(extraction.InvalidRepos); n > 0 {
		a.logger.Warn(fmt.Sprintf("%d repositories carry no usable release declaration", n))
	}

	// 2. Inventory the workspace and list its dependency keys. The two
	// scans are independent.
	var (
		packages []domain.SourcePackage
		rawKeys  []string
	)
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		packages, err = a.scanner.Scan(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		rawKeys, err = a.keys.ListKeys(groupCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// 3. Build or load the release catalog.
	catalog, err := a.catalog.Catalog(ctx, opts.Distro, declaration, extraction.ReleaseInfo)
	if err != nil {
		return err
	}

	// 4. Partition the keys and resolve the system side.
	member, err := a.membership(ctx, opts, rawKeys, catalog)
	if err != nil {
		return err
	}
	sourceKeys, systemKeys := resolver.Partition(rawKeys, member)

	system, err := a.resolver.ResolveSystem(ctx, systemKeys)
	if err != nil {
		return err
	}

	// 5. Assemble and write the lockfile.
	lf, err := assemble(packages, sourceKeys, systemKeys, catalog, system)
	if err != nil {
		return err
	}

	if err := a.lockStore.Write(a.cfg.LockfileName, lf); err != nil {
		return err
	}

	a.summarize(lf)
	return nil
}

// membership selects the partition policy.
func (a *App) membership(ctx context.Context, opts LockOptions, keys []string, catalog map[string]domain.ReleasedPackage) (resolver.Membership, error) {
	switch opts.PartitionMode {
	case "", PartitionCatalog:
		return resolver.CatalogMembership(catalog), nil
	case PartitionOrigin:
		origins, err := a.origins.WhereDefined(ctx, keys)
		if err != nil {
			return nil, zerr.Wrap(err, "origin lookup failed")
		}
		return resolver.OriginMembership(origins, a.cfg.DistributionURI(opts.Distro)), nil
	default:
		return nil, errors.Join(domain.ErrValidation,
			zerr.With(zerr.New("unknown partition mode"), "mode", opts.PartitionMode))
	}
}

// assemble merges the three resolution results into a lockfile, enforcing
// the closure invariant.
func assemble(
	packages []domain.SourcePackage,
	sourceKeys, systemKeys []string,
	catalog map[string]domain.ReleasedPackage,
	system map[string]domain.ResolvedRosdep,
) (*domain.Lockfile, error) {
	project := make(map[string]domain.SourcePackage, len(packages))
	for _, pkg := range packages {
		project[pkg.Name] = pkg
	}

	rosdistroPackages := make(map[string]domain.ReleasedPackage, len(sourceKeys))
	for _, key := range sourceKeys {
		pkg, ok := catalog[key]
		if !ok {
			// Origin partition can claim a key the catalog never saw, e.g.
			// when a release repository declares the key but tags nothing.
			return nil, errors.Join(domain.ErrValidation,
				zerr.With(zerr.New("key routed to release index but absent from catalog"), "key", key))
		}
		rosdistroPackages[key] = pkg
	}

	keySet := make(map[string]struct{}, len(sourceKeys)+len(systemKeys))
	for _, key := range sourceKeys {
		keySet[key] = struct{}{}
	}
	for _, key := range systemKeys {
		keySet[key] = struct{}{}
	}

	return domain.NewLockfile(keySet, project, rosdistroPackages, system)
}

func (a *App) summarize(lf *domain.Lockfile) {
	a.logger.Info(fmt.Sprintf("locked %d project, %d rosdistro and %d system packages to %s",
		len(lf.ProjectPackages), len(lf.RosdistroPackages), len(lf.SystemPackages), a.cfg.LockfileName))

	for _, name := range sortedKeys(lf.ProjectPackages) {
		a.logger.Info("project package: " + name)
	}
	for _, name := range sortedKeys(lf.RosdistroPackages) {
		a.logger.Info("rosdistro package: " + name)
	}
	for _, key := range sortedKeys(lf.SystemPackages) {
		a.logger.Info("system package: " + key)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
