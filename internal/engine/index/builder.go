// Package index builds the release catalog of a distribution by scanning
// the tags of every release repository the distribution declares.
package index

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/roslock/internal/engine/tagpattern"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Builder aggregates per-repository tag scans into one release catalog.
type Builder struct {
	fetcher   ports.TagFetcher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewBuilder creates a Builder.
func NewBuilder(fetcher ports.TagFetcher, logger ports.Logger, telemetry ports.Telemetry) *Builder {
	return &Builder{
		fetcher:   fetcher,
		logger:    logger,
		telemetry: telemetry,
	}
}

// repoResult is the local outcome of scanning one repository. Units never
// touch shared state; the coordinating goroutine folds these into the
// catalog.
type repoResult struct {
	repoName string
	packages map[string]*domain.ReleasedPackage
}

// Build scans every release repository concurrently and folds the matches
// into a catalog keyed by package name. The fan-out is bounded at a small
// multiple of the hardware concurrency so remote hosts are not overwhelmed.
// The first failing repository aborts the whole build.
func (b *Builder) Build(ctx context.Context, repos map[string]domain.ReleaseRepoInfo) (map[string]domain.ReleasedPackage, error) {
	catalog := make(map[string]domain.ReleasedPackage)
	if len(repos) == 0 {
		return catalog, nil
	}

	results := make(chan repoResult, len(repos))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(4 * runtime.NumCPU())

	// Deterministic scan order keeps the duplicate-name overwrite below
	// reproducible across runs.
	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := repos[name]
		g.Go(func() error {
			packages, err := b.scanRepo(groupCtx, name, info)
			if err != nil {
				return err
			}
			results <- repoResult{repoName: name, packages: packages}
			return nil
		})
	}

	err := g.Wait()
	close(results)

	// Fold whatever completed; on failure the partial catalog is discarded
	// with the error.
	folded := make(map[string]repoResult, len(repos))
	for res := range results {
		folded[res.repoName] = res
	}
	if err != nil {
		return nil, zerr.Wrap(err, "release catalog build failed")
	}

	for _, name := range names {
		res, ok := folded[name]
		if !ok {
			continue
		}
		for pkgName, pkg := range res.packages {
			if existing, ok := catalog[pkgName]; ok {
				// Two release repositories claiming the same package name:
				// the later repository wins, in scan order.
				b.logger.Warn(fmt.Sprintf(
					"package %q declared by both %s and %s, keeping %s",
					pkgName, existing.ReleaseRepoURL, pkg.ReleaseRepoURL, pkg.ReleaseRepoURL))
			}
			catalog[pkgName] = *pkg
		}
	}

	return catalog, nil
}

// scanRepo fetches the remote tags of one repository and matches them
// against its release tag pattern. Non-matching tags contribute nothing.
func (b *Builder) scanRepo(ctx context.Context, repoName string, info domain.ReleaseRepoInfo) (map[string]*domain.ReleasedPackage, error) {
	ctx, vertex := b.telemetry.Record(ctx, "scan "+repoName)

	packages, err := b.scanRepoTags(ctx, info)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.With(err, "repository", repoName)
	}
	return packages, nil
}

func (b *Builder) scanRepoTags(ctx context.Context, info domain.ReleaseRepoInfo) (map[string]*domain.ReleasedPackage, error) {
	matcher, err := tagpattern.Compile(info.TagPattern)
	if err != nil {
		return nil, err
	}

	tags, err := b.fetcher.ListRemoteTags(ctx, info.URL)
	if err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		b.logger.Warn(fmt.Sprintf("no tags found for repository %s", info.URL))
		return nil, nil
	}

	packages := make(map[string]*domain.ReleasedPackage)
	for _, tag := range tags {
		release, ok := matcher.Match(tag.Tag)
		if !ok {
			continue
		}

		pkg, ok := packages[release.Package]
		if !ok {
			pkg = &domain.ReleasedPackage{
				Name:           release.Package,
				ReleaseRepoURL: info.URL,
			}
			packages[release.Package] = pkg
		}

		_, anomaly := pkg.AddVersion(domain.ReleasedVersion{
			Version:    release.Version,
			Tag:        tag.Tag,
			CommitHash: tag.Ref,
		})
		if anomaly {
			b.logger.Warn(fmt.Sprintf(
				"package %q has version %s released from more than one commit",
				release.Package, release.Version))
		}
	}

	return packages, nil
}
