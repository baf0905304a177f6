package git

import (
	"context"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
)

// FindRepository returns the root of the nearest enclosing git repository,
// or ok == false when the path is not inside one.
func (g *Git) FindRepository(ctx context.Context, path string) (string, bool) {
	out, ok := g.runStatus(ctx, "-C", path, "rev-parse", "--show-toplevel")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(out), true
}

// Version reports the version-control identity of the repository enclosing
// path: the checked-out branch, or the tag exactly matching HEAD when
// detached, the HEAD commit, and whether the working tree is dirty. A path
// outside any repository yields nil without error; a detached, untagged
// HEAD yields an empty ref name, also without error.
func (g *Git) Version(ctx context.Context, path string) (*domain.GitVersion, error) {
	repo, ok := g.FindRepository(ctx, path)
	if !ok {
		return nil, nil
	}

	refName, err := g.branchName(ctx, repo)
	if err != nil {
		return nil, err
	}
	if refName == "" {
		refName = g.exactTag(ctx, repo)
	}

	commit, err := g.run(ctx, "-C", repo, "rev-parse", "HEAD")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get git commit hash")
	}

	dirty, err := g.isDirty(ctx, repo)
	if err != nil {
		return nil, err
	}

	return &domain.GitVersion{
		RefName:    refName,
		CommitHash: strings.TrimSpace(commit),
		Dirty:      dirty,
	}, nil
}

// branchName returns the checked-out branch, or "" when HEAD is detached.
func (g *Git) branchName(ctx context.Context, repo string) (string, error) {
	out, err := g.run(ctx, "-C", repo, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", zerr.Wrap(err, "failed to get git branch name")
	}

	ref := strings.TrimSpace(out)
	if ref == "HEAD" {
		return "", nil
	}
	return ref, nil
}

// exactTag returns the tag exactly matching HEAD, or "" when no tag does.
// `git describe --exact-match` failing is the expected no-tag answer, not
// an error.
func (g *Git) exactTag(ctx context.Context, repo string) string {
	out, ok := g.runStatus(ctx, "-C", repo, "describe", "--tags", "--exact-match")
	if !ok {
		return ""
	}
	return strings.TrimSpace(out)
}

func (g *Git) isDirty(ctx context.Context, repo string) (bool, error) {
	out, err := g.run(ctx, "-C", repo, "status", "--porcelain")
	if err != nil {
		return false, zerr.Wrap(err, "failed to check git repository status")
	}
	return strings.TrimSpace(out) != "", nil
}
