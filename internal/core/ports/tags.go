package ports

import (
	"context"

	"go.trai.ch/roslock/internal/core/domain"
)

//go:generate mockgen -source=tags.go -destination=mocks/mock_tags.go -package=mocks

// TagFetcher lists the tags currently published on a remote repository.
type TagFetcher interface {
	// ListRemoteTags returns every (tag, commit) pair on the remote,
	// without cloning. References outside the tags namespace are skipped.
	ListRemoteTags(ctx context.Context, repoURL string) ([]domain.TagInfo, error)
}
