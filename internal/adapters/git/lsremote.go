package git

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
)

const tagsRefPrefix = "refs/tags/"

// ListRemoteTags lists the tags published on a remote repository via
// `git ls-remote --tags`, without cloning. The listing failing is a hard
// error; malformed lines and non-tag references are skipped with a warning.
func (g *Git) ListRemoteTags(ctx context.Context, repoURL string) ([]domain.TagInfo, error) {
	out, err := g.run(ctx, "ls-remote", "--tags", repoURL)
	if err != nil {
		return nil, err
	}
	return g.parseTagListing(out), nil
}

// parseTagListing parses ls-remote output lines of the form
// "<commit-hash>\t<ref>", keeping only refs under the tags namespace with
// the prefix stripped.
func (g *Git) parseTagListing(out string) []domain.TagInfo {
	var tags []domain.TagInfo

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			g.logger.Warn(fmt.Sprintf("unexpected line in git ls-remote output: %q", line))
			continue
		}

		ref := fields[1]
		if !strings.HasPrefix(ref, tagsRefPrefix) {
			g.logger.Warn(fmt.Sprintf("skipping non-tag reference: %s", ref))
			continue
		}

		tags = append(tags, domain.TagInfo{
			Tag: strings.TrimPrefix(ref, tagsRefPrefix),
			Ref: fields[0],
		})
	}

	return tags
}
