package git

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
)

// IndexRepo maintains the local shallow clone of the distribution index
// repository and reads distribution declaration files from it.
type IndexRepo struct {
	git *Git
	cfg domain.Config
}

// NewIndexRepo creates an IndexRepo for the configured index repository.
func NewIndexRepo(git *Git, cfg domain.Config) *IndexRepo {
	return &IndexRepo{git: git, cfg: cfg}
}

// Ensure clones the index repository shallowly if no clone is present yet.
// An existing clone is reused as-is; refreshing it is the user's call, the
// catalog cache is validated against its content either way.
func (r *IndexRepo) Ensure(ctx context.Context) error {
	if _, err := os.Stat(r.cfg.IndexRepoPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to stat index repository clone")
	}

	if err := os.MkdirAll(filepath.Dir(r.cfg.IndexRepoPath), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create index repository directory")
	}

	if _, err := r.git.run(ctx, "clone", "--depth", "1", r.cfg.IndexRepoURL, r.cfg.IndexRepoPath); err != nil {
		return zerr.Wrap(err, "failed to clone index repository")
	}
	return nil
}

// DistributionBytes reads the distribution declaration file for the given
// distribution from the clone.
func (r *IndexRepo) DistributionBytes(distro string) ([]byte, error) {
	path := r.cfg.DistributionFilePath(distro)

	data, err := os.ReadFile(path) //nolint:gosec // path derives from trusted config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			wrapped := zerr.With(zerr.New("distribution file does not exist"), "path", path)
			return nil, errors.Join(domain.ErrValidation, zerr.With(wrapped, "distro", distro))
		}
		return nil, zerr.Wrap(err, "failed to read distribution file")
	}
	return data, nil
}
