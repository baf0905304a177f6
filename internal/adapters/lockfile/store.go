// Package lockfile serializes lockfiles to and from disk as YAML.
package lockfile

import (
	"errors"
	"os"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.LockfileStore.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Write serializes the lockfile to the given path.
func (s *Store) Write(path string, lf *domain.Lockfile) error {
	data, err := yaml.Marshal(lf)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // lockfile is a project artifact
		return zerr.Wrap(err, "failed to write lockfile")
	}
	return nil
}

// Read deserializes the lockfile at the given path. A format version this
// build does not know is rejected rather than guessed at.
func (s *Store) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	var lf domain.Lockfile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, errors.Join(domain.ErrParse, zerr.Wrap(err, "failed to parse lockfile"))
	}

	if lf.Version != domain.LockfileVersion {
		verErr := zerr.With(zerr.New("unsupported lockfile version"), "version", lf.Version)
		verErr = zerr.With(verErr, "supported", domain.LockfileVersion)
		return nil, errors.Join(domain.ErrValidation, verErr)
	}

	return &lf, nil
}
