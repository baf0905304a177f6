// Package git shells out to the git binary for remote tag listings, index
// repository clones and workspace provenance lookups. No library clone is
// kept for remote operations; everything works off git's plumbing output.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Git wraps invocations of the git binary.
type Git struct {
	bin    string
	logger ports.Logger
}

// New locates the git binary and returns a Git adapter.
func New(logger ports.Logger) (*Git, error) {
	bin, err := exec.LookPath("git")
	if err != nil {
		return nil, errors.Join(domain.ErrToolUnavailable, zerr.Wrap(err, "git is not installed or not found in PATH"))
	}
	return &Git{bin: bin, logger: logger}, nil
}

// run executes git with the given arguments and returns its stdout. A
// non-zero exit is a hard failure carrying the stderr diagnostic.
func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, g.bin, args...) //nolint:gosec // fixed binary, caller-controlled args
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
		return "", errors.Join(domain.ErrExternalTool, wrapped)
	}

	return stdout.String(), nil
}

// runStatus is like run but reports a non-zero exit as ok == false instead
// of an error. Used for queries where failure is an expected answer.
func (g *Git) runStatus(ctx context.Context, args ...string) (string, bool) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, g.bin, args...) //nolint:gosec // fixed binary, caller-controlled args
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", false
	}
	return stdout.String(), true
}
