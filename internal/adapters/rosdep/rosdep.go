// Package rosdep shells out to the rosdep tool to enumerate a workspace's
// dependency keys, resolve them to system packages and look up which index
// defines them.
package rosdep

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

// Rosdep wraps invocations of the rosdep binary.
type Rosdep struct {
	bin    string
	logger ports.Logger
}

// New locates the rosdep binary and returns a Rosdep adapter.
func New(logger ports.Logger) (*Rosdep, error) {
	bin, err := exec.LookPath("rosdep")
	if err != nil {
		return nil, errors.Join(domain.ErrToolUnavailable, zerr.Wrap(err, "rosdep is not installed or not found in PATH"))
	}
	return &Rosdep{bin: bin, logger: logger}, nil
}

func (r *Rosdep) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.bin, args...) //nolint:gosec // fixed binary, caller-controlled args
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "rosdep command failed"), "args", strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
		return "", errors.Join(domain.ErrExternalTool, wrapped)
	}

	return stdout.String(), nil
}

// ListKeys enumerates the raw dependency keys declared by the packages
// under the current directory, excluding keys satisfied by workspace
// sources.
func (r *Rosdep) ListKeys(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "keys", "--from-paths", ".", "--ignore-src")
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, line := range strings.Split(out, "\n") {
		if key := strings.TrimSpace(line); key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Resolve resolves a batch of keys to their system package records via
// `rosdep resolve`.
func (r *Rosdep) Resolve(ctx context.Context, keys []string) (map[string]domain.ResolvedRosdep, error) {
	out, err := r.run(ctx, append([]string{"resolve"}, keys...)...)
	if err != nil {
		return nil, err
	}
	return parseResolveOutput(out)
}

// WhereDefined reports, per key, the URI of the index defining it. rosdep
// prints one origin line per input key, in input order.
func (r *Rosdep) WhereDefined(ctx context.Context, keys []string) (map[string]string, error) {
	out, err := r.run(ctx, append([]string{"where-defined"}, keys...)...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) != len(keys) {
		parseErr := zerr.With(zerr.New("origin lookup returned wrong line count"), "keys", len(keys))
		parseErr = zerr.With(parseErr, "lines", len(lines))
		return nil, errors.Join(domain.ErrParse, parseErr)
	}

	origins := make(map[string]string, len(keys))
	for i, key := range keys {
		origins[key] = lines[i]
	}
	return origins, nil
}
