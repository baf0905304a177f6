// Package syspkg looks up exact versions of resolved system packages in the
// host's package manager databases (apt and pip).
package syspkg

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

// Apt implements ports.AptInspector via `apt-cache show`.
type Apt struct {
	bin    string
	logger ports.Logger
}

// NewApt locates the apt-cache binary and returns an Apt inspector.
func NewApt(logger ports.Logger) (*Apt, error) {
	bin, err := exec.LookPath("apt-cache")
	if err != nil {
		return nil, errors.Join(domain.ErrToolUnavailable, zerr.Wrap(err, "apt-cache is not installed or not found in PATH"))
	}
	return &Apt{bin: bin, logger: logger}, nil
}

// Show returns the version and archive hash of the package, or nil when apt
// does not know the package. A lookup that succeeds but lacks the Version
// or SHA256 field is a parse error.
func (a *Apt) Show(ctx context.Context, pkg string) (*domain.AptVersion, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, a.bin, "show", pkg) //nolint:gosec // fixed binary
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if isAptNotFound(stderr.String()) {
			return nil, nil
		}
		wrapped := zerr.With(zerr.Wrap(err, "apt-cache show failed"), "package", pkg)
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
		return nil, errors.Join(domain.ErrExternalTool, wrapped)
	}

	fields := parseFieldBlock(stdout.String())

	version, ok := fields["Version"]
	if !ok {
		return nil, missingField(pkg, "Version")
	}
	sha, ok := fields["SHA256"]
	if !ok {
		return nil, missingField(pkg, "SHA256")
	}

	return &domain.AptVersion{Version: version, SHA256: sha}, nil
}

func isAptNotFound(stderr string) bool {
	return strings.Contains(stderr, "Unable to locate package") ||
		strings.Contains(stderr, "No packages found")
}

// parseFieldBlock parses a single "Key: Value" record block, keeping the
// first occurrence of each field.
func parseFieldBlock(out string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.HasPrefix(line, " ") {
			continue
		}
		if _, seen := fields[key]; !seen {
			fields[key] = strings.TrimSpace(value)
		}
	}
	return fields
}

func missingField(pkg, field string) error {
	err := zerr.With(zerr.New("package metadata lacks required field"), "package", pkg)
	err = zerr.With(err, "field", field)
	return errors.Join(domain.ErrParse, err)
}
