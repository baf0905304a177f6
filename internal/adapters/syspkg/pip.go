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

// Pip implements ports.PipInspector via `pip show`.
type Pip struct {
	bin    string
	logger ports.Logger
}

// NewPip locates the pip binary and returns a Pip inspector.
func NewPip(logger ports.Logger) (*Pip, error) {
	bin, err := exec.LookPath("pip")
	if err != nil {
		// pip3 is the only spelling on some hosts.
		bin, err = exec.LookPath("pip3")
	}
	if err != nil {
		return nil, errors.Join(domain.ErrToolUnavailable, zerr.Wrap(err, "pip is not installed or not found in PATH"))
	}
	return &Pip{bin: bin, logger: logger}, nil
}

// Show returns the installed version of the package, or nil when the
// package is not installed. A lookup that succeeds but lacks the Version
// field is a parse error.
func (p *Pip) Show(ctx context.Context, pkg string) (*domain.PipVersion, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.bin, "show", pkg) //nolint:gosec // fixed binary
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), "not found") {
			return nil, nil
		}
		wrapped := zerr.With(zerr.Wrap(err, "pip show failed"), "package", pkg)
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
		return nil, errors.Join(domain.ErrExternalTool, wrapped)
	}

	fields := parseFieldBlock(stdout.String())

	version, ok := fields["Version"]
	if !ok {
		return nil, missingField(pkg, "Version")
	}

	return &domain.PipVersion{Version: version}, nil
}
