// Package colcon enumerates workspace source packages via `colcon list` and
// annotates each with the version-control identity of its enclosing
// repository.
package colcon

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports"
	"go.trai.ch/zerr"
)

// list entries look like "rclcpp\t/ws/src/rclcpp\t(ros.ament_cmake)".
var listEntryRe = regexp.MustCompile(`^(\S+)\s+(.+)\s+\((\S+)\)$`)

// Scanner implements ports.PackageScanner on top of the colcon binary.
type Scanner struct {
	bin       string
	inspector ports.RepoInspector
	logger    ports.Logger
}

// NewScanner locates the colcon binary and returns a Scanner.
func NewScanner(inspector ports.RepoInspector, logger ports.Logger) (*Scanner, error) {
	bin, err := exec.LookPath("colcon")
	if err != nil {
		return nil, errors.Join(domain.ErrToolUnavailable, zerr.Wrap(err, "colcon is not installed or not found in PATH"))
	}
	return &Scanner{bin: bin, inspector: inspector, logger: logger}, nil
}

// Scan lists the workspace packages under the current directory. Each
// package inside a git repository carries its provenance; packages outside
// any repository simply have none.
func (s *Scanner) Scan(ctx context.Context) ([]domain.SourcePackage, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, s.bin, "list")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "colcon list failed"), "stderr", strings.TrimSpace(stderr.String()))
		return nil, errors.Join(domain.ErrExternalTool, wrapped)
	}

	packages, err := s.parseList(stdout.String())
	if err != nil {
		return nil, err
	}

	for i := range packages {
		version, err := s.inspector.Version(ctx, packages[i].Path)
		if err != nil {
			return nil, zerr.With(err, "package", packages[i].Name)
		}
		packages[i].Git = version
	}

	return packages, nil
}

// parseList parses `colcon list` output. Lines that do not look like list
// entries (progress chatter, blank lines) are ignored.
func (s *Scanner) parseList(out string) ([]domain.SourcePackage, error) {
	var packages []domain.SourcePackage

	for _, line := range strings.Split(out, "\n") {
		m := listEntryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		abs, err := filepath.Abs(strings.TrimSpace(m[2]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve package path"), "path", m[2])
		}

		packages = append(packages, domain.SourcePackage{
			Name: m[1],
			Path: abs,
			Type: m[3],
		})
	}

	return packages, nil
}
