package tagpattern_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/engine/tagpattern"
)

func TestCompile_RejectsMalformedTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "MissingPackagePlaceholder", template: "release/humble/{version}"},
		{name: "MissingVersionPlaceholder", template: "release/humble/{package}"},
		{name: "MissingBothPlaceholders", template: "release/humble/static"},
		{name: "RepeatedPackagePlaceholder", template: "{package}/{package}/{version}"},
		{name: "RepeatedVersionPlaceholder", template: "{package}/{version}/{version}"},
		{name: "Empty", template: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tagpattern.Compile(tt.template)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		tag         string
		wantOK      bool
		wantPackage string
		wantVersion domain.Version
	}{
		{
			name:        "StandardReleaseTag",
			template:    "release/humble/{package}/{version}",
			tag:         "release/humble/rclcpp/16.0.4-2",
			wantOK:      true,
			wantPackage: "rclcpp",
			wantVersion: domain.Version{Major: 16, Minor: 0, Patch: 4, Increment: 2},
		},
		{
			name:        "VersionBeforePackage",
			template:    "v{version}/{package}",
			tag:         "v1.2.3-1/nav2_core",
			wantOK:      true,
			wantPackage: "nav2_core",
			wantVersion: domain.Version{Major: 1, Minor: 2, Patch: 3, Increment: 1},
		},
		{
			name:        "TrailingCharactersAfterMatch",
			template:    "release/humble/{package}/{version}",
			tag:         "release/humble/rclcpp/16.0.4-2^{}",
			wantOK:      true,
			wantPackage: "rclcpp",
			wantVersion: domain.Version{Major: 16, Minor: 0, Patch: 4, Increment: 2},
		},
		{
			name:     "DifferentDistro",
			template: "release/humble/{package}/{version}",
			tag:      "release/jazzy/rclcpp/16.0.4-2",
			wantOK:   false,
		},
		{
			name:     "ThreePartVersionRejected",
			template: "release/humble/{package}/{version}",
			tag:      "release/humble/rclcpp/16.0.4",
			wantOK:   false,
		},
		{
			name:     "UpstreamTagIgnored",
			template: "release/humble/{package}/{version}",
			tag:      "16.0.4",
			wantOK:   false,
		},
		{
			name:     "LiteralDotsNotWildcards",
			template: "release/humble/{package}/{version}",
			tag:      "releaseXhumble/rclcpp/16.0.4-2",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, err := tagpattern.Compile(tt.template)
			require.NoError(t, err)

			release, ok := matcher.Match(tt.tag)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantPackage, release.Package)
			assert.Equal(t, tt.wantVersion, release.Version)
		})
	}
}
