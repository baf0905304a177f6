package lockfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/adapters/lockfile"
	"go.trai.ch/roslock/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultLockfileName)
	store := lockfile.NewStore()

	lf := &domain.Lockfile{
		Version: domain.LockfileVersion,
		ProjectPackages: map[string]domain.SourcePackage{
			"my_robot_driver": {
				Name: "my_robot_driver",
				Path: "/ws/src/my_robot_driver",
				Type: "ros.ament_cmake",
				Git: &domain.GitVersion{
					RefName:    "main",
					CommitHash: "abcdef0123456789",
					Dirty:      true,
				},
			},
		},
		RosdistroPackages: map[string]domain.ReleasedPackage{
			"rclcpp": {
				Name:           "rclcpp",
				ReleaseRepoURL: "https://github.com/ros2-gbp/rclcpp-release.git",
				Versions: []domain.ReleasedVersion{
					{
						Version:    domain.Version{Major: 16, Minor: 0, Patch: 4, Increment: 2},
						Tag:        "release/humble/rclcpp/16.0.4-2",
						CommitHash: "aaa111",
					},
				},
			},
		},
		SystemPackages: map[string]domain.ResolvedRosdep{
			"libboost-dev": {
				Key:      "libboost-dev",
				Source:   "apt",
				Packages: []string{"libboost-dev"},
				Apt: map[string]domain.AptVersion{
					"libboost-dev": {Version: "1.74.0.3ubuntu7", SHA256: "deadbeef"},
				},
			},
		},
	}

	require.NoError(t, store.Write(path, lf))

	read, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, lf, read)
}

func TestStore_Read_Failures(t *testing.T) {
	store := lockfile.NewStore()
	dir := t.TempDir()

	t.Run("MissingFile", func(t *testing.T) {
		_, err := store.Read(filepath.Join(dir, "missing.lock"))
		require.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(dir, "broken.lock")
		require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o644))

		_, err := store.Read(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})

	t.Run("UnknownFormatVersion", func(t *testing.T) {
		path := filepath.Join(dir, "future.lock")
		require.NoError(t, os.WriteFile(path, []byte("version: 99\n"), 0o644))

		_, err := store.Read(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
