package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/core/domain"
)

func TestNewLockfile(t *testing.T) {
	keys := map[string]struct{}{
		"rclcpp":       {},
		"libboost-dev": {},
	}
	rosdistro := map[string]domain.ReleasedPackage{
		"rclcpp": {Name: "rclcpp"},
	}
	system := map[string]domain.ResolvedRosdep{
		"libboost-dev": {Key: "libboost-dev", Source: "apt"},
	}

	t.Run("Valid", func(t *testing.T) {
		lf, err := domain.NewLockfile(keys, nil, rosdistro, system)
		require.NoError(t, err)
		assert.Equal(t, domain.LockfileVersion, lf.Version)
		assert.Equal(t, rosdistro, lf.RosdistroPackages)
		assert.Equal(t, system, lf.SystemPackages)
	})

	t.Run("KeyResolvedByNeitherSource", func(t *testing.T) {
		extended := map[string]struct{}{
			"rclcpp":       {},
			"libboost-dev": {},
			"orphan-key":   {},
		}
		_, err := domain.NewLockfile(extended, nil, rosdistro, system)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("KeyResolvedByBothSources", func(t *testing.T) {
		both := map[string]domain.ResolvedRosdep{
			"libboost-dev": {Key: "libboost-dev"},
			"rclcpp":       {Key: "rclcpp"},
		}
		_, err := domain.NewLockfile(keys, nil, rosdistro, both)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ResolvedPackageOutsideKeySet", func(t *testing.T) {
		extra := map[string]domain.ReleasedPackage{
			"rclcpp":    {Name: "rclcpp"},
			"uninvited": {Name: "uninvited"},
		}
		_, err := domain.NewLockfile(keys, nil, extra, system)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ResolvedSystemKeyOutsideKeySet", func(t *testing.T) {
		extra := map[string]domain.ResolvedRosdep{
			"libboost-dev": {Key: "libboost-dev"},
			"uninvited":    {Key: "uninvited"},
		}
		_, err := domain.NewLockfile(map[string]struct{}{"libboost-dev": {}}, nil, nil, extra)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
