package rosdep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/core/domain"
)

func TestParseResolveOutput(t *testing.T) {
	t.Run("TwoRecords", func(t *testing.T) {
		out := "#ROSDEP[libboost-dev]\n" +
			"#apt\n" +
			"libboost-dev\n" +
			"#ROSDEP[python3-numpy]\n" +
			"#pip\n" +
			"numpy scipy\n"

		resolved, err := parseResolveOutput(out)
		require.NoError(t, err)
		require.Len(t, resolved, 2)

		assert.Equal(t, domain.ResolvedRosdep{
			Key:      "libboost-dev",
			Source:   "apt",
			Packages: []string{"libboost-dev"},
		}, resolved["libboost-dev"])

		assert.Equal(t, domain.ResolvedRosdep{
			Key:      "python3-numpy",
			Source:   "pip",
			Packages: []string{"numpy", "scipy"},
		}, resolved["python3-numpy"])
	})

	t.Run("BlankLinesBetweenRecords", func(t *testing.T) {
		out := "\n#ROSDEP[eigen]\n#apt\nlibeigen3-dev\n\n\n"

		resolved, err := parseResolveOutput(out)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, []string{"libeigen3-dev"}, resolved["eigen"].Packages)
	})

	t.Run("Empty", func(t *testing.T) {
		resolved, err := parseResolveOutput("")
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("MissingSourceLine", func(t *testing.T) {
		out := "#ROSDEP[libboost-dev]\nlibboost-dev\n"

		_, err := parseResolveOutput(out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})

	t.Run("StrayTextBeforeHeader", func(t *testing.T) {
		out := "resolving dependencies...\n#ROSDEP[eigen]\n#apt\nlibeigen3-dev\n"

		_, err := parseResolveOutput(out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})

	t.Run("TruncatedAfterHeader", func(t *testing.T) {
		out := "#ROSDEP[libboost-dev]\n"

		_, err := parseResolveOutput(out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})

	t.Run("TruncatedAfterSource", func(t *testing.T) {
		out := "#ROSDEP[libboost-dev]\n#apt\n"

		_, err := parseResolveOutput(out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})
}
