package syspkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldBlock(t *testing.T) {
	t.Run("ParsesFields", func(t *testing.T) {
		out := "Package: libboost-dev\n" +
			"Version: 1.74.0.3ubuntu7\n" +
			"SHA256: deadbeefcafe\n" +
			"Description: Boost C++ Libraries development files\n" +
			" This metapackage provides headers for all Boost libraries.\n"

		fields := parseFieldBlock(out)
		assert.Equal(t, "libboost-dev", fields["Package"])
		assert.Equal(t, "1.74.0.3ubuntu7", fields["Version"])
		assert.Equal(t, "deadbeefcafe", fields["SHA256"])
	})

	t.Run("FirstRecordWinsAcrossBlocks", func(t *testing.T) {
		// apt-cache show emits one block per candidate; the first block is
		// the candidate version.
		out := "Package: libfoo\nVersion: 2.0-1\n\nPackage: libfoo\nVersion: 1.0-1\n"

		fields := parseFieldBlock(out)
		assert.Equal(t, "2.0-1", fields["Version"])
	})

	t.Run("ContinuationLinesIgnored", func(t *testing.T) {
		out := "Description: something\n with: a colon inside a continuation\nVersion: 3.1-2\n"

		fields := parseFieldBlock(out)
		assert.Equal(t, "3.1-2", fields["Version"])
		assert.NotContains(t, fields, " with")
	})
}

func TestIsAptNotFound(t *testing.T) {
	assert.True(t, isAptNotFound("N: Unable to locate package libnope-dev"))
	assert.True(t, isAptNotFound("E: No packages found"))
	assert.False(t, isAptNotFound("E: The package lists or status file could not be parsed"))
}
