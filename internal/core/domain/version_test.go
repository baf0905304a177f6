package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/roslock/internal/core/domain"
)

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Version
		want int
	}{
		{
			name: "Equal",
			a:    domain.Version{Major: 1, Minor: 2, Patch: 3, Increment: 4},
			b:    domain.Version{Major: 1, Minor: 2, Patch: 3, Increment: 4},
			want: 0,
		},
		{
			name: "MajorDominates",
			a:    domain.Version{Major: 2},
			b:    domain.Version{Major: 1, Minor: 9, Patch: 9, Increment: 9},
			want: 1,
		},
		{
			name: "MinorBreaksTie",
			a:    domain.Version{Major: 1, Minor: 1},
			b:    domain.Version{Major: 1, Minor: 2},
			want: -1,
		},
		{
			name: "IncrementBreaksFinalTie",
			a:    domain.Version{Major: 1, Minor: 2, Patch: 3, Increment: 1},
			b:    domain.Version{Major: 1, Minor: 2, Patch: 3, Increment: 2},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestVersion_String(t *testing.T) {
	v := domain.Version{Major: 16, Minor: 0, Patch: 4, Increment: 2}
	assert.Equal(t, "16.0.4-2", v.String())
}
