package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/adapters/telemetry/progrock"
	"go.trai.ch/roslock/internal/core/ports"
)

func TestRecorder_RendersVertexLifecycle(t *testing.T) {
	var out bytes.Buffer
	rec := progrock.New(&out)

	ctx, vertex := rec.Record(context.Background(), "scan ros2-gbp/rclcpp-release")
	carried, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, vertex, carried)

	vertex.Complete(nil)

	_, failed := rec.Record(context.Background(), "scan ros2-gbp/rcpputils-release")
	failed.Complete(errors.New("remote hung up"))

	require.NoError(t, rec.Close())

	rendered := out.String()
	assert.Contains(t, rendered, "• scan ros2-gbp/rclcpp-release")
	assert.Contains(t, rendered, "✓ scan ros2-gbp/rclcpp-release")
	assert.Contains(t, rendered, "✗ scan ros2-gbp/rcpputils-release: remote hung up")

	// Completion carries the vertex a second time; the start line must not
	// repeat.
	assert.Equal(t, 1, strings.Count(rendered, "• scan ros2-gbp/rclcpp-release"))
}
