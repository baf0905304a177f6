package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"
	"go.trai.ch/roslock/internal/adapters/telemetry/progrock"
	"go.trai.ch/roslock/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Progress rendering only makes sense on a terminal.
			if isatty.IsTerminal(os.Stderr.Fd()) {
				return progrock.New(os.Stderr), nil
			}
			return NewNoOp(), nil
		},
	})
}
