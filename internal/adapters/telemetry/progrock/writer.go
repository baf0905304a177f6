package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// displayWriter implements progrock.Writer by rendering vertex transitions
// as plain status lines. Each vertex prints once when it starts and once
// when it completes, regardless of how many updates carry it.
type displayWriter struct {
	mu   sync.Mutex
	out  io.Writer
	seen map[string]string // vertex id -> last rendered phase
}

const (
	phaseRunning = "running"
	phaseDone    = "done"
)

func newDisplayWriter(out io.Writer) *displayWriter {
	return &displayWriter{
		out:  out,
		seen: map[string]string{},
	}
}

// WriteStatus renders the vertices of the update that changed phase.
func (w *displayWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, ok := w.seen[v.Id]; !ok {
			w.seen[v.Id] = phaseRunning
			fmt.Fprintf(w.out, "  • %s\n", v.Name)
		}
		if v.Completed == nil || w.seen[v.Id] == phaseDone {
			continue
		}
		w.seen[v.Id] = phaseDone
		if v.Error != nil {
			fmt.Fprintf(w.out, "  ✗ %s: %s\n", v.Name, *v.Error)
			continue
		}
		fmt.Fprintf(w.out, "  ✓ %s\n", v.Name)
	}
	return nil
}

// Close is a no-op; the display owns no resources beyond the caller's writer.
func (w *displayWriter) Close() error {
	return nil
}
