package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/puyo/core"
)

// seqSource replays a fixed cycle of values for deterministic color draws
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func newSeqSource(vals ...int) *seqSource {
	return &seqSource{vals: vals}
}

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestField builds a field from active and stack layouts of equal size
func newTestField(t *testing.T, active, stack string, o Orientation) *Field {
	t.Helper()

	a, err := core.ParseGrid(active)
	if err != nil {
		t.Fatalf("Failed to parse active layer: %v", err)
	}
	s, err := core.ParseGrid(stack)
	if err != nil {
		t.Fatalf("Failed to parse stack layer: %v", err)
	}
	if a.Rows() != s.Rows() || a.Cols() != s.Cols() {
		t.Fatalf("Layer size mismatch: active %dx%d, stack %dx%d", a.Rows(), a.Cols(), s.Rows(), s.Cols())
	}

	f := NewField(a.Rows(), a.Cols(), 0, NewPreviewQueue(newSeqSource(0, 1, 2, 3), 4))
	f.Active = a
	f.Stack = s
	f.Orientation = o
	return f
}

// emptyLayer returns a layout string of the given size with no pieces
func emptyLayer(rows, cols int) string {
	return core.NewGrid(rows, cols).String()
}

func assertGrid(t *testing.T, name string, got *core.Grid, want string) {
	t.Helper()
	w := core.MustParseGrid(want)
	if !got.Equal(w) {
		t.Errorf("%s mismatch:\nexpected:\n%s\ngot:\n%s", name, w, got)
	}
}
