package engine

import (
	"github.com/lixenwraith/puyo/core"
)

// FrameKind tells the renderer how long to hold a frame
type FrameKind uint8

const (
	// FrameFall is one row of settling motion
	FrameFall FrameKind = iota
	// FrameVanish shows the board with vanishing groups removed
	FrameVanish
	// FrameBlink shows vanishing groups restored between vanish frames
	FrameBlink
)

func (k FrameKind) String() string {
	switch k {
	case FrameFall:
		return "fall"
	case FrameVanish:
		return "vanish"
	case FrameBlink:
		return "blink"
	default:
		return "unknown"
	}
}

// Frame is an intermediate board state produced while the simulation resolves
// Layers are private copies; the renderer may hold them freely
type Frame struct {
	Kind   FrameKind
	Active *core.Grid
	Stack  *core.Grid
}

func (f *Field) snapshot(kind FrameKind) Frame {
	return Frame{
		Kind:   kind,
		Active: f.Active.Clone(),
		Stack:  f.Stack.Clone(),
	}
}
