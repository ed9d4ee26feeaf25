package engine

import (
	"github.com/lixenwraith/puyo/core"
)

// Orientation is the rotation state of the falling pair
// The second cell sits right of the pivot in Up (spawn), below in Right,
// left in Down and above in Left; Rotate walks Up→Right→Down→Left→Up
type Orientation uint8

const (
	OrientUp Orientation = iota
	OrientRight
	OrientDown
	OrientLeft
)

func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "up"
	case OrientRight:
		return "right"
	case OrientDown:
		return "down"
	case OrientLeft:
		return "left"
	default:
		return "unknown"
	}
}

// next returns the following state of the rotation cycle
func (o Orientation) next() Orientation {
	return (o + 1) % 4
}

// secondOffset is the (row, col) offset of the second cell from the pivot
func (o Orientation) secondOffset() (int, int) {
	switch o {
	case OrientRight:
		return 1, 0
	case OrientDown:
		return 0, -1
	case OrientLeft:
		return -1, 0
	default:
		return 0, 1
	}
}

// Direction selects horizontal movement
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Field is the pair of layers making up the playfield
// Active holds only the falling pair; Stack holds settled cells
type Field struct {
	Active      *core.Grid
	Stack       *core.Grid
	Orientation Orientation
	Queue       *PreviewQueue

	spawnCol int
}

// NewField creates empty layers of the given size with a filled preview queue
// spawnCol is clamped so both spawn cells fit in the grid
func NewField(rows, cols, spawnCol int, queue *PreviewQueue) *Field {
	return &Field{
		Active:   core.NewGrid(rows, cols),
		Stack:    core.NewGrid(rows, cols),
		Queue:    queue,
		spawnCol: clampSpawnColumn(spawnCol, cols),
	}
}

func clampSpawnColumn(col, cols int) int {
	if col >= 0 && col+1 < cols {
		return col
	}
	return max(cols/2-1, 0)
}

// Rows returns the playfield height
func (f *Field) Rows() int {
	return f.Stack.Rows()
}

// Cols returns the playfield width
func (f *Field) Cols() int {
	return f.Stack.Cols()
}

// SpawnCells returns the two top-row cells new pairs appear in
func (f *Field) SpawnCells() (first, second core.Point) {
	return core.Point{Row: 0, Col: f.spawnCol}, core.Point{Row: 0, Col: f.spawnCol + 1}
}

// SpawnBlocked reports whether either spawn cell is occupied in the stack
// This is the game-over condition
func (f *Field) SpawnBlocked() bool {
	a, b := f.SpawnCells()
	return !f.Stack.IsEmpty(a.Row, a.Col) || !f.Stack.IsEmpty(b.Row, b.Col)
}

// Spawn places the next pair from the queue into the spawn cells
// Returns false without changing anything when the spawn cells are blocked
func (f *Field) Spawn(score *Score) bool {
	if f.SpawnBlocked() {
		return false
	}

	score.SetChainCount(0)
	pair := f.Queue.Advance()

	a, b := f.SpawnCells()
	f.Active.Set(a.Row, a.Col, pair.First)
	f.Active.Set(b.Row, b.Col, pair.Second)
	f.Orientation = OrientUp
	score.AddPiece()
	return true
}

// CanAcceptInput reports whether the falling pair is controllable
func (f *Field) CanAcceptInput() bool {
	a, b := f.SpawnCells()
	if !f.Active.IsEmpty(a.Row, a.Col) && !f.Active.IsEmpty(b.Row, b.Col) {
		return false
	}
	return f.Active.CountNonEmpty() == 2
}

// PuyoCount returns the number of pieces on the field in both layers
func (f *Field) PuyoCount() int {
	return f.Active.CountNonEmpty() + f.Stack.CountNonEmpty()
}

// Clear empties both layers and resets orientation
func (f *Field) Clear() {
	f.Active.Clear()
	f.Stack.Clear()
	f.Orientation = OrientUp
}
