package engine

import (
	"github.com/lixenwraith/puyo/core"
)

// MoveHorizontal shifts the falling pair one column left or right
// All-or-nothing: returns false and leaves the field untouched when any cell is blocked
func (f *Field) MoveHorizontal(dir Direction) bool {
	pts := f.Active.Points()
	if len(pts) == 0 {
		return false
	}

	dc := int(dir)
	for _, p := range pts {
		col := p.Col + dc
		if !f.Active.InBounds(p.Row, col) || !f.Stack.IsEmpty(p.Row, col) {
			return false
		}
		// Vertical pair: the lower cell's destination must be free too, or the pair splits on a stack corner
		if !f.Active.IsEmpty(p.Row+1, p.Col) && !f.Stack.IsEmpty(p.Row+1, col) {
			return false
		}
	}

	f.shift(pts, 0, dc)
	return true
}

// MoveDown drops every active cell with free space below by one row
// Scans bottom-up so stacked falling cells move together; returns whether anything moved
func (f *Field) MoveDown() bool {
	moved := false
	for r := f.Rows() - 2; r >= 0; r-- {
		for c := 0; c < f.Cols(); c++ {
			color := f.Active.Get(r, c)
			if color == core.Empty {
				continue
			}
			if f.Active.IsEmpty(r+1, c) && f.Stack.IsEmpty(r+1, c) {
				f.Active.Set(r+1, c, color)
				f.Active.Set(r, c, core.Empty)
				moved = true
			}
		}
	}
	return moved
}

// Rotate advances the pair one orientation step around its pivot
// Rejected, with no change at all, when the destination is out of bounds or
// the destination or the corner cell swept through is occupied in the stack
func (f *Field) Rotate() bool {
	pivot, second, ok := f.pairCells()
	if !ok {
		return false
	}

	next := f.Orientation.next()
	dr, dc := next.secondOffset()
	dest := core.Point{Row: pivot.Row + dr, Col: pivot.Col + dc}

	odr, odc := f.Orientation.secondOffset()
	corner := core.Point{Row: pivot.Row + odr + dr, Col: pivot.Col + odc + dc}

	if !f.Stack.InBounds(dest.Row, dest.Col) {
		return false
	}
	if !f.Stack.IsEmpty(dest.Row, dest.Col) || !f.Active.IsEmpty(dest.Row, dest.Col) {
		return false
	}
	if !f.Stack.IsEmpty(corner.Row, corner.Col) {
		return false
	}

	color := f.Active.Get(second.Row, second.Col)
	f.Active.Set(second.Row, second.Col, core.Empty)
	f.Active.Set(dest.Row, dest.Col, color)
	f.Orientation = next
	return true
}

// pairCells locates pivot and second cell of the falling pair from the orientation
func (f *Field) pairCells() (pivot, second core.Point, ok bool) {
	pts := f.Active.Points()
	if len(pts) != 2 {
		return pivot, second, false
	}

	dr, dc := f.Orientation.secondOffset()
	for i := range pts {
		p, s := pts[i], pts[1-i]
		if s.Row == p.Row+dr && s.Col == p.Col+dc {
			return p, s, true
		}
	}
	return pivot, second, false
}

// shift moves the given active cells by (dr, dc); destinations must already be validated
func (f *Field) shift(pts []core.Point, dr, dc int) {
	colors := make([]core.Color, len(pts))
	for i, p := range pts {
		colors[i] = f.Active.Get(p.Row, p.Col)
		f.Active.Set(p.Row, p.Col, core.Empty)
	}
	for i, p := range pts {
		f.Active.Set(p.Row+dr, p.Col+dc, colors[i])
	}
}

// Land transfers every supported active cell into the stack
// A cell is supported by the floor or an occupied stack cell directly below.
// When exactly one cell is left falling, cells beside the last landed one
// (same row, one column either side) are landed too and the stack is
// resettled so an overhanging partner drops into place. Returns true once
// the active layer is empty, along with any fall frames from resettling
func (f *Field) Land() (bool, []Frame) {
	var frames []Frame
	last := core.Point{Row: -1, Col: -1}

	for r := f.Rows() - 1; r >= 0; r-- {
		for c := 0; c < f.Cols(); c++ {
			color := f.Active.Get(r, c)
			if color == core.Empty {
				continue
			}
			if r == f.Rows()-1 || !f.Stack.IsEmpty(r+1, c) {
				f.transfer(r, c, color)
				last = core.Point{Row: r, Col: c}
			}
		}
	}

	if last.Row >= 0 && f.Active.CountNonEmpty() == 1 {
		for c := last.Col - 1; c <= last.Col+1; c++ {
			if color := f.Active.Get(last.Row, c); color != core.Empty {
				f.transfer(last.Row, c, color)
			}
		}
		frames = f.Settle()
	}

	return f.Active.CountNonEmpty() == 0, frames
}

func (f *Field) transfer(r, c int, color core.Color) {
	f.Stack.Set(r, c, color)
	f.Active.Set(r, c, core.Empty)
}

// SettleFloating lifts every unsupported stack cell back into the active layer
// Bottom-up, so a whole column above a gap is lifted in one pass
func (f *Field) SettleFloating() bool {
	lifted := false
	for r := f.Rows() - 2; r >= 0; r-- {
		for c := 0; c < f.Cols(); c++ {
			color := f.Stack.Get(r, c)
			if color != core.Empty && f.Stack.IsEmpty(r+1, c) {
				f.Active.Set(r, c, color)
				f.Stack.Set(r, c, core.Empty)
				lifted = true
			}
		}
	}
	return lifted
}

// Settle lifts floating stack cells and lets them fall one row per frame until all land
// Returns nil when nothing was floating
func (f *Field) Settle() []Frame {
	if !f.SettleFloating() {
		return nil
	}

	var frames []Frame
	// Every fall step lowers each falling cell by one row, so rows steps always suffice
	for step := 0; step <= f.Rows(); step++ {
		landed, sub := f.Land()
		frames = append(frames, sub...)
		if landed {
			break
		}
		f.MoveDown()
		frames = append(frames, f.snapshot(FrameFall))
	}
	return frames
}
