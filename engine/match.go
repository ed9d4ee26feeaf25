package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/core"
)

// Group is a maximal 4-connected set of same-colored stack cells
type Group struct {
	Color core.Color
	Cells []core.Point
}

// VanishResult describes one vanish pass
// Zero value means nothing vanished and no score was applied
type VanishResult struct {
	Groups   []Group
	Vanished int
	Delta    int
	Chain    int  // Chain count after this pass
	Colors   int  // Distinct colors vanished
	AllClear bool // Stack empty after the pass
	Frames   []Frame
}

var neighbors = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// FindGroup returns the group containing (row, col), empty when that cell is Empty
// Breadth-first; every cell is visited at most once
func FindGroup(stack *core.Grid, row, col int) []core.Point {
	visited := intmap.New[int, struct{}](stack.Rows() * stack.Cols())
	return findGroup(stack, row, col, visited)
}

// findGroup floods from (row, col), marking cells in visited
func findGroup(stack *core.Grid, row, col int, visited *intmap.Map[int, struct{}]) []core.Point {
	color := stack.Get(row, col)
	if color == core.Empty {
		return nil
	}

	cols := stack.Cols()
	visited.Put(row*cols+col, struct{}{})
	queue := []core.Point{{Row: row, Col: col}}
	var group []core.Point

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		group = append(group, p)

		for _, d := range neighbors {
			r, c := p.Row+d[0], p.Col+d[1]
			if !stack.InBounds(r, c) || stack.Get(r, c) != color {
				continue
			}
			idx := r*cols + c
			if _, seen := visited.Get(idx); seen {
				continue
			}
			visited.Put(idx, struct{}{})
			queue = append(queue, core.Point{Row: r, Col: c})
		}
	}
	return group
}

// FindVanishingGroups returns every group of at least MinGroupSize cells, in scan order
func FindVanishingGroups(stack *core.Grid) []Group {
	claimed := intmap.New[int, struct{}](stack.Rows() * stack.Cols())
	var groups []Group

	for r := 0; r < stack.Rows(); r++ {
		for c := 0; c < stack.Cols(); c++ {
			color := stack.Get(r, c)
			if color == core.Empty {
				continue
			}
			if _, seen := claimed.Get(r*stack.Cols() + c); seen {
				continue
			}
			cells := findGroup(stack, r, c, claimed)
			if len(cells) >= constants.MinGroupSize {
				groups = append(groups, Group{Color: color, Cells: cells})
			}
		}
	}
	return groups
}

// VanishPass removes every qualifying group from the stack and scores the pass
// Nothing is scored and the chain does not advance when no group qualifies
func (f *Field) VanishPass(score *Score) VanishResult {
	groups := FindVanishingGroups(f.Stack)
	if len(groups) == 0 {
		return VanishResult{}
	}

	sizes := make([]int, len(groups))
	distinct := make(map[core.Color]struct{}, len(groups))
	vanished := 0
	for i, g := range groups {
		sizes[i] = len(g.Cells)
		distinct[g.Color] = struct{}{}
		vanished += len(g.Cells)
	}

	// Blink: gone, back, gone
	frames := make([]Frame, 0, 3)
	f.paintGroups(groups, false)
	frames = append(frames, f.snapshot(FrameVanish))
	f.paintGroups(groups, true)
	frames = append(frames, f.snapshot(FrameBlink))
	f.paintGroups(groups, false)
	frames = append(frames, f.snapshot(FrameVanish))

	delta := ScoreDelta(sizes, len(distinct), score.ChainCount())
	score.Add(delta)
	score.AddChainCount(1)

	return VanishResult{
		Groups:   groups,
		Vanished: vanished,
		Delta:    delta,
		Chain:    score.ChainCount(),
		Colors:   len(distinct),
		AllClear: f.Stack.CountNonEmpty() == 0,
		Frames:   frames,
	}
}

func (f *Field) paintGroups(groups []Group, visible bool) {
	for _, g := range groups {
		color := core.Empty
		if visible {
			color = g.Color
		}
		for _, p := range g.Cells {
			f.Stack.Set(p.Row, p.Col, color)
		}
	}
}
