package engine

import (
	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/core"
)

// ColorSource is the uniform random generator colors are drawn from
// *rand.Rand satisfies it; it is seeded once by the caller
type ColorSource interface {
	Intn(n int) int
}

// Pair is the two colors of one falling piece
type Pair struct {
	First, Second core.Color
}

// PreviewQueue is the pipe of upcoming pairs
// Slot 0 is consumed first, slots shift down and a new pair enters at the back
type PreviewQueue struct {
	slots  [constants.PreviewSlots]Pair
	src    ColorSource
	colors int
}

// NewPreviewQueue creates a queue drawing from colors 1..colors, filled immediately
// colors is clamped to the palette size
func NewPreviewQueue(src ColorSource, colors int) *PreviewQueue {
	q := &PreviewQueue{src: src}
	q.SetColors(colors)
	q.Refill()
	return q
}

// SetColors changes the number of colors future pairs are drawn from
func (q *PreviewQueue) SetColors(colors int) {
	q.colors = min(max(colors, 1), core.MaxColors)
}

// Colors returns the number of colors in play
func (q *PreviewQueue) Colors() int {
	return q.colors
}

// Refill replaces every slot with fresh random pairs
func (q *PreviewQueue) Refill() {
	for i := range q.slots {
		q.slots[i] = q.randomPair()
	}
}

// Advance consumes slot 0, shifts the rest down and appends a new pair
func (q *PreviewQueue) Advance() Pair {
	head := q.slots[0]
	copy(q.slots[:], q.slots[1:])
	q.slots[len(q.slots)-1] = q.randomPair()
	return head
}

// Peek returns the pair in slot i, zero Pair when out of range
func (q *PreviewQueue) Peek(i int) Pair {
	if i < 0 || i >= len(q.slots) {
		return Pair{}
	}
	return q.slots[i]
}

// Slots returns a copy of the queue contents, next pair first
func (q *PreviewQueue) Slots() []Pair {
	out := make([]Pair, len(q.slots))
	copy(out, q.slots[:])
	return out
}

func (q *PreviewQueue) randomPair() Pair {
	return Pair{First: q.randomColor(), Second: q.randomColor()}
}

func (q *PreviewQueue) randomColor() core.Color {
	return core.Color(1 + q.src.Intn(q.colors))
}
