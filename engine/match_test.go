package engine

import (
	"testing"

	"github.com/lixenwraith/puyo/core"
)

func pointSet(pts []core.Point) map[core.Point]bool {
	set := make(map[core.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

// TestFindGroup verifies the flood fill follows 4-connectivity only
func TestFindGroup(t *testing.T) {
	stack := core.MustParseGrid(`
		....
		.B..
		.RB.
		.RR.
		RBRG`)

	got := pointSet(FindGroup(stack, 2, 1))
	want := []core.Point{{Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 4, Col: 2}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d: %v", len(want), len(got), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Errorf("Expected %v in group", p)
		}
	}
	if got[core.Point{Row: 4, Col: 0}] {
		t.Error("Diagonal cell must not join the group")
	}

	if g := FindGroup(stack, 0, 0); len(g) != 0 {
		t.Errorf("Expected no group from an empty cell, got %v", g)
	}
	if g := FindGroup(stack, 1, 1); len(g) != 1 {
		t.Errorf("Expected single-cell group, got %v", g)
	}
}

// TestFindVanishingGroups verifies only groups of four or more qualify and each is reported once
func TestFindVanishingGroups(t *testing.T) {
	stack := core.MustParseGrid(`
		RRBB
		RRBG
		YYYG
		GGGG`)

	groups := FindVanishingGroups(stack)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Color != core.Red || len(groups[0].Cells) != 4 {
		t.Errorf("Expected red group of 4 first, got %v with %d cells", groups[0].Color, len(groups[0].Cells))
	}
	if groups[1].Color != core.Green || len(groups[1].Cells) != 6 {
		t.Errorf("Expected green group of 6, got %v with %d cells", groups[1].Color, len(groups[1].Cells))
	}
}

// TestVanishPassSingleGroup verifies a group of four vanishes for 40 points and clears the board
func TestVanishPassSingleGroup(t *testing.T) {
	f := newTestField(t, emptyLayer(6, 4), `
		....
		....
		R...
		R...
		R...
		R...`, OrientUp)
	var score Score

	res := f.VanishPass(&score)

	if res.Vanished != 4 {
		t.Errorf("Expected 4 vanished, got %d", res.Vanished)
	}
	if res.Delta != 40 || score.Total() != 40 || score.Delta() != 40 {
		t.Errorf("Expected 40 points, got delta=%d total=%d", res.Delta, score.Total())
	}
	if res.Chain != 1 || score.ChainCount() != 1 || score.MaxChain() != 1 {
		t.Errorf("Expected chain 1, got %d", score.ChainCount())
	}
	if !res.AllClear {
		t.Error("Expected all clear")
	}
	if f.Stack.CountNonEmpty() != 0 {
		t.Errorf("Expected empty stack, got:\n%s", f.Stack)
	}

	if len(res.Frames) != 3 {
		t.Fatalf("Expected 3 blink frames, got %d", len(res.Frames))
	}
	kinds := []FrameKind{FrameVanish, FrameBlink, FrameVanish}
	for i, fr := range res.Frames {
		if fr.Kind != kinds[i] {
			t.Errorf("Frame %d: expected %v, got %v", i, kinds[i], fr.Kind)
		}
	}
	if res.Frames[1].Stack.CountNonEmpty() != 4 {
		t.Error("Expected the blink frame to show the group again")
	}
	if res.Frames[0].Stack.CountNonEmpty() != 0 {
		t.Error("Expected vanish frame without the group")
	}
}

// TestVanishPassBelowThreshold verifies three connected cells stay and score nothing
func TestVanishPassBelowThreshold(t *testing.T) {
	f := newTestField(t, emptyLayer(4, 4), `
		....
		....
		R...
		RR..`, OrientUp)
	before := f.Stack.Clone()
	var score Score

	res := f.VanishPass(&score)

	if res.Vanished != 0 || len(res.Frames) != 0 {
		t.Errorf("Expected nothing vanished, got %+v", res)
	}
	if !f.Stack.Equal(before) {
		t.Error("Expected stack unchanged")
	}
	if score.Total() != 0 || score.ChainCount() != 0 {
		t.Errorf("Expected score untouched, got %+v", score.View())
	}
}

// TestVanishPassMultiColor verifies simultaneous groups share one pass with a color bonus
func TestVanishPassMultiColor(t *testing.T) {
	f := newTestField(t, emptyLayer(4, 4), `
		....
		....
		RRBB
		RRBB`, OrientUp)
	var score Score

	res := f.VanishPass(&score)

	if res.Vanished != 8 || res.Colors != 2 {
		t.Errorf("Expected 8 cells of 2 colors, got %d of %d", res.Vanished, res.Colors)
	}
	if res.Delta != 240 {
		t.Errorf("Expected 240 points, got %d", res.Delta)
	}
	if score.ChainCount() != 1 {
		t.Errorf("Expected one chain step per pass, got %d", score.ChainCount())
	}
}

// TestVanishPassChainBonus verifies the chain count feeds the next pass
func TestVanishPassChainBonus(t *testing.T) {
	f := newTestField(t, emptyLayer(3, 5), `
		.....
		.....
		GGGGG`, OrientUp)
	var score Score
	score.AddChainCount(1)

	res := f.VanishPass(&score)

	if res.Delta != 500 {
		t.Errorf("Expected 500 points, got %d", res.Delta)
	}
	if score.ChainCount() != 2 || score.MaxChain() != 2 {
		t.Errorf("Expected chain 2, got %d (max %d)", score.ChainCount(), score.MaxChain())
	}
}
