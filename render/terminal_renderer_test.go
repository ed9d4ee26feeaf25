package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/core"
	"github.com/lixenwraith/puyo/engine"
	"github.com/lixenwraith/puyo/scoreboard"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText reads back one screen row as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

func testView() GameView {
	active := core.MustParseGrid(`
		..RB..
		......
		......
		......`)
	stack := core.MustParseGrid(`
		......
		......
		G.....
		GY..P.`)
	return GameView{
		Active:    active,
		Stack:     stack,
		Score:     engine.ScoreView{Total: 360, Delta: 320, MaxChain: 2},
		TopScore:  100,
		Chains:    2,
		Preview:   []engine.Pair{{First: core.Red, Second: core.Blue}, {First: core.Green, Second: core.Yellow}},
		PuyoCount: 6,
		Elapsed:   42 * time.Second,
		Limit:     600 * time.Second,
	}
}

// TestRenderGameField verifies glyphs and colors of both layers
func TestRenderGameField(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	r.RenderGame(testView())

	tests := []struct {
		x, y  int
		ch    rune
		color tcell.Color
	}{
		{2, 0, 'R', RgbPuyoRed},
		{3, 0, 'B', RgbPuyoBlue},
		{0, 2, 'G', RgbPuyoGreen},
		{1, 3, 'Y', RgbPuyoYellow},
		{4, 3, 'P', RgbPuyoPurple},
		{5, 3, '.', RgbEmptyCell},
	}
	for _, tt := range tests {
		mainc, _, style, _ := screen.GetContent(tt.x, tt.y)
		if mainc != tt.ch {
			t.Errorf("At (%d,%d): expected %c, got %c", tt.x, tt.y, tt.ch, mainc)
		}
		fg, bg, _ := style.Decompose()
		if fg != tt.color {
			t.Errorf("At (%d,%d): expected foreground %v, got %v", tt.x, tt.y, tt.color, fg)
		}
		if bg != RgbBackground {
			t.Errorf("At (%d,%d): expected background %v, got %v", tt.x, tt.y, RgbBackground, bg)
		}
	}

	// Nothing drawn right of the field on its rows before the HUD
	if mainc, _, _, _ := screen.GetContent(6, 3); mainc != ' ' && mainc != 0 {
		t.Errorf("Expected blank beside the field, got %c", mainc)
	}
}

// TestRenderGameHUD verifies the status texts
func TestRenderGameHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	r.RenderGame(testView())

	want := []string{
		"Field: 4 x 6, Puyo number: 006",
		"Score: 360",
		"HIGH SCORE",
		"+ 320",
		"Chain 2!",
		"Max Chain: 2",
		"Next Puyo: ",
		"Game Time: 42s / 600s",
		"Use the following keys to play:",
		"Arrow Left: Move Left",
		"z: Rotate",
		"s: Pause/Resume",
		"Q: Quit",
	}
	for _, s := range want {
		if !screenContains(screen, s) {
			t.Errorf("Expected screen to contain %q", s)
		}
	}
	for _, s := range []string{"ALL CLEAR!", "PAUSED"} {
		if screenContains(screen, s) {
			t.Errorf("Did not expect %q on screen", s)
		}
	}

	// Preview pairs are drawn vertically
	x := 80 - 35 + 12
	if mainc, _, _, _ := screen.GetContent(x, 6); mainc != 'R' {
		t.Errorf("Expected preview R at top, got %c", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(x, 7); mainc != 'B' {
		t.Errorf("Expected preview B below, got %c", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(x+2, 7); mainc != 'Y' {
		t.Errorf("Expected second preview Y below, got %c", mainc)
	}
}

// TestRenderGameFlags verifies the conditional HUD items
func TestRenderGameFlags(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	v := testView()
	v.AllClear = true
	v.Paused = true
	v.Chains = 1
	v.TopScore = 1000
	v.Limit = 0
	r.RenderGame(v)

	for _, s := range []string{"ALL CLEAR!", "PAUSED", "Game Time: 42s"} {
		if !screenContains(screen, s) {
			t.Errorf("Expected screen to contain %q", s)
		}
	}
	for _, s := range []string{"HIGH SCORE", "Chain 1!", "/ 0s"} {
		if screenContains(screen, s) {
			t.Errorf("Did not expect %q on screen", s)
		}
	}
}

// TestRenderMenu verifies items, highlight and logo colors
func TestRenderMenu(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	r.RenderMenu(Menu{
		Logo:     true,
		Items:    []string{"1. Start", "2. Scoreboard", "3. Settings", "4. Quit"},
		Selected: 1,
		Footer:   []string{"Press Up Down Enter or Number Key to Choose"},
	})

	if !screenContains(screen, "Puyo Puyo") {
		t.Error("Expected logo text")
	}
	if !strings.HasPrefix(rowText(screen, 23), "Press Up Down Enter or Number Key to Choose") {
		t.Errorf("Expected footer on last row, got %q", rowText(screen, 23))
	}

	// Items start one row above center
	for i, item := range []string{"1. Start", "2. Scoreboard", "3. Settings", "4. Quit"} {
		if !strings.Contains(rowText(screen, 11+i), item) {
			t.Errorf("Expected %q on row %d, got %q", item, 11+i, rowText(screen, 11+i))
		}
	}

	x := 40 - len("2. Scoreboard")/2
	_, _, style, _ := screen.GetContent(x, 12)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("Expected selected item in reverse video")
	}
	_, _, style, _ = screen.GetContent(x, 11)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse != 0 {
		t.Error("Expected unselected item without reverse video")
	}

	// First logo letter is red
	lx := 40 - len("Puyo Puyo")/2
	mainc, _, style, _ := screen.GetContent(lx, 9)
	fg, _, _ := style.Decompose()
	if mainc != 'P' || fg != RgbPuyoRed {
		t.Errorf("Expected red P, got %c %v", mainc, fg)
	}
}

// TestRenderScoreboard verifies header, ranks and clipping
func TestRenderScoreboard(t *testing.T) {
	screen := newTestScreen(t, 80, 12)
	r := NewTerminalRenderer(screen)

	entries := []scoreboard.Entry{
		{Name: "alice", Score: 900},
		{Name: "bob", Score: 500},
		{Name: "carol", Score: 300},
		{Name: "dave", Score: 100},
		{Name: "erin", Score: 50},
		{Name: "frank", Score: 10},
	}
	r.RenderScoreboard(entries)

	if !strings.Contains(rowText(screen, 3), "Scoreboard") {
		t.Error("Expected title on row 3")
	}
	header := rowText(screen, 5)
	if !strings.Contains(header, "Name") || !strings.Contains(header, "Score") {
		t.Errorf("Expected header, got %q", header)
	}

	row := rowText(screen, 6)
	if !strings.Contains(row, "1") || !strings.Contains(row, "alice") || !strings.Contains(row, "900") {
		t.Errorf("Expected ranked first entry, got %q", row)
	}
	if mainc, _, _, _ := screen.GetContent(40-15, 9); mainc != ' ' && mainc != 0 {
		t.Errorf("Expected no rank for fourth entry, got %c", mainc)
	}

	// 12 rows: entries stop at row 9, footer on row 11
	if screenContains(screen, "erin") {
		t.Error("Expected entries clipped above the footer")
	}
	if !strings.HasPrefix(rowText(screen, 11), "Press 'q' to Quit") {
		t.Errorf("Expected footer, got %q", rowText(screen, 11))
	}
}

// TestRenderGameOver verifies each dialog stage
func TestRenderGameOver(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	r.RenderGameOver(GameOverView{Score: 1234, Reason: "time up", Stage: StageAskSave})
	for _, s := range []string{"Game Over", "Your Score: 1234", "time up", "(y/n): "} {
		if !screenContains(screen, s) {
			t.Errorf("Ask stage: expected %q", s)
		}
	}
	if screenContains(screen, "Enter your name") || screenContains(screen, "Press 'q'") {
		t.Error("Ask stage: unexpected later prompts")
	}

	r.RenderGameOver(GameOverView{Score: 1234, Stage: StageEnterName, Name: "ann"})
	if !screenContains(screen, "Enter your name: ") || !screenContains(screen, "ann") {
		t.Error("Name stage: expected name prompt and typed name")
	}

	r.RenderGameOver(GameOverView{Score: 1234, Stage: StageDone, Name: "ann", Message: "Saved"})
	for _, s := range []string{"ann", "Saved", "Press 'q' to return to the main menu"} {
		if !screenContains(screen, s) {
			t.Errorf("Done stage: expected %q", s)
		}
	}
}

// TestUpdateDimensions verifies drawing follows the new size
func TestUpdateDimensions(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	screen.SetSize(100, 30)
	r.UpdateDimensions(100, 30)
	if w, h := r.Size(); w != 100 || h != 30 {
		t.Fatalf("Expected 100x30, got %dx%d", w, h)
	}

	r.RenderGame(testView())
	if !strings.HasPrefix(rowText(screen, 29), "Q: Quit") {
		t.Errorf("Expected quit help on last row, got %q", rowText(screen, 29))
	}
}
