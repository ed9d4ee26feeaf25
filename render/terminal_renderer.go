package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/core"
	"github.com/lixenwraith/puyo/engine"
)

// GameView is everything drawn on the play screen for one frame
// Active and Stack may come from the live game or from an animation frame
type GameView struct {
	Active    core.CellReader
	Stack     core.CellReader
	Score     engine.ScoreView
	TopScore  int // Best stored score, for the HIGH SCORE badge
	Chains    int // Chains of the last resolution
	AllClear  bool
	Preview   []engine.Pair
	PuyoCount int
	Elapsed   time.Duration
	Limit     time.Duration
	Paused    bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		width:  w,
		height: h,
	}
}

// UpdateDimensions updates renderer dimensions after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the dimensions the renderer draws into
func (r *TerminalRenderer) Size() (width, height int) {
	return r.width, r.height
}

func (r *TerminalRenderer) begin() tcell.Style {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.HideCursor()
	r.screen.Clear()
	return defaultStyle
}

// RenderGame renders the field and HUD
func (r *TerminalRenderer) RenderGame(v GameView) {
	defaultStyle := r.begin()

	r.drawField(v.Active, v.Stack, defaultStyle)
	r.drawHUD(v, defaultStyle)

	r.screen.Show()
}

// drawField draws one glyph per cell; the falling layer wins over the stack
func (r *TerminalRenderer) drawField(active, stack core.CellReader, defaultStyle tcell.Style) {
	for y := 0; y < stack.Rows() && y < r.height; y++ {
		for x := 0; x < stack.Cols() && x < r.width; x++ {
			c := active.Get(y, x)
			if c == core.Empty {
				c = stack.Get(y, x)
			}
			r.screen.SetContent(x, y, c.Rune(), nil, CellStyle(defaultStyle, c))
		}
	}
}

// hudX is the left edge of the HUD, right of the field when the terminal is narrow
func (r *TerminalRenderer) hudX(fieldCols int) int {
	return max(r.width-constants.HUDWidth, fieldCols+2)
}

func (r *TerminalRenderer) drawHUD(v GameView, defaultStyle tcell.Style) {
	rows, cols := v.Stack.Rows(), v.Stack.Cols()
	x := r.hudX(cols)

	r.drawText(x, 2, fmt.Sprintf("Field: %d x %d, Puyo number: %03d", rows, cols, v.PuyoCount), defaultStyle)

	r.drawText(x, 3, fmt.Sprintf("Score: %d", v.Score.Total), defaultStyle.Foreground(RgbScore))
	if v.Score.Total > v.TopScore {
		r.drawText(x+20, 3, "HIGH SCORE", defaultStyle.Foreground(RgbHighScore).Background(RgbHighScoreBg))
	}

	if v.Score.Delta > 0 {
		r.drawText(x+6, 4, fmt.Sprintf("+ %d", v.Score.Delta), defaultStyle.Foreground(RgbScore))
	}
	if v.Chains > 1 {
		r.drawText(x+21, 4, fmt.Sprintf("Chain %d!", v.Chains), defaultStyle.Foreground(RgbChain).Bold(true))
	}
	r.drawText(x+20, 5, fmt.Sprintf("Max Chain: %d", v.Score.MaxChain), defaultStyle)

	r.drawText(x, 6, "Next Puyo: ", defaultStyle)
	for i, p := range v.Preview {
		px := x + constants.PreviewOffset + i*2
		r.screen.SetContent(px, 6, p.First.Rune(), nil, CellStyle(defaultStyle, p.First))
		r.screen.SetContent(px, 7, p.Second.Rune(), nil, CellStyle(defaultStyle, p.Second))
	}

	timer := fmt.Sprintf("Game Time: %ds", int(v.Elapsed.Seconds()))
	if v.Limit > 0 {
		timer = fmt.Sprintf("Game Time: %ds / %ds", int(v.Elapsed.Seconds()), int(v.Limit.Seconds()))
	}
	r.drawText(2, rows+1, timer, defaultStyle)

	if v.AllClear {
		r.drawText(2, rows+2, "ALL CLEAR!", defaultStyle.Foreground(RgbAllClear).Bold(true))
	}
	if v.Paused {
		r.drawText(2, rows+3, "PAUSED", defaultStyle.Foreground(RgbPaused).Bold(true))
	}

	// Key help
	helpStyle := defaultStyle.Foreground(RgbHelpText)
	helpY := r.height/2 + 1
	r.drawText(x, helpY, "Use the following keys to play:", helpStyle)
	r.drawText(x+5, helpY+2, "Arrow Left: Move Left", helpStyle)
	r.drawText(x+5, helpY+3, "Arrow Right: Move Right", helpStyle)
	r.drawText(x+5, helpY+4, "Arrow Down: Move Down", helpStyle)
	r.drawText(x+5, helpY+5, "z: Rotate", helpStyle)

	r.drawText(0, r.height-2, "s: Pause/Resume", helpStyle)
	r.drawText(0, r.height-1, "Q: Quit", helpStyle)
}

// drawText writes s from (x, y), clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// drawPadded writes s padded with spaces to width, used for highlight bars
func (r *TerminalRenderer) drawPadded(x, y, width int, s string, style tcell.Style) {
	end := r.drawText(x, y, s, style)
	for ; end < x+width; end++ {
		r.drawText(end, y, " ", style)
	}
}
