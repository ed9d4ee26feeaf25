package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/scoreboard"
)

// Menu is a vertical list of choices with one highlighted
type Menu struct {
	Title    string
	Logo     bool // Draw the colored title instead of Title
	Items    []string
	Selected int
	Footer   []string // Bottom lines, last one on the last row
}

var logo = []struct {
	ch    rune
	color tcell.Color
}{
	{'P', RgbPuyoRed}, {'u', RgbPuyoYellow}, {'y', RgbPuyoGreen}, {'o', RgbPuyoBlue},
	{' ', RgbText},
	{'P', RgbPuyoRed}, {'u', RgbPuyoYellow}, {'y', RgbPuyoGreen}, {'o', RgbPuyoBlue},
}

// RenderMenu renders a centered menu
func (r *TerminalRenderer) RenderMenu(m Menu) {
	defaultStyle := r.begin()
	cx, cy := r.width/2, r.height/2

	if m.Logo {
		x := cx - len(logo)/2
		for i, l := range logo {
			r.screen.SetContent(x+i, cy-3, l.ch, nil, defaultStyle.Foreground(l.color).Bold(true))
		}
	} else if m.Title != "" {
		r.drawText(cx-len(m.Title)/2, cy-3, m.Title, defaultStyle.Bold(true))
	}

	width := 0
	for _, item := range m.Items {
		width = max(width, len(item))
	}
	x := cx - width/2
	for i, item := range m.Items {
		style := defaultStyle
		if i == m.Selected {
			style = style.Reverse(true)
		}
		r.drawPadded(x, cy-1+i, width, item, style)
	}

	r.drawFooter(m.Footer, defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) drawFooter(lines []string, style tcell.Style) {
	for i, line := range lines {
		r.drawText(0, r.height-len(lines)+i, line, style.Foreground(RgbHelpText))
	}
}

// RenderScoreboard renders stored scores, best first, ranking the leading entries
func (r *TerminalRenderer) RenderScoreboard(entries []scoreboard.Entry) {
	defaultStyle := r.begin()
	cx := r.width / 2

	r.drawText(cx-5, 3, "Scoreboard", defaultStyle.Bold(true))

	header := defaultStyle.Reverse(true)
	r.drawPadded(cx-15, 5, 30, "", header)
	r.drawText(cx-10, 5, "Name", header)
	r.drawText(cx+5, 5, "Score", header)

	for i, e := range entries {
		y := 6 + i
		if y >= r.height-2 {
			break
		}
		if i < constants.ScoreboardRanked {
			r.drawText(cx-15, y, strconv.Itoa(i+1), defaultStyle.Foreground(RgbChain))
		}
		r.drawText(cx-10, y, e.Name, defaultStyle)
		r.drawText(cx+5, y, strconv.Itoa(e.Score), defaultStyle.Foreground(RgbScore))
	}

	r.drawFooter([]string{"Press 'q' to Quit"}, defaultStyle)
	r.screen.Show()
}

// GameOverStage is the step of the save dialog after a session ends
type GameOverStage uint8

const (
	// StageAskSave waits for y/n
	StageAskSave GameOverStage = iota
	// StageEnterName collects the player name
	StageEnterName
	// StageDone waits for q
	StageDone
)

// GameOverView is the state of the game over screen
type GameOverView struct {
	Score   int
	Reason  string
	Stage   GameOverStage
	Name    string
	Message string // Save result or validation error
}

// RenderGameOver renders the final score and save dialog
func (r *TerminalRenderer) RenderGameOver(v GameOverView) {
	defaultStyle := r.begin()
	cx, cy := r.width/2, r.height/2

	r.drawPadded(cx-7, cy-5, 13, "  Game Over", defaultStyle.Reverse(true))
	if v.Reason != "" {
		r.drawText(cx-len(v.Reason)/2, cy-4, v.Reason, defaultStyle.Foreground(RgbHelpText))
	}
	r.drawText(cx-7, cy-2, fmt.Sprintf("Your Score: %d", v.Score), defaultStyle.Foreground(RgbScore))

	end := r.drawText(cx-26, cy, "Do you want to save your score to scoreboard? (y/n): ", defaultStyle)
	if v.Stage == StageAskSave {
		r.screen.ShowCursor(end, cy)
	}

	if v.Stage == StageEnterName || (v.Stage == StageDone && v.Name != "") {
		r.drawText(cx-8, cy+1, "Enter your name: ", defaultStyle)
		end = r.drawText(cx-6, cy+3, v.Name, defaultStyle.Bold(true))
		if v.Stage == StageEnterName {
			r.screen.ShowCursor(end, cy+3)
		}
	}

	if v.Message != "" {
		r.drawText(cx-len(v.Message)/2, cy+4, v.Message, defaultStyle.Foreground(RgbChain))
	}
	if v.Stage == StageDone {
		r.drawText(cx-15, cy+5, "Press 'q' to return to the main menu", defaultStyle)
	}
	r.screen.Show()
}
