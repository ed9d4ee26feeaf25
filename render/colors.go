package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/core"
)

// RGB color definitions for pieces and HUD
var (
	RgbPuyoRed    = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbPuyoBlue   = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPuyoGreen  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbPuyoYellow = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbPuyoPurple = tcell.NewRGBColor(200, 100, 255) // Magenta-ish purple
	RgbEmptyCell  = tcell.NewRGBColor(90, 90, 110)   // Dim gray dot

	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbScore      = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbChain      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAllClear   = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white
	RgbPaused     = tcell.NewRGBColor(255, 192, 203) // Pink

	// High score badge
	RgbHighScore   = tcell.NewRGBColor(255, 0, 255)   // Magenta
	RgbHighScoreBg = tcell.NewRGBColor(255, 255, 255) // White
)

// PuyoColor returns the foreground color for a cell value
func PuyoColor(c core.Color) tcell.Color {
	switch c {
	case core.Red:
		return RgbPuyoRed
	case core.Blue:
		return RgbPuyoBlue
	case core.Green:
		return RgbPuyoGreen
	case core.Yellow:
		return RgbPuyoYellow
	case core.Purple:
		return RgbPuyoPurple
	default:
		return RgbEmptyCell
	}
}

// CellStyle returns the style a cell value is drawn with over base
func CellStyle(base tcell.Style, c core.Color) tcell.Style {
	style := base.Foreground(PuyoColor(c))
	if c != core.Empty {
		style = style.Bold(true)
	}
	return style
}
