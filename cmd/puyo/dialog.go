package main

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/engine"
	"github.com/lixenwraith/puyo/render"
	"github.com/lixenwraith/puyo/scoreboard"
)

// saveDialog drives the game over screen: y/n prompt, name entry, then wait for q
type saveDialog struct {
	view render.GameOverView
}

func newSaveDialog(score int, reason engine.EndReason) *saveDialog {
	return &saveDialog{view: render.GameOverView{
		Score:  score,
		Reason: reasonText(reason),
		Stage:  render.StageAskSave,
	}}
}

// handleKey advances the dialog
// submit is true when a name was confirmed and should be saved
// done is true once the player leaves the screen
func (d *saveDialog) handleKey(ev *tcell.EventKey) (submit, done bool) {
	switch d.view.Stage {
	case render.StageAskSave:
		if ev.Key() != tcell.KeyRune {
			return false, false
		}
		switch ev.Rune() {
		case 'y', 'Y':
			d.view.Stage = render.StageEnterName
		case 'n', 'N':
			d.view.Stage = render.StageDone
		}

	case render.StageEnterName:
		switch ev.Key() {
		case tcell.KeyEnter:
			if d.view.Name != "" {
				return true, false
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if n := len(d.view.Name); n > 0 {
				d.view.Name = d.view.Name[:n-1]
			}
		case tcell.KeyEscape:
			d.view.Name = ""
			d.view.Stage = render.StageDone
		case tcell.KeyRune:
			r := ev.Rune()
			if scoreboard.AcceptsRune(r) && len(d.view.Name) < constants.MaxNameLength {
				d.view.Name += string(r)
			}
		}

	case render.StageDone:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false, true
		}
		if ev.Key() == tcell.KeyEscape {
			return false, true
		}
	}
	return false, false
}

// saved records the outcome of a save attempt
// A rejected name reopens the prompt; anything else moves to the final stage
func (d *saveDialog) saved(err error) {
	if errors.Is(err, scoreboard.ErrInvalidName) {
		d.view.Message = "Invalid name, try again"
		d.view.Name = ""
		return
	}
	if err != nil {
		d.view.Message = "Save failed: " + err.Error()
	} else {
		d.view.Message = "Score saved"
	}
	d.view.Stage = render.StageDone
}

func reasonText(r engine.EndReason) string {
	switch r {
	case engine.EndTimeUp:
		return "Time is up"
	case engine.EndSpawnBlocked:
		return "No room for the next Puyo"
	case engine.EndQuit:
		return "Game quit"
	default:
		return ""
	}
}
