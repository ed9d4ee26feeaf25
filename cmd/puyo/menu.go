package main

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/config"
	"github.com/lixenwraith/puyo/render"
)

const menuFooter = "Press Up Down Enter or Number Key to Choose"

// menuAction is the outcome of one key press in a menu
type menuAction uint8

const (
	menuNone menuAction = iota
	menuChoose
	menuBack
)

// menuKey applies a key to m; on menuChoose the chosen index is m.Selected
func menuKey(m *render.Menu, ev *tcell.EventKey) menuAction {
	switch ev.Key() {
	case tcell.KeyUp:
		if m.Selected > 0 {
			m.Selected--
		}
	case tcell.KeyDown:
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case tcell.KeyEnter:
		return menuChoose
	case tcell.KeyEscape:
		return menuBack
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' || r == 'Q' {
			return menuBack
		}
		if i := int(r - '1'); i >= 0 && i < len(m.Items) && i < 9 {
			m.Selected = i
			return menuChoose
		}
	}
	return menuNone
}

// Main menu entries
const (
	mainStart = iota
	mainScoreboard
	mainSettings
	mainQuit
)

func mainMenu() render.Menu {
	return render.Menu{
		Logo:   true,
		Items:  []string{"1. Start", "2. Scoreboard", "3. Settings", "4. Quit"},
		Footer: []string{menuFooter},
	}
}

func settingsMenu() render.Menu {
	return render.Menu{
		Title: "Settings",
		Items: []string{
			"1. Falling Speed of Puyo",
			"2. Max Game Duration",
			"3. Numbers of Color for Puyo",
		},
		Footer: []string{menuFooter, "Press 'q' to Quit"},
	}
}

// settingMenu describes one settings submenu and how a choice edits the config
type settingMenu struct {
	menu  render.Menu
	apply func(cfg *config.Config, i int)
}

func speedMenu(cfg config.Config) settingMenu {
	items := make([]string, len(config.Speeds))
	for i, s := range config.Speeds {
		items[i] = fmt.Sprintf("%d. %s", i+1, speedLabel(s))
	}
	return settingMenu{
		menu: render.Menu{
			Title:    "Set Falling Speed of Puyo",
			Items:    items,
			Selected: max(slices.Index(config.Speeds, cfg.Speed), 0),
			Footer:   []string{menuFooter, "Press 'q' to Quit"},
		},
		apply: func(cfg *config.Config, i int) { cfg.Speed = config.Speeds[i] },
	}
}

func durationMenu(cfg config.Config) settingMenu {
	items := make([]string, len(config.Durations))
	for i, d := range config.Durations {
		items[i] = fmt.Sprintf("%d. %-4d Seconds", i+1, d)
	}
	return settingMenu{
		menu: render.Menu{
			Title:    "Set Max Game Duration",
			Items:    items,
			Selected: max(slices.Index(config.Durations, cfg.MaxDuration), 0),
			Footer:   []string{menuFooter, "Press 'q' to Quit"},
		},
		apply: func(cfg *config.Config, i int) { cfg.MaxDuration = config.Durations[i] },
	}
}

func colorsMenu(cfg config.Config) settingMenu {
	items := make([]string, len(config.ColorCounts))
	for i, n := range config.ColorCounts {
		items[i] = fmt.Sprintf("%d. %d Colors", i+1, n)
	}
	return settingMenu{
		menu: render.Menu{
			Title:    "Set the Number of Colors for Puyo",
			Items:    items,
			Selected: max(slices.Index(config.ColorCounts, cfg.Colors), 0),
			Footer:   []string{menuFooter, "Press 'q' to Quit"},
		},
		apply: func(cfg *config.Config, i int) { cfg.Colors = config.ColorCounts[i] },
	}
}

func speedLabel(s config.Speed) string {
	switch s {
	case config.SpeedSlow:
		return "Slow"
	case config.SpeedFast:
		return "Fast"
	default:
		return "Normal"
	}
}
