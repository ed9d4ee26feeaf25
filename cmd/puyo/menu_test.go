package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/puyo/config"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// TestMenuKeyNavigation verifies arrows clamp at both ends
func TestMenuKeyNavigation(t *testing.T) {
	m := mainMenu()

	if got := menuKey(&m, key(tcell.KeyUp)); got != menuNone || m.Selected != 0 {
		t.Errorf("Expected Up at top to stay at 0, got %d (action %d)", m.Selected, got)
	}
	for i := 0; i < 10; i++ {
		menuKey(&m, key(tcell.KeyDown))
	}
	if m.Selected != len(m.Items)-1 {
		t.Errorf("Expected Down to stop at %d, got %d", len(m.Items)-1, m.Selected)
	}
	menuKey(&m, key(tcell.KeyUp))
	if m.Selected != len(m.Items)-2 {
		t.Errorf("Expected Up to move to %d, got %d", len(m.Items)-2, m.Selected)
	}
	if got := menuKey(&m, key(tcell.KeyEnter)); got != menuChoose {
		t.Errorf("Expected Enter to choose, got %d", got)
	}
}

// TestMenuKeyDigits verifies number keys choose directly and out-of-range digits are ignored
func TestMenuKeyDigits(t *testing.T) {
	m := mainMenu()

	if got := menuKey(&m, runeKey('3')); got != menuChoose || m.Selected != mainSettings {
		t.Errorf("Expected '3' to choose settings, got %d (action %d)", m.Selected, got)
	}
	if got := menuKey(&m, runeKey('9')); got != menuNone || m.Selected != mainSettings {
		t.Errorf("Expected '9' to be ignored, got %d (action %d)", m.Selected, got)
	}
	if got := menuKey(&m, runeKey('0')); got != menuNone {
		t.Errorf("Expected '0' to be ignored, got action %d", got)
	}
	if got := menuKey(&m, runeKey('q')); got != menuBack {
		t.Errorf("Expected 'q' to go back, got %d", got)
	}
	if got := menuKey(&m, key(tcell.KeyEscape)); got != menuBack {
		t.Errorf("Expected Esc to go back, got %d", got)
	}
}

// TestSettingMenus verifies labels, current selection and applied values
func TestSettingMenus(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = config.SpeedFast
	cfg.MaxDuration = 1200
	cfg.Colors = 5

	speed := speedMenu(cfg)
	if speed.menu.Items[0] != "1. Slow" || speed.menu.Items[2] != "3. Fast" {
		t.Errorf("Unexpected speed items %v", speed.menu.Items)
	}
	if speed.menu.Selected != 2 {
		t.Errorf("Expected current speed selected, got %d", speed.menu.Selected)
	}
	speed.apply(&cfg, 0)
	if cfg.Speed != config.SpeedSlow {
		t.Errorf("Expected slow, got %s", cfg.Speed)
	}

	dur := durationMenu(cfg)
	if dur.menu.Items[0] != "1. 300  Seconds" || dur.menu.Items[2] != "3. 1200 Seconds" {
		t.Errorf("Unexpected duration items %q", dur.menu.Items)
	}
	if dur.menu.Selected != 2 {
		t.Errorf("Expected current duration selected, got %d", dur.menu.Selected)
	}
	dur.apply(&cfg, 0)
	if cfg.MaxDuration != 300 {
		t.Errorf("Expected 300, got %d", cfg.MaxDuration)
	}

	colors := colorsMenu(cfg)
	if colors.menu.Items[1] != "2. 5 Colors" || colors.menu.Selected != 1 {
		t.Errorf("Unexpected colors menu %v selected %d", colors.menu.Items, colors.menu.Selected)
	}
	colors.apply(&cfg, 0)
	if cfg.Colors != 4 {
		t.Errorf("Expected 4 colors, got %d", cfg.Colors)
	}

	// Values outside the presets select the first entry
	cfg.MaxDuration = 42
	if got := durationMenu(cfg).menu.Selected; got != 0 {
		t.Errorf("Expected fallback selection 0, got %d", got)
	}
}
