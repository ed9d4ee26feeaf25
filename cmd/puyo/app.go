package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puyo/audio"
	"github.com/lixenwraith/puyo/config"
	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/engine"
	"github.com/lixenwraith/puyo/render"
	"github.com/lixenwraith/puyo/scoreboard"
)

const storeTimeout = 5 * time.Second

// hudState is what the HUD remembers between landings
type hudState struct {
	chains   int
	allClear bool
}

// app is the terminal driver: menus, settings, the play loop and the save dialog
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	events   chan tcell.Event

	cfg    config.Config
	game   *engine.Game
	store  scoreboard.Store
	sounds *audio.SoundManager
	logger zerolog.Logger

	// sleep holds an animation frame on screen
	sleep func(time.Duration)
}

func newApp(screen tcell.Screen, cfg config.Config, game *engine.Game, store scoreboard.Store, sounds *audio.SoundManager, logger zerolog.Logger) *app {
	return &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		events:   make(chan tcell.Event, 256),
		cfg:      cfg,
		game:     game,
		store:    store,
		sounds:   sounds,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// run shows the main menu until Quit is chosen or the terminal closes
func (a *app) run() {
	go a.pollEvents()

	m := mainMenu()
	for {
		a.renderer.RenderMenu(m)
		ev, ok := a.nextKey()
		if !ok {
			return
		}
		if ev == nil || menuKey(&m, ev) != menuChoose {
			continue
		}

		var alive bool
		switch m.Selected {
		case mainStart:
			alive = a.play()
		case mainScoreboard:
			alive = a.showScoreboard()
		case mainSettings:
			alive = a.settings()
		case mainQuit:
			return
		}
		if !alive {
			return
		}
	}
}

// pollEvents feeds terminal events into the channel until the screen is finalized
// Input polling uses a raw goroutine as it interacts directly with the terminal
func (a *app) pollEvents() {
	defer func() {
		if r := recover(); r != nil {
			crash(a.screen, "EVENT POLLER CRASHED", r)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		a.events <- ev
	}
}

// nextKey blocks for the next key event
// Returns a nil event after a resize so the caller redraws; ok is false once input is closed
func (a *app) nextKey() (*tcell.EventKey, bool) {
	for ev := range a.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			a.resize()
			return nil, true
		}
	}
	return nil, false
}

func (a *app) resize() {
	a.screen.Sync()
	w, h := a.screen.Size()
	a.renderer.UpdateDimensions(w, h)
	a.logger.Debug().Int("width", w).Int("height", h).Msg("terminal resized")
}

// ===== Settings =====

func (a *app) settings() bool {
	m := settingsMenu()
	for {
		a.renderer.RenderMenu(m)
		ev, ok := a.nextKey()
		if !ok {
			return false
		}
		if ev == nil {
			continue
		}

		switch menuKey(&m, ev) {
		case menuBack:
			return true
		case menuChoose:
			var sm settingMenu
			switch m.Selected {
			case 0:
				sm = speedMenu(a.cfg)
			case 1:
				sm = durationMenu(a.cfg)
			default:
				sm = colorsMenu(a.cfg)
			}
			if !a.runSetting(sm) {
				return false
			}
		}
	}
}

func (a *app) runSetting(sm settingMenu) bool {
	for {
		a.renderer.RenderMenu(sm.menu)
		ev, ok := a.nextKey()
		if !ok {
			return false
		}
		if ev == nil {
			continue
		}

		switch menuKey(&sm.menu, ev) {
		case menuBack:
			return true
		case menuChoose:
			sm.apply(&a.cfg, sm.menu.Selected)
			a.logger.Info().
				Str("speed", string(a.cfg.Speed)).
				Int("max_duration", a.cfg.MaxDuration).
				Int("colors", a.cfg.Colors).
				Msg("settings changed")
			return true
		}
	}
}

// ===== Scoreboard =====

func (a *app) loadScores() []scoreboard.Entry {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entries, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("load scoreboard")
		return nil
	}
	return entries
}

func (a *app) showScoreboard() bool {
	entries := a.loadScores()
	for {
		a.renderer.RenderScoreboard(entries)
		ev, ok := a.nextKey()
		if !ok {
			return false
		}
		if ev == nil {
			continue
		}
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return true
		}
	}
}

// ===== Play =====

// play runs one session from spawn to game over, then the save dialog
func (a *app) play() bool {
	w, h := a.renderer.Size()
	a.game.Reconfigure(a.cfg.Engine(h, w))
	top := scoreboard.HighScore(a.loadScores())
	var hud hudState

	a.game.Start()

	gravity := time.NewTicker(a.cfg.Gravity())
	defer gravity.Stop()
	poll := time.NewTicker(constants.InputPollInterval)
	defer poll.Stop()

	for !a.game.Over() {
		a.renderer.RenderGame(a.view(nil, hud, top))

		select {
		case ev, ok := <-a.events:
			if !ok {
				a.game.Quit()
				return false
			}
			a.handleGameEvent(ev)
		case <-gravity.C:
			a.game.Fall()
		case <-poll.C:
			a.resolve(a.game.Advance(), &hud, top)
		}
	}

	a.sounds.PlayGameOver()
	return a.gameOver()
}

func (a *app) handleGameEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			a.game.MoveLeft()
		case tcell.KeyRight:
			a.game.MoveRight()
		case tcell.KeyDown:
			a.game.SoftDrop()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'z':
				if a.game.Rotate() {
					a.sounds.PlayRotate()
				}
			case 's':
				a.game.TogglePause()
			case 'Q':
				a.game.Quit()
			}
		}
	}
}

// resolve plays back a landing: sounds, animation frames, HUD flags
func (a *app) resolve(res engine.TickResult, hud *hudState, top int) {
	if res.Landed {
		a.sounds.PlayLand()
	}
	a.animate(res.Frames, *hud, top)
	if res.Landed {
		hud.chains = res.Chains
		hud.allClear = res.AllClear
	}
	if res.AllClear {
		a.sounds.PlayAllClear()
	}
}

// animate holds each intermediate frame on screen; a vanish pass starts with a vanish frame not preceded by a blink
func (a *app) animate(frames []engine.Frame, hud hudState, top int) {
	chain := 0
	prev := engine.FrameFall
	for i := range frames {
		f := &frames[i]
		if f.Kind == engine.FrameVanish && prev != engine.FrameBlink {
			chain++
			a.sounds.PlayVanish(chain)
		}
		a.renderer.RenderGame(a.view(f, hud, top))

		delay := constants.FallFrameDelay
		if f.Kind != engine.FrameFall {
			delay = constants.BlinkFrameDelay
		}
		a.sleep(delay)
		prev = f.Kind
	}
}

// view assembles the HUD data, drawing the layers of frame when given
func (a *app) view(frame *engine.Frame, hud hudState, top int) render.GameView {
	v := render.GameView{
		Active:    a.game.Active(),
		Stack:     a.game.Stack(),
		Score:     a.game.Score(),
		TopScore:  top,
		Chains:    hud.chains,
		AllClear:  hud.allClear,
		Preview:   a.game.Preview(),
		PuyoCount: a.game.PuyoCount(),
		Elapsed:   a.game.Elapsed(),
		Limit:     a.game.Limit(),
		Paused:    a.game.Paused(),
	}
	if frame != nil {
		v.Active, v.Stack = frame.Active, frame.Stack
		v.PuyoCount = frame.Active.CountNonEmpty() + frame.Stack.CountNonEmpty()
	}
	return v
}

// ===== Game Over =====

func (a *app) gameOver() bool {
	d := newSaveDialog(a.game.Score().Total, a.game.Reason())
	for {
		a.renderer.RenderGameOver(d.view)
		ev, ok := a.nextKey()
		if !ok {
			return false
		}
		if ev == nil {
			continue
		}

		submit, done := d.handleKey(ev)
		if submit {
			d.saved(a.saveScore(d.view.Name, d.view.Score))
		}
		if done {
			return true
		}
	}
}

func (a *app) saveScore(name string, score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := a.store.Save(ctx, scoreboard.Entry{Name: name, Score: score}); err != nil {
		a.logger.Error().Err(err).Str("name", name).Int("score", score).Msg("save score")
		return err
	}
	a.logger.Info().Str("name", name).Int("score", score).Msg("score saved")
	return nil
}
