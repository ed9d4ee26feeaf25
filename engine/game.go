package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puyo/constants"
	"github.com/lixenwraith/puyo/core"
	"github.com/lixenwraith/puyo/status"
)

// Config is the simulation part of the session settings
type Config struct {
	Rows        int
	Cols        int
	Colors      int
	SpawnColumn int
	MaxDuration time.Duration // Zero disables the session limit
}

// DefaultConfig returns the settings used when nothing else is configured
func DefaultConfig() Config {
	return Config{
		Rows:        constants.DefaultRows,
		Cols:        constants.DefaultCols,
		Colors:      constants.DefaultColors,
		SpawnColumn: constants.DefaultSpawnColumn,
		MaxDuration: constants.DurationNormal,
	}
}

// EndReason explains why a session stopped
type EndReason uint8

const (
	EndNone EndReason = iota
	EndSpawnBlocked
	EndTimeUp
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndSpawnBlocked:
		return "spawn blocked"
	case EndTimeUp:
		return "time up"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// TickResult reports what one Advance call did, for the driver to render and play sounds
type TickResult struct {
	Landed     bool
	Spawned    bool
	Chains     int // Vanish passes in this resolution
	Vanished   int
	ScoreDelta int
	AllClear   bool
	Frames     []Frame // Intermediate states in order; empty when nothing animated
	GameOver   bool
	Reason     EndReason
}

// Option customizes a Game at construction
type Option func(*Game)

// WithLogger sets the structured logger; default discards
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithTimeProvider sets the clock source for the session limit
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) { g.provider = tp }
}

// WithRegistry publishes score and state metrics into r after every mutation
func WithRegistry(r *status.Registry) Option {
	return func(g *Game) { g.metrics = r }
}

// Game owns one playfield, its score and the session clock
// Not safe for concurrent use; readers on other goroutines go through the status registry
type Game struct {
	// ===== Immutable After Init =====
	logger   zerolog.Logger
	provider TimeProvider
	metrics  *status.Registry
	queue    *PreviewQueue

	// ===== Session State =====
	cfg    Config
	field  *Field
	score  Score
	clock  *PausableClock
	over   bool
	reason EndReason
}

// NewGame creates a game drawing colors from src
// The session is idle until Start
func NewGame(cfg Config, src ColorSource, opts ...Option) *Game {
	g := &Game{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.provider == nil {
		g.provider = NewMonotonicTimeProvider()
	}

	g.queue = NewPreviewQueue(src, cfg.Colors)
	g.clock = NewPausableClock(g.provider)
	g.Reconfigure(cfg)
	return g
}

// Reconfigure applies new settings, discarding the current field
// MaxChain and the random source carry over
func (g *Game) Reconfigure(cfg Config) {
	g.cfg = cfg
	g.queue.SetColors(cfg.Colors)
	g.field = NewField(cfg.Rows, cfg.Cols, cfg.SpawnColumn, g.queue)
	g.over = false
	g.reason = EndNone
	g.publish()
}

// Reset clears both layers, score and chain state and restarts the session clock
func (g *Game) Reset() {
	g.field.Clear()
	g.score.Reset()
	g.clock.Restart()
	g.over = false
	g.reason = EndNone
	g.publish()
}

// Start resets the session and spawns the first pair
func (g *Game) Start() TickResult {
	g.Reset()
	g.logger.Info().
		Int("rows", g.field.Rows()).
		Int("cols", g.field.Cols()).
		Int("colors", g.queue.Colors()).
		Dur("limit", g.cfg.MaxDuration).
		Msg("session started")

	var res TickResult
	g.spawn(&res)
	g.publish()
	return res
}

// Advance resolves a landing: vanish, resettle and repeat until stable, then spawn
// Runs the whole chain to its fixed point; returns the frames to animate it
func (g *Game) Advance() TickResult {
	var res TickResult
	if g.over {
		res.GameOver, res.Reason = true, g.reason
		return res
	}
	if g.clock.IsPaused() {
		return res
	}
	if g.Expired() {
		g.end(EndTimeUp)
		res.GameOver, res.Reason = true, g.reason
		g.publish()
		return res
	}

	landed, frames := g.field.Land()
	res.Frames = append(res.Frames, frames...)
	if !landed {
		g.publish()
		return res
	}
	res.Landed = true

	if g.score.ChainCount() == 0 {
		g.score.ClearDelta()
	}

	for {
		pass := g.field.VanishPass(&g.score)
		if pass.Vanished > 0 {
			res.Chains++
			res.Vanished += pass.Vanished
			res.ScoreDelta += pass.Delta
			res.Frames = append(res.Frames, pass.Frames...)
			g.logger.Debug().
				Int("chain", pass.Chain).
				Int("groups", len(pass.Groups)).
				Int("vanished", pass.Vanished).
				Int("delta", pass.Delta).
				Msg("vanish")
		}

		settled := g.field.Settle()
		if settled == nil {
			break
		}
		res.Frames = append(res.Frames, settled...)
	}

	if res.Vanished > 0 && g.field.Stack.CountNonEmpty() == 0 {
		res.AllClear = true
		g.logger.Info().Int("score", g.score.Total()).Msg("all clear")
	}
	if res.Chains > 1 {
		g.logger.Info().Int("chain", res.Chains).Int("max", g.score.MaxChain()).Msg("chain")
	}

	g.spawn(&res)
	g.publish()
	return res
}

func (g *Game) spawn(res *TickResult) {
	if g.field.Spawn(&g.score) {
		res.Spawned = true
		g.logger.Debug().Int("piece", g.score.Pieces()).Msg("spawn")
		return
	}
	g.end(EndSpawnBlocked)
	res.GameOver, res.Reason = true, g.reason
}

func (g *Game) end(reason EndReason) {
	if g.over {
		return
	}
	g.over = true
	g.reason = reason
	g.logger.Info().
		Str("reason", reason.String()).
		Int("score", g.score.Total()).
		Int("max_chain", g.score.MaxChain()).
		Int("pieces", g.score.Pieces()).
		Dur("elapsed", g.clock.Elapsed()).
		Msg("game over")
}

// Quit ends the session on player request
func (g *Game) Quit() {
	g.end(EndQuit)
	g.publish()
}

// Fall applies one gravity step to the falling cells
func (g *Game) Fall() bool {
	if g.over || g.clock.IsPaused() {
		return false
	}
	return g.field.MoveDown()
}

func (g *Game) inputAllowed() bool {
	return !g.over && !g.clock.IsPaused() && g.field.CanAcceptInput()
}

// MoveLeft shifts the pair one column left; false when rejected or input is locked
func (g *Game) MoveLeft() bool {
	return g.inputAllowed() && g.field.MoveHorizontal(DirLeft)
}

// MoveRight shifts the pair one column right; false when rejected or input is locked
func (g *Game) MoveRight() bool {
	return g.inputAllowed() && g.field.MoveHorizontal(DirRight)
}

// SoftDrop moves the pair down one row on player request
func (g *Game) SoftDrop() bool {
	return g.inputAllowed() && g.field.MoveDown()
}

// Rotate turns the pair one step; false when rejected or input is locked
func (g *Game) Rotate() bool {
	return g.inputAllowed() && g.field.Rotate()
}

// Pause freezes the session clock and locks input
func (g *Game) Pause() {
	g.clock.Pause()
	g.publish()
}

// Resume restarts the session clock and unlocks input
func (g *Game) Resume() {
	g.clock.Resume()
	g.publish()
}

// TogglePause flips pause state and returns the new state
func (g *Game) TogglePause() bool {
	if g.clock.IsPaused() {
		g.Resume()
	} else {
		g.Pause()
	}
	return g.clock.IsPaused()
}

// Paused reports whether the session is paused
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// Expired reports whether the session limit has passed
func (g *Game) Expired() bool {
	return g.cfg.MaxDuration > 0 && g.clock.Elapsed() > g.cfg.MaxDuration
}

// Over reports whether the session has ended
func (g *Game) Over() bool {
	return g.over
}

// Reason returns why the session ended, EndNone while running
func (g *Game) Reason() EndReason {
	return g.reason
}

// Active returns a read-only view of the falling layer
func (g *Game) Active() core.CellReader {
	return g.field.Active
}

// Stack returns a read-only view of the settled layer
func (g *Game) Stack() core.CellReader {
	return g.field.Stack
}

// Score returns a snapshot of the score state
func (g *Game) Score() ScoreView {
	return g.score.View()
}

// Preview returns the upcoming pairs, next first
func (g *Game) Preview() []Pair {
	return g.queue.Slots()
}

// PuyoCount returns the number of pieces on the field
func (g *Game) PuyoCount() int {
	return g.field.PuyoCount()
}

// Elapsed returns session time, excluding pauses
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed()
}

// Limit returns the session duration limit, zero when unlimited
func (g *Game) Limit() time.Duration {
	return g.cfg.MaxDuration
}

// Remaining returns session time left, zero when unlimited or expired
func (g *Game) Remaining() time.Duration {
	if g.cfg.MaxDuration <= 0 {
		return 0
	}
	return max(g.cfg.MaxDuration-g.clock.Elapsed(), 0)
}

// Config returns the current session settings
func (g *Game) Config() Config {
	return g.cfg
}

// Orientation returns the rotation state of the falling pair
func (g *Game) Orientation() Orientation {
	return g.field.Orientation
}

// Metric keys published into the status registry
const (
	MetricScore     = "score.total"
	MetricDelta     = "score.delta"
	MetricChain     = "chain.current"
	MetricMaxChain  = "chain.max"
	MetricPieces    = "pieces.spawned"
	MetricPuyo      = "field.puyo"
	MetricOver      = "game.over"
	MetricPaused    = "game.paused"
	MetricState     = "game.state"
	MetricElapsed   = "session.elapsed"
	MetricFieldSize = "field.size"
)

// publish mirrors the session state into the status registry
func (g *Game) publish() {
	if g.metrics == nil {
		return
	}
	s := g.score.View()
	g.metrics.Ints.Get(MetricScore).Store(int64(s.Total))
	g.metrics.Ints.Get(MetricDelta).Store(int64(s.Delta))
	g.metrics.Ints.Get(MetricChain).Store(int64(s.Chain))
	g.metrics.Ints.Get(MetricMaxChain).Store(int64(s.MaxChain))
	g.metrics.Ints.Get(MetricPieces).Store(int64(s.Pieces))
	g.metrics.Ints.Get(MetricPuyo).Store(int64(g.field.PuyoCount()))
	g.metrics.Bools.Get(MetricOver).Store(g.over)
	g.metrics.Bools.Get(MetricPaused).Store(g.clock.IsPaused())
	g.metrics.Floats.Get(MetricElapsed).Set(g.clock.Elapsed().Seconds())
	g.metrics.Strings.Get(MetricFieldSize).Store(fmt.Sprintf("%dx%d", g.field.Rows(), g.field.Cols()))

	state := "playing"
	switch {
	case g.over:
		state = g.reason.String()
	case g.clock.IsPaused():
		state = "paused"
	}
	g.metrics.Strings.Get(MetricState).Store(state)
}
