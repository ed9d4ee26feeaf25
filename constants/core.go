package constants

import "time"

// Game Loop & Animation Timing
const (
	// InputPollInterval is how often the driver checks for input and advances the simulation
	InputPollInterval = 10 * time.Millisecond

	// FallFrameDelay is the pause between frames of a settle (one row per frame)
	FallFrameDelay = 150 * time.Millisecond

	// BlinkFrameDelay is the pause between blink frames of a vanishing group
	BlinkFrameDelay = 300 * time.Millisecond
)

// Falling Speed Presets (gravity tick interval)
const (
	GravitySlow   = 800 * time.Millisecond
	GravityNormal = 400 * time.Millisecond
	GravityFast   = 200 * time.Millisecond
)

// Session Duration Presets
const (
	DurationShort  = 300 * time.Second
	DurationNormal = 600 * time.Second
	DurationLong   = 1200 * time.Second
)

// Field Defaults
const (
	// DefaultRows and DefaultCols size the field when no terminal is available
	DefaultRows = 12
	DefaultCols = 12

	// DefaultSpawnColumn is the column of the first cell of a new pair; the second cell spawns to its right
	DefaultSpawnColumn = 5

	// DefaultColors is the number of colors in play
	DefaultColors = 4

	// MinColors and MaxColors bound the colors offered by the settings menu
	MinColors = 4
	MaxColors = 5
)

// Preview Queue
const (
	// PreviewSlots is the number of upcoming pairs kept in the queue
	PreviewSlots = 3
)
