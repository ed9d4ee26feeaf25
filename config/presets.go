package config

import (
	"slices"
	"time"

	"github.com/lixenwraith/puyo/constants"
)

// Speed names a gravity preset
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Speeds lists the presets in menu order
var Speeds = []Speed{SpeedSlow, SpeedNormal, SpeedFast}

// Durations lists the session limit presets in seconds, in menu order
var Durations = []int{
	int(constants.DurationShort / time.Second),
	int(constants.DurationNormal / time.Second),
	int(constants.DurationLong / time.Second),
}

// ColorCounts lists the selectable palette sizes
var ColorCounts = []int{constants.MinColors, constants.MaxColors}

// Valid reports whether s is a known preset
func (s Speed) Valid() bool {
	return slices.Contains(Speeds, s)
}

// Interval returns the gravity interval, normal for unknown presets
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return constants.GravitySlow
	case SpeedFast:
		return constants.GravityFast
	default:
		return constants.GravityNormal
	}
}
