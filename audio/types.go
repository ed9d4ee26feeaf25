package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundRotate   SoundType = iota // Pair turned
	SoundLand                      // Pair settled on the stack
	SoundVanish                    // Group cleared, pitched by chain
	SoundAllClear                  // Stack emptied by a vanish
	SoundGameOver                  // Session ended
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundRotate:
		return "rotate"
	case SoundLand:
		return "land"
	case SoundVanish:
		return "vanish"
	case SoundAllClear:
		return "all_clear"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrNoDevice is returned when the speaker cannot be opened
var ErrNoDevice = errors.New("no audio output device")
