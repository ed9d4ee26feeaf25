package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker rate all effects are generated at
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the output gain, 0..1
	DefaultMasterVolume = 0.5
)

// Rotate Sound Timing
const (
	RotateSoundDuration = 40 * time.Millisecond
	RotateSoundAttack   = 2 * time.Millisecond
	RotateSoundRelease  = 25 * time.Millisecond
)

// Land Sound Timing
const (
	LandSoundDuration = 90 * time.Millisecond
	LandSoundAttack   = 3 * time.Millisecond
	LandSoundRelease  = 60 * time.Millisecond
)

// Vanish Sound Timing
const (
	VanishSoundNote1Duration = 70 * time.Millisecond
	VanishSoundNote2Duration = 220 * time.Millisecond
	VanishSoundAttack        = 5 * time.Millisecond
	VanishSoundNote1Release  = 30 * time.Millisecond
	VanishSoundNote2Release  = 160 * time.Millisecond

	// VanishPitchSteps caps how many semitones the chime rises with the chain
	VanishPitchSteps = 12
)

// All Clear Sound Timing
const (
	AllClearSoundDuration           = 700 * time.Millisecond
	AllClearSoundAttack             = 5 * time.Millisecond
	AllClearSoundFundamentalRelease = 650 * time.Millisecond
	AllClearSoundOvertoneRelease    = 250 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)
