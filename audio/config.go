package audio

import (
	"github.com/lixenwraith/puyo/constants"
)

// AudioConfig holds output settings for the sound manager
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0..1
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundRotate:   0.4,
			SoundLand:     0.6,
			SoundVanish:   0.8,
			SoundAllClear: 1.0,
			SoundGameOver: 0.8,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// SetMasterVolume stores v clamped to 0..1
func (c *AudioConfig) SetMasterVolume(v float64) {
	c.MasterVolume = min(max(v, 0), 1)
}

// gain returns the effective linear gain for st
func (c *AudioConfig) gain(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
