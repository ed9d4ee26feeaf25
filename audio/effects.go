package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/puyo/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave streamer of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain vol; zero or less is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// VanishPitch returns the chime base frequency for a chain count
// Rises a semitone per chain from A5, capped at an octave
func VanishPitch(chain int) float64 {
	steps := min(max(chain-1, 0), constants.VanishPitchSteps)
	return 880.0 * math.Pow(2, float64(steps)/12)
}

// Sound effect generators

// CreateRotateSound generates a short high click
func CreateRotateSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(1320.0, WaveSine, constants.RotateSoundDuration, constants.RotateSoundAttack, constants.RotateSoundRelease, rate)
	return newVolume(s, cfg.gain(SoundRotate))
}

// CreateLandSound generates a low thud
func CreateLandSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(90.0, WaveSaw, constants.LandSoundDuration, constants.LandSoundAttack, constants.LandSoundRelease, rate)
	return newVolume(s, cfg.gain(SoundLand))
}

// CreateVanishSound generates a two-note chime, higher for longer chains
func CreateVanishSound(cfg *AudioConfig, chain int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	base := VanishPitch(chain)

	n1 := tone(base, WaveSquare, constants.VanishSoundNote1Duration, constants.VanishSoundAttack, constants.VanishSoundNote1Release, rate)
	// Perfect fifth above
	n2 := tone(base*1.5, WaveSquare, constants.VanishSoundNote2Duration, constants.VanishSoundAttack, constants.VanishSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.gain(SoundVanish))
}

// CreateAllClearSound generates a bell with an octave overtone
func CreateAllClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(1046.5, WaveSine, constants.AllClearSoundDuration, constants.AllClearSoundAttack, constants.AllClearSoundFundamentalRelease, rate)
	over := tone(2093.0, WaveSine, constants.AllClearSoundDuration, constants.AllClearSoundAttack, constants.AllClearSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	// Mix may not drain on its own
	bounded := beep.Take(rate.N(constants.AllClearSoundDuration), mixed)
	return newVolume(bounded, cfg.gain(SoundAllClear))
}

// CreateGameOverSound generates three descending notes
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.0, 311.1, 246.9} // G4, Eb4, B3
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, WaveSaw, constants.GameOverNoteDuration, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate)
	}
	return newVolume(beep.Seq(parts...), cfg.gain(SoundGameOver))
}

// GetSoundEffect returns the streamer for soundType; chain only affects SoundVanish
func GetSoundEffect(soundType SoundType, chain int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundRotate:
		return CreateRotateSound(cfg)
	case SoundLand:
		return CreateLandSound(cfg)
	case SoundVanish:
		return CreateVanishSound(cfg, chain)
	case SoundAllClear:
		return CreateAllClearSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
