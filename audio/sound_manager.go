// @lixen: #dev{feature[audio(audio,cmd)]}
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puyo/constants"
)

// SoundManager manages all game audio
// Every Play call is a no-op until Initialize succeeds or while disabled
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	logger      zerolog.Logger
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info().Int("rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer leaves it silent
	sm.initialized = false
}

// SetEnabled toggles playback without closing the speaker
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.Enabled = enabled
}

// Enabled reports whether playback is on
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.cfg.Enabled
}

// Played returns how many times st was queued, for diagnostics
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// play queues one effect on the mixer
func (sm *SoundManager) play(st SoundType, chain int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.cfg.Enabled {
		return
	}

	s := GetSoundEffect(st, chain, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st]++
}

// PlayRotate plays the rotation click
func (sm *SoundManager) PlayRotate() { sm.play(SoundRotate, 0) }

// PlayLand plays the landing thud
func (sm *SoundManager) PlayLand() { sm.play(SoundLand, 0) }

// PlayVanish plays the vanish chime for the given chain count
func (sm *SoundManager) PlayVanish(chain int) { sm.play(SoundVanish, chain) }

// PlayAllClear plays the all-clear bell
func (sm *SoundManager) PlayAllClear() { sm.play(SoundAllClear, 0) }

// PlayGameOver plays the game over phrase
func (sm *SoundManager) PlayGameOver() { sm.play(SoundGameOver, 0) }
