package audio

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayRotate()
	sm.PlayLand()
	sm.PlayVanish(3)
	sm.PlayAllClear()
	sm.PlayGameOver()
	sm.Cleanup()

	if sm.Played(SoundVanish) != 0 {
		t.Error("Expected nothing queued without initialization")
	}
}

// TestSoundManagerDisabledSkipsDevice verifies a disabled manager never opens the speaker
func TestSoundManagerDisabledSkipsDevice(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled init to succeed, got %v", err)
	}
	sm.PlayLand()
	if sm.Played(SoundLand) != 0 {
		t.Error("Expected nothing queued while disabled")
	}
	if sm.Enabled() {
		t.Error("Expected manager disabled")
	}
}

// TestSoundManagerInitialization verifies initialization, playback and double init
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	// Speaker initialization fails without an audio device; the game runs silent then
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}

	sm.PlayVanish(2)
	if sm.Played(SoundVanish) != 1 {
		t.Errorf("Expected 1 vanish queued, got %d", sm.Played(SoundVanish))
	}

	sm.SetEnabled(false)
	sm.PlayVanish(2)
	if sm.Played(SoundVanish) != 1 {
		t.Error("Expected no playback after disabling")
	}
}

// TestSoundTypeNames verifies log labels
func TestSoundTypeNames(t *testing.T) {
	if SoundAllClear.String() != "all_clear" || SoundType(99).String() != "unknown" {
		t.Error("Unexpected sound type labels")
	}
	if (&SoundManager{}).Played(SoundType(-1)) != 0 {
		t.Error("Expected zero for out-of-range sound type")
	}
}
