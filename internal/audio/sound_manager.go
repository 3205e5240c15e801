// Package audio plays cues and music through the speaker.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-radial-arena/internal/audio/tone"
)

// maxVoices bounds simultaneous cues so rapid fire cannot pile up.
const maxVoices = 24

// SoundManager implements interfaces.AudioSink on top of a beep mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicState  string
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(tone.SampleRate, tone.SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) PlayCue(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s, ok := tone.Cue(name)
	if !ok {
		slog.Debug("unknown sound cue", "cue", name)
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(s)
}

// SetMusic swaps the background loop. Setting the current state is a no-op.
func (sm *SoundManager) SetMusic(state string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || state == sm.musicState {
		return
	}
	s, ok := tone.Music(state)
	if !ok {
		slog.Debug("unknown music state", "state", state)
		return
	}
	sm.musicState = state

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.music = &beep.Ctrl{Streamer: s, Paused: sm.muted}
	sm.mixer.Add(sm.music)
}

// ToggleMute silences cues and pauses the music.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized && sm.music != nil {
		speaker.Lock()
		sm.music.Paused = sm.muted
		speaker.Unlock()
	}
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Cleanup stops everything and releases the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.music = nil
	sm.musicState = ""
	sm.initialized = false
}
