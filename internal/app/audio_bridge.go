// internal/app/audio_bridge.go
package app

import (
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/interfaces"
)

// AudioBridge forwards sound and music events to an AudioSink.
// A nil sink makes it a no-op.
type AudioBridge struct {
	sink interfaces.AudioSink
}

func NewAudioBridge(sink interfaces.AudioSink) *AudioBridge {
	return &AudioBridge{sink: sink}
}

func (b *AudioBridge) OnEvent(e event.Event) {
	if b.sink == nil {
		return
	}
	switch e.Type {
	case event.SoundCue:
		if cue, ok := e.Data.(event.Cue); ok {
			b.sink.PlayCue(string(cue))
		}
	case event.MusicChanged:
		if m, ok := e.Data.(event.Music); ok {
			b.sink.SetMusic(string(m))
		}
	}
}
