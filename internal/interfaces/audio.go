package interfaces

// AudioSink plays named cues and music states. Calls never block.
type AudioSink interface {
	PlayCue(name string)
	SetMusic(state string)
}
