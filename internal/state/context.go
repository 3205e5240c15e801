package state

import (
	"go-radial-arena/internal/broadcast"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/interfaces"
	"go-radial-arena/internal/leaderboard"
	"go-radial-arena/internal/ui"
)

// Muter toggles audio; the sound manager implements it.
type Muter interface {
	ToggleMute() bool
}

// Context is shared by every state for the lifetime of the process.
type Context struct {
	Faces      ui.Faces
	Audio      interfaces.AudioSink // nil plays nothing
	Muter      Muter                // nil disables the mute key
	Board      *leaderboard.Board
	Hub        *broadcast.Hub // nil disables spectating
	PlayerName string
	Seed       int64 // 0 picks a fresh seed per run
	Mode       config.GameMode
}
