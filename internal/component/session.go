// internal/component/session.go
package component

import "go-radial-arena/internal/config"

// Session holds the per-run scoreboard.
type Session struct {
	Mode          config.GameMode
	Score         int
	Lives         int
	MaxLives      int
	ScoreMult     float64 // permanent multiplier from upgrades
	TimeRemaining float64 // TIME_ATTACK countdown; 0 when unused
	Clock         float64 // unscaled session time, seconds
	Kills         int
	GameOver      bool
}

// NewSession creates a session with the mode's starting lives.
func NewSession(rules config.ModeRules) *Session {
	return &Session{
		Mode:          rules.Mode,
		Lives:         rules.StartingLives,
		MaxLives:      rules.MaxLives,
		ScoreMult:     1,
		TimeRemaining: rules.Countdown,
	}
}
