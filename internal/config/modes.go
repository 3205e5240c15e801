package config

import (
	"fmt"
	"strings"
)

// GameMode selects spawn weighting, lives and timer rules for a session.
type GameMode string

const (
	ModeClassic    GameMode = "CLASSIC"
	ModeTimeAttack GameMode = "TIME_ATTACK"
	ModeSurvival   GameMode = "SURVIVAL"
)

// Modes lists the selectable modes in menu order.
var Modes = []GameMode{ModeClassic, ModeTimeAttack, ModeSurvival}

// ModeRules is the per-mode configuration consumed by the orchestrator.
type ModeRules struct {
	Mode           GameMode
	StartingLives  int
	MaxLives       int
	Countdown      float64 // seconds; 0 disables the timer
	RecoverOnClear bool    // bonus life on wave clear
	SpawnTable     string
	FullPowerUpSet bool // include TIME_SLOW, INVINCIBILITY and MAGNET drops
}

// Rules returns the rules for a mode. Unknown modes fall back to CLASSIC.
func Rules(mode GameMode) ModeRules {
	switch mode {
	case ModeTimeAttack:
		return ModeRules{
			Mode:           ModeTimeAttack,
			StartingLives:  3,
			MaxLives:       5,
			Countdown:      180,
			RecoverOnClear: true,
			SpawnTable:     "TIME_ATTACK",
			FullPowerUpSet: true,
		}
	case ModeSurvival:
		return ModeRules{
			Mode:           ModeSurvival,
			StartingLives:  1,
			MaxLives:       1,
			RecoverOnClear: false,
			SpawnTable:     "CLASSIC",
			FullPowerUpSet: true,
		}
	default:
		return ModeRules{
			Mode:           ModeClassic,
			StartingLives:  3,
			MaxLives:       5,
			RecoverOnClear: true,
			SpawnTable:     "CLASSIC",
		}
	}
}

// ParseMode accepts the mode names case-insensitively, with '-' or '_'.
func ParseMode(s string) (GameMode, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, m := range Modes {
		if string(m) == norm {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}
