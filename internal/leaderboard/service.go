// Package leaderboard stores and ranks finished runs.
package leaderboard

import (
	"context"
	"errors"
	"time"

	"go-radial-arena/internal/config"
)

// ErrDisabled is returned when no backend is configured.
var ErrDisabled = errors.New("leaderboard disabled")

// Entry is one submitted run.
type Entry struct {
	PlayerName string          `json:"player_name"`
	Score      int             `json:"score"`
	Mode       config.GameMode `json:"mode"`
	RunID      string          `json:"run_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
}

// Service is a score backend. Rank is the 1-based position a score would take
// within its mode.
type Service interface {
	TopScores(ctx context.Context, mode config.GameMode, limit int) ([]Entry, error)
	Submit(ctx context.Context, e Entry) error
	Rank(ctx context.Context, score int, mode config.GameMode) (int, error)
}

const (
	DefaultLimit   = 10
	MaxNameLength  = 16
	AnonymousName  = "PILOT"
	RequestTimeout = 5 * time.Second
)

// SanitizeName trims a player name and bounds its length.
func SanitizeName(name string) string {
	r := []rune(name)
	start, end := 0, len(r)
	for start < end && isSpace(r[start]) {
		start++
	}
	for end > start && isSpace(r[end-1]) {
		end--
	}
	r = r[start:end]
	if len(r) == 0 {
		return AnonymousName
	}
	if len(r) > MaxNameLength {
		r = r[:MaxNameLength]
	}
	return string(r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
