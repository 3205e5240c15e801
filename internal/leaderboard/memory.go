package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-radial-arena/internal/config"
)

// MemoryService keeps scores in process. It backs offline play and tests.
type MemoryService struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewMemoryService() *MemoryService {
	return &MemoryService{now: time.Now}
}

func (m *MemoryService) TopScores(ctx context.Context, mode config.GameMode, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, 0, limit)
	for _, e := range m.entries {
		if e.Mode == mode {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryService) Submit(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.PlayerName = SanitizeName(e.PlayerName)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = m.now()
	}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

// Rank counts strictly higher scores, so ties share the better position.
func (m *MemoryService) Rank(ctx context.Context, score int, mode config.GameMode) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rank := 1
	for _, e := range m.entries {
		if e.Mode == mode && e.Score > score {
			rank++
		}
	}
	return rank, nil
}
