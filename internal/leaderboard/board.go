package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go-radial-arena/internal/config"
)

// View is what the leaderboard panel draws.
type View struct {
	Available bool
	Mode      config.GameMode
	Top       []Entry
	Rank      int // 0 until the last submission is ranked
	Pending   bool
	LastError string
}

// Board runs backend calls off the frame loop and keeps the latest result.
type Board struct {
	service Service
	timeout time.Duration

	mu       sync.Mutex
	view     View
	inflight int
	latest   uint64 // sequence of the newest top-scores request
	wg       sync.WaitGroup
}

// NewBoard wraps service. A nil service gives a board that is never available.
func NewBoard(service Service) *Board {
	return &Board{
		service: service,
		timeout: RequestTimeout,
		view:    View{Available: service != nil},
	}
}

func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := b.view
	v.Top = append([]Entry(nil), b.view.Top...)
	return v
}

// RefreshTop reloads the top scores of mode in the background.
func (b *Board) RefreshTop(mode config.GameMode) {
	if b.service == nil {
		return
	}
	seq := b.request()
	b.run(func(ctx context.Context) error {
		return b.refresh(ctx, mode, seq)
	})
}

// Submit stores a finished run, ranks it and reloads the mode's top scores.
func (b *Board) Submit(e Entry) {
	if b.service == nil {
		return
	}
	b.mu.Lock()
	b.view.Rank = 0
	b.mu.Unlock()
	seq := b.request()
	b.run(func(ctx context.Context) error {
		if err := b.service.Submit(ctx, e); err != nil {
			return err
		}
		rank, err := b.service.Rank(ctx, e.Score, e.Mode)
		if err != nil {
			return err
		}
		b.mu.Lock()
		b.view.Rank = rank
		b.mu.Unlock()
		return b.refresh(ctx, e.Mode, seq)
	})
}

// Wait blocks until every background call has finished.
func (b *Board) Wait() { b.wg.Wait() }

func (b *Board) request() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest++
	return b.latest
}

// refresh stores the result only if no newer request was made meanwhile.
// A failed load leaves an empty table for the requested mode.
func (b *Board) refresh(ctx context.Context, mode config.GameMode, seq uint64) error {
	top, err := b.service.TopScores(ctx, mode, DefaultLimit)
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq == b.latest {
		b.view.Mode = mode
		b.view.Top = nil
		if err == nil {
			b.view.Top = top
		}
	}
	return err
}

func (b *Board) run(fn func(ctx context.Context) error) {
	b.mu.Lock()
	b.inflight++
	b.view.Pending = true
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()
		err := fn(ctx)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.inflight--
		b.view.Pending = b.inflight > 0
		switch {
		case err == nil:
			b.view.LastError = ""
		case errors.Is(err, ErrDisabled):
			b.view.Available = false
		default:
			slog.Warn("leaderboard call failed", "error", err)
			b.view.LastError = err.Error()
		}
	}()
}
