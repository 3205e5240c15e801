// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-radial-arena/internal/defs"
)

// PRNGService wraps a seeded generator so that a whole session can be
// replayed from its seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A zero seed is replaced with the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns an int in [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Sign returns -1 or 1 with equal probability.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// ChooseWeighted picks an enemy type from a spawn table. Weights need not
// sum to one. An empty table yields "".
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) defs.EnemyType {
	if len(entries) == 0 {
		return ""
	}
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	return entries[s.WeightedIndex(weights)].Type
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive totals fall back to index 0.
func (s *PRNGService) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := s.rng.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		if r < upto {
			return i
		}
	}
	return len(weights) - 1
}

// SampleWeighted draws up to n distinct indices, weighted, without replacement.
func (s *PRNGService) SampleWeighted(weights []float64, n int) []int {
	pool := make([]float64, len(weights))
	copy(pool, weights)
	remaining := 0
	for _, w := range pool {
		if w > 0 {
			remaining++
		}
	}

	var picked []int
	for len(picked) < n && remaining > 0 {
		i := s.WeightedIndex(pool)
		picked = append(picked, i)
		pool[i] = 0
		remaining--
	}
	return picked
}
