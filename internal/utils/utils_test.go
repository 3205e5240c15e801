package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-radial-arena/internal/defs"
)

func TestPolarRoundTrip(t *testing.T) {
	cases := []struct{ r, a float64 }{
		{1, 0}, {8, math.Pi / 2}, {40, math.Pi}, {3, 5.5}, {60, 0.001},
	}
	for _, c := range cases {
		x, y := PolarToCartesian(c.r, c.a)
		r, a := CartesianToPolar(x, y)
		assert.InDelta(t, c.r, r, 1e-9)
		assert.InDelta(t, c.a, a, 1e-9)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), 1e-12)
	assert.InDelta(t, 1.5*math.Pi, NormalizeAngle(-math.Pi/2), 1e-12)
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+6*math.Pi), 1e-9)
	for _, a := range []float64{-100, -7, -0.1, 0, 3, 6.28, 100} {
		n := NormalizeAngle(a)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.Less(t, n, 2*math.Pi)
	}
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 0.2, AngleDiff(2*math.Pi-0.1, 0.1), 1e-9)
	assert.InDelta(t, -0.2, AngleDiff(0.1, 2*math.Pi-0.1), 1e-9)
	assert.InDelta(t, math.Pi, AngleDiff(0, math.Pi), 1e-9)
	assert.InDelta(t, math.Pi/2, AngleDiff(-math.Pi/4, math.Pi/4), 1e-9)
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.InDelta(t, 0, LerpAngle(2*math.Pi-0.2, 0.2, 0.5), 1e-9)
	assert.Equal(t, 3.0, Clamp(1, 3, 8))
	assert.Equal(t, 8.0, Clamp(9, 3, 8))
	assert.InDelta(t, 180, ToDeg(ToRad(180)), 1e-9)
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestChooseWeighted(t *testing.T) {
	p := NewPRNGService(7)
	assert.Equal(t, defs.EnemyType(""), p.ChooseWeighted(nil))

	only := []defs.SpawnEntry{{Type: defs.EnemyNormal, Weight: 0}, {Type: defs.EnemyTank, Weight: 1}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, defs.EnemyTank, p.ChooseWeighted(only))
	}

	counts := map[defs.EnemyType]int{}
	table := defs.SpawnTable("CLASSIC")
	for i := 0; i < 20000; i++ {
		counts[p.ChooseWeighted(table)]++
	}
	assert.Greater(t, counts[defs.EnemyNormal], counts[defs.EnemyLaser]*4)
}

func TestSampleWeightedWithoutReplacement(t *testing.T) {
	p := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		got := p.SampleWeighted([]float64{1, 1, 0.8, 0.5, 0.6, 0.7}, 3)
		require.Len(t, got, 3)
		seen := map[int]bool{}
		for _, idx := range got {
			assert.False(t, seen[idx])
			seen[idx] = true
		}
	}
	assert.Len(t, p.SampleWeighted([]float64{1, 0, 1}, 5), 2)
}

func TestRanges(t *testing.T) {
	p := NewPRNGService(11)
	for i := 0; i < 200; i++ {
		v := p.Range(15, 35)
		assert.True(t, v >= 15 && v < 35)
		n := p.IntRange(2, 3)
		assert.True(t, n == 2 || n == 3)
		s := p.Sign()
		assert.True(t, s == 1 || s == -1)
	}
}
