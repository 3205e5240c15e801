// internal/system/combo.go
package system

import "go-radial-arena/internal/config"

// ComboManager tracks the consecutive-hit streak and its decay.
type ComboManager struct {
	combo    int
	maxCombo int
	timer    float64 // seconds since the last hit
	timeout  float64
}

func NewComboManager() *ComboManager {
	return &ComboManager{timeout: config.ComboTimeout}
}

// OnHit extends the streak and restarts the decay timer.
func (c *ComboManager) OnHit() {
	c.combo++
	if c.combo > c.maxCombo {
		c.maxCombo = c.combo
	}
	c.timer = 0
}

// Update drops the streak once no hit arrived for the full timeout.
func (c *ComboManager) Update(deltaTime float64) {
	if c.combo == 0 {
		return
	}
	c.timer += deltaTime
	if c.timer >= c.timeout {
		c.combo = 0
		c.timer = 0
	}
}

// Multiplier is a step function of the current streak.
func (c *ComboManager) Multiplier() float64 {
	return ComboMultiplier(c.combo)
}

// ComboMultiplier maps a streak length to its score multiplier.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo >= 20:
		return 5
	case combo >= 10:
		return 3
	case combo >= 5:
		return 2
	case combo >= 3:
		return 1.5
	default:
		return 1
	}
}

// Break ends the current streak, keeping the best streak.
func (c *ComboManager) Break() {
	c.combo = 0
	c.timer = 0
}

// Reset clears everything, including the best streak.
func (c *ComboManager) Reset() {
	c.Break()
	c.maxCombo = 0
}

func (c *ComboManager) Combo() int    { return c.combo }
func (c *ComboManager) MaxCombo() int { return c.maxCombo }

// TimeRemaining is how long the streak survives without another hit.
func (c *ComboManager) TimeRemaining() float64 {
	if c.combo == 0 {
		return 0
	}
	return c.timeout - c.timer
}

// Progress is the fraction of decay time left, 1 right after a hit.
func (c *ComboManager) Progress() float64 {
	if c.combo == 0 {
		return 0
	}
	return c.TimeRemaining() / c.timeout
}
