// internal/system/ability.go
package system

import "go-radial-arena/internal/config"

// SpecialAbility is the charge based bomb. It only gates activation;
// the effect itself belongs to the orchestrator.
type SpecialAbility struct {
	charges       int
	maxCharges    int
	cooldown      float64
	cooldownTimer float64 // seconds left
}

func NewSpecialAbility() *SpecialAbility {
	a := &SpecialAbility{}
	a.Reset()
	return a
}

func (a *SpecialAbility) CanActivate() bool {
	return a.charges > 0 && a.cooldownTimer <= 0
}

// Activate consumes a charge and starts the cooldown. It returns false,
// changing nothing, when no charge is left or the cooldown is running.
func (a *SpecialAbility) Activate() bool {
	if !a.CanActivate() {
		return false
	}
	a.charges--
	a.cooldownTimer = a.cooldown
	return true
}

// AddCharge returns false when already at capacity.
func (a *SpecialAbility) AddCharge() bool {
	if a.charges >= a.maxCharges {
		return false
	}
	a.charges++
	return true
}

// RaiseCapacity increases the charge cap by one.
func (a *SpecialAbility) RaiseCapacity() {
	a.maxCharges++
}

func (a *SpecialAbility) Update(deltaTime float64) {
	if a.cooldownTimer > 0 {
		a.cooldownTimer -= deltaTime
		if a.cooldownTimer < 0 {
			a.cooldownTimer = 0
		}
	}
}

func (a *SpecialAbility) Charges() int               { return a.charges }
func (a *SpecialAbility) MaxCharges() int            { return a.maxCharges }
func (a *SpecialAbility) OnCooldown() bool           { return a.cooldownTimer > 0 }
func (a *SpecialAbility) CooldownRemaining() float64 { return a.cooldownTimer }

// CooldownProgress goes from 0 right after activation to 1 when ready.
func (a *SpecialAbility) CooldownProgress() float64 {
	if a.cooldownTimer <= 0 {
		return 1
	}
	return 1 - a.cooldownTimer/a.cooldown
}

func (a *SpecialAbility) Reset() {
	a.charges = config.BombStartCharges
	a.maxCharges = config.BombMaxCharges
	a.cooldown = config.BombCooldown
	a.cooldownTimer = 0
}
