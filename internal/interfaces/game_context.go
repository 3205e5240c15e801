// internal/interfaces/game_context.go
package interfaces

// CombatContext is what the collision pass calls back into on the orchestrator.
type CombatContext interface {
	// DamagePlayer is the single entry point for player damage.
	// It reports whether a life was actually lost.
	DamagePlayer() bool
	OnBossDefeated()
}

// UpgradeTarget receives the effect of a chosen upgrade.
type UpgradeTarget interface {
	BoostFireRate(step float64)
	BoostMoveSpeed(step float64)
	BoostBulletSize(step float64)
	AddMaxLife()
	AddBombCapacity()
	BoostScoreMultiplier(step float64)
}
