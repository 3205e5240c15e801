// internal/app/upgrades.go
package app

// Game implements interfaces.UpgradeTarget. Every effect only ever raises a stat.

func (g *Game) BoostFireRate(step float64)  { g.ECS.Player.FireRateMult += step }
func (g *Game) BoostMoveSpeed(step float64) { g.ECS.Player.MoveSpeedMult += step }

func (g *Game) BoostBulletSize(step float64) {
	g.ECS.Player.BulletSizeMult += step
	g.ECS.Player.DamageMult += step
}

func (g *Game) AddMaxLife() {
	s := g.ECS.Session
	s.MaxLives++
	s.Lives = min(s.Lives+1, s.MaxLives)
}

func (g *Game) AddBombCapacity() {
	g.Ability.RaiseCapacity()
	g.Ability.AddCharge()
}

func (g *Game) BoostScoreMultiplier(step float64) { g.ECS.Session.ScoreMult += step }
