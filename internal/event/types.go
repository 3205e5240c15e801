// internal/event/types.go
package event

import (
	"go-radial-arena/internal/defs"
	"go-radial-arena/internal/types"
)

const (
	SoundCue          EventType = "SoundCue"          // Data: Cue
	MusicChanged      EventType = "MusicChanged"      // Data: Music
	EnemyKilled       EventType = "EnemyKilled"       // Data: EnemyKilledData
	ObstacleDestroyed EventType = "ObstacleDestroyed"
	PlayerDamaged     EventType = "PlayerDamaged"     // Data: lives left
	ShieldAbsorbed    EventType = "ShieldAbsorbed"
	PlayerDied        EventType = "PlayerDied"
	GameOver          EventType = "GameOver"          // Data: final score
	WaveStarted       EventType = "WaveStarted"       // Data: wave number
	WaveCompleted     EventType = "WaveCompleted"     // Data: wave number
	BossSpawned       EventType = "BossSpawned"
	BossPhaseChanged  EventType = "BossPhaseChanged"  // Data: phase
	BossDefeated      EventType = "BossDefeated"
	PowerUpCollected  EventType = "PowerUpCollected"  // Data: defs.PowerUpType
	PowerUpExpired    EventType = "PowerUpExpired"    // Data: defs.PowerUpType
	BombActivated     EventType = "BombActivated"
	UpgradeOffered    EventType = "UpgradeOffered"    // Data: []defs.UpgradeID
	UpgradeApplied    EventType = "UpgradeApplied"    // Data: defs.UpgradeID
	LaserFired        EventType = "LaserFired"
)

// Cue is a fire-and-forget sound effect name.
type Cue string

const (
	CueShoot        Cue = "shoot"
	CueExplosion    Cue = "explosion"
	CueBigExplosion Cue = "bigExplosion"
	CuePowerUp      Cue = "powerup"
	CueBomb         Cue = "bomb"
	CueDamage       Cue = "damage"
	CueBossWarning  Cue = "bossWarning"
	CueEnemyShoot   Cue = "enemyShoot"
)

// Music is a background music state.
type Music string

const (
	MusicMenu Music = "menu"
	MusicGame Music = "game"
	MusicBoss Music = "boss"
)

// EnemyKilledData describes a kill for listeners.
type EnemyKilledData struct {
	ID    types.EntityID
	Type  defs.EnemyType
	X, Y  float64
	Score int
}
