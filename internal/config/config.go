// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.1 // upper bound for one simulation step after a stall

	// Arena geometry, world units.
	ArenaPixelsPerUnit = 10.0
	SpawnRadius        = 40.0
	CoreRadius         = 2.0  // entities closer than this to the center are removed
	BulletMaxRadius    = 60.0 // radial bullets are despawned past this radius

	// Player
	PlayerStartRadius      = 8.0
	PlayerMinRadius        = 3.0
	PlayerMaxRadius        = 8.0
	PlayerRotationSpeed    = 3.5 // rad/s
	PlayerRadialSpeed      = 8.0 // units/s
	PlayerHitRadius        = 1.0
	PlayerInvulnDuration   = 2.0
	SpeedBoostMultiplier   = 1.5
	RapidFireMultiplier    = 0.5 // applied to the fire interval
	SpreadShotAngle        = 0.2617993877991494 // π/12
	PlayerBulletRadius     = 0.5
	DefaultMaxPierce       = 3
	ExplosionRadius        = 3.0
	HomingTurnRate         = 4.0 // rad/s
	PowerUpPickupRadius    = 2.0
	MagnetAttractionSpeed  = 12.0
	DeathAnimationDelay    = 1.5
	BannerDuration         = 2.0
	HitFlashDuration       = 0.05
	TeleportFlashDuration  = 0.2
	ShakeOnDamage          = 0.6
	ShakeOnBomb            = 1.0
	ShakeDecay             = 2.0

	// Enemy bullets
	EnemyBulletSpeed    = 15.0
	EnemyBulletLife     = 5.0
	EnemyBulletRadius   = 0.5
	PlayerBulletLife    = 3.0
	HomingEnemyChance   = 0.3
	HomingEnemyTurnRate = 1.5

	// Enemies
	BaseSpawnInterval      = 4.0
	MinSpawnInterval       = 0.5
	SpawnIntervalPerWave   = 0.2
	BaseApproachSpeed      = 1.0
	ApproachSpeedPerWave   = 0.1
	BaseEliteInterval      = 15.0
	MinEliteInterval       = 8.0
	EliteIntervalPerWave   = 0.5
	EliteMinWave           = 2
	EnemyOrbitSpeed        = 0.5
	ShooterStopMin         = 18.0
	ShooterStopMax         = 25.0
	ShooterFireInterval    = 2.5
	ZigzagAmplitude        = 6.0 // world units, divided by radius for angular amplitude
	ZigzagFrequency        = 3.0
	KamikazeTriggerRadius  = 12.0
	KamikazeAcceleration   = 6.0
	KamikazeTurnRate       = 3.0
	KamikazeSplashRadius   = 3.0
	TeleportInterval       = 3.0
	TeleportMinDistance    = 8.0
	TeleportMinRadius      = 15.0
	TeleportMaxRadius      = 35.0
	LaserStopRadius        = 22.0
	LaserInterval          = 4.0
	LaserTelegraphDuration = 1.0
	LaserFireDuration      = 1.0
	LaserBeamWidth         = 2.0
	LaserOvershoot         = 10.0
	EliteShootInterval     = 2.0
	SplitOffspringMin      = 2
	SplitOffspringMax      = 3
	SplitOffspringSpread   = 1.5
	BombKillThreshold      = 5.0 // enemies with less max HP die outright
	BombDamageFraction     = 0.5
	BombBossFraction       = 0.1

	// Obstacles
	ObstacleOrbitSpeed    = 0.2
	ObstacleApproachSpeed = 0.3
	ObstacleMinWave       = 3
	ObstacleBaseCount     = 4
	ObstacleMaxCount      = 8
	ObstacleDebrisMin     = 3
	ObstacleDebrisMax     = 5
	ObstacleScore         = 50

	// Power-ups
	PowerUpSpawnChance   = 0.2
	PowerUpOrbitSpeed    = 0.3
	PowerUpApproachSpeed = 0.5
	TimeSlowFactor       = 0.5

	// Stage boss
	StageBossHitRadius    = 4.0
	StageBossBaseHP       = 30
	StageBossHPPerWave    = 5
	StageBossBaseScore    = 2000
	StageBossScorePerWave = 500
	StageBossRadius       = 30.0
	StageBossOrbitSpeed   = 0.8

	// Waves
	WaveTransitionDuration = 3.0
	BossWaveEvery          = 5
	BaseKillsPerWave       = 10
	KillsPerWave           = 2
	WaveBonusPerLevel      = 500

	// Combo
	ComboTimeout = 2.0

	// Special ability
	BombStartCharges = 2
	BombMaxCharges   = 3
	BombCooldown     = 15.0

	// Upgrades
	UpgradeChoices = 3

	// Particles
	ParticleDrag      = 0.95
	ParticleMinSpeed  = 5.0
	ParticleMaxSpeed  = 20.0
	KillParticles     = 15
	HitParticles      = 4
	BossKillParticles = 80

	// Spectator stream
	SpectatorPublishInterval = 0.1
)

var (
	BackgroundColor = color.RGBA{8, 8, 20, 255}
	GridColor       = color.RGBA{0, 255, 255, 40}
	BoundaryColor   = color.RGBA{0, 255, 255, 90}
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	PlayerBullet    = color.RGBA{255, 255, 0, 255}
	EnemyBullet     = color.RGBA{255, 0, 255, 255}
	ObstacleColor   = color.RGBA{136, 136, 136, 255}
	DebrisColor     = color.RGBA{102, 102, 102, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	TelegraphColor  = color.RGBA{255, 0, 0, 255}
	LaserFireColor  = color.RGBA{255, 0, 255, 255}
	ShieldArcColor  = color.RGBA{80, 160, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 160, 255}
	ComboColor      = color.RGBA{255, 200, 0, 255}
	BossBarColor    = color.RGBA{255, 60, 60, 255}
	BossPhaseColors = []color.RGBA{
		{255, 215, 0, 255}, // phase 1, gold
		{255, 140, 0, 255}, // phase 2, orange
		{255, 0, 0, 255},   // phase 3, red
	}
)
