package defs

import (
	"math"

	"go-radial-arena/internal/config"
)

// WaveDefinition describes the difficulty knobs of one wave.
type WaveDefinition struct {
	Number        int
	Boss          bool
	RequiredKills int
	SpawnInterval float64 // seconds between enemy spawns
	ApproachSpeed float64 // base radial speed, units/s
	EliteInterval float64 // seconds between elite spawns
	Obstacles     int     // asteroid field size spawned at wave start
}

// IsBossWave reports whether wave n is a boss wave.
func IsBossWave(n int) bool {
	return n > 0 && n%config.BossWaveEvery == 0
}

// WaveFor derives the definition of wave n. Difficulty keeps rising with n:
// the spawn interval shrinks down to a floor, approach speed has no ceiling.
func WaveFor(n int) WaveDefinition {
	w := WaveDefinition{
		Number:        n,
		Boss:          IsBossWave(n),
		SpawnInterval: math.Max(config.MinSpawnInterval, config.BaseSpawnInterval-float64(n)*config.SpawnIntervalPerWave),
		ApproachSpeed: config.BaseApproachSpeed + float64(n)*config.ApproachSpeedPerWave,
		EliteInterval: math.Max(config.MinEliteInterval, config.BaseEliteInterval-float64(n)*config.EliteIntervalPerWave),
	}
	if w.Boss {
		w.RequiredKills = 1
		return w
	}
	w.RequiredKills = int(math.Floor(float64(config.BaseKillsPerWave + n*config.KillsPerWave)))
	if n >= config.ObstacleMinWave {
		w.Obstacles = min(config.ObstacleMaxCount, config.ObstacleBaseCount+n/3)
	}
	return w
}
