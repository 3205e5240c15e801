// internal/defs/powerups.go
package defs

import (
	"image/color"
	"math"
)

// PowerUpType names a collectible buff.
type PowerUpType string

const (
	PowerUpRapidFire     PowerUpType = "RAPID_FIRE"
	PowerUpSpreadShot    PowerUpType = "SPREAD_SHOT"
	PowerUpShield        PowerUpType = "SHIELD"
	PowerUpSpeedBoost    PowerUpType = "SPEED_BOOST"
	PowerUpMultiplier    PowerUpType = "MULTIPLIER"
	PowerUpTimeSlow      PowerUpType = "TIME_SLOW"
	PowerUpInvincibility PowerUpType = "INVINCIBILITY"
	PowerUpMagnet        PowerUpType = "MAGNET"
)

// PowerUpDefinition holds display data and the duration of a buff.
// Duration is +Inf for one-shot buffs consumed on use.
type PowerUpDefinition struct {
	Type     PowerUpType
	Name     string
	Icon     string
	Duration float64
	Color    color.RGBA
}

// BasicPowerUps is the five-buff set of the classic game.
var BasicPowerUps = []PowerUpType{
	PowerUpRapidFire, PowerUpSpreadShot, PowerUpShield, PowerUpSpeedBoost, PowerUpMultiplier,
}

// FullPowerUps extends the basic set with the mode-variant buffs.
var FullPowerUps = append(append([]PowerUpType{}, BasicPowerUps...),
	PowerUpTimeSlow, PowerUpInvincibility, PowerUpMagnet)

// PowerUpLibrary maps each buff to its definition.
var PowerUpLibrary = map[PowerUpType]PowerUpDefinition{
	PowerUpRapidFire:     {Type: PowerUpRapidFire, Name: "Rapid Fire", Icon: "RF", Duration: 10, Color: color.RGBA{255, 255, 0, 255}},
	PowerUpSpreadShot:    {Type: PowerUpSpreadShot, Name: "Spread Shot", Icon: "SS", Duration: 10, Color: color.RGBA{0, 255, 255, 255}},
	PowerUpShield:        {Type: PowerUpShield, Name: "Shield", Icon: "SH", Duration: math.Inf(1), Color: color.RGBA{0, 255, 0, 255}},
	PowerUpSpeedBoost:    {Type: PowerUpSpeedBoost, Name: "Speed Boost", Icon: "SB", Duration: 8, Color: color.RGBA{255, 0, 255, 255}},
	PowerUpMultiplier:    {Type: PowerUpMultiplier, Name: "2x Score", Icon: "x2", Duration: 15, Color: color.RGBA{255, 165, 0, 255}},
	PowerUpTimeSlow:      {Type: PowerUpTimeSlow, Name: "Time Slow", Icon: "TS", Duration: 6, Color: color.RGBA{120, 120, 255, 255}},
	PowerUpInvincibility: {Type: PowerUpInvincibility, Name: "Invincible", Icon: "IN", Duration: 5, Color: color.RGBA{255, 255, 255, 255}},
	PowerUpMagnet:        {Type: PowerUpMagnet, Name: "Magnet", Icon: "MG", Duration: 10, Color: color.RGBA{200, 200, 200, 255}},
}
