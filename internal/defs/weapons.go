// internal/defs/weapons.go
package defs

import "image/color"

// WeaponDefinition holds the static data of a player weapon.
type WeaponDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	FireInterval float64    `json:"fire_interval"` // seconds between shots
	BulletSpeed  float64    `json:"bullet_speed"`
	BulletSize   float64    `json:"bullet_size"`
	Damage       float64    `json:"damage"`
	Piercing     bool       `json:"piercing,omitempty"`
	MaxPierce    int        `json:"max_pierce,omitempty"`
	Explosive    bool       `json:"explosive,omitempty"`
	Homing       bool       `json:"homing,omitempty"`
	Color        color.RGBA `json:"color"`
}

const (
	WeaponStandard  = "STANDARD"
	WeaponPiercing  = "PIERCING"
	WeaponExplosive = "EXPLOSIVE"
	WeaponHoming    = "HOMING"
)

// WeaponOrder is the weapon-select slot order (slot 1 = index 0).
var WeaponOrder = []string{WeaponStandard, WeaponPiercing, WeaponExplosive, WeaponHoming}

// WeaponLibrary is the library of all weapon definitions, keyed by id.
var WeaponLibrary map[string]WeaponDefinition

func init() {
	WeaponLibrary = DefaultWeaponDefinitions()
}

// DefaultWeaponDefinitions returns a fresh copy of the built-in weapons.
func DefaultWeaponDefinitions() map[string]WeaponDefinition {
	return map[string]WeaponDefinition{
		WeaponStandard: {
			ID: WeaponStandard, Name: "Blaster", FireInterval: 0.2, BulletSpeed: 20, BulletSize: 0.5, Damage: 1,
			Color: color.RGBA{255, 255, 0, 255},
		},
		WeaponPiercing: {
			ID: WeaponPiercing, Name: "Lance", FireInterval: 0.35, BulletSpeed: 26, BulletSize: 0.4, Damage: 1,
			Piercing: true, MaxPierce: 3, Color: color.RGBA{0, 255, 255, 255},
		},
		WeaponExplosive: {
			ID: WeaponExplosive, Name: "Mortar", FireInterval: 0.6, BulletSpeed: 16, BulletSize: 0.7, Damage: 2,
			Explosive: true, Color: color.RGBA{255, 120, 0, 255},
		},
		WeaponHoming: {
			ID: WeaponHoming, Name: "Seeker", FireInterval: 0.4, BulletSpeed: 14, BulletSize: 0.5, Damage: 1,
			Homing: true, Color: color.RGBA{120, 255, 120, 255},
		},
	}
}
