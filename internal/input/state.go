// internal/input/state.go
package input

// State is the input snapshot the simulation reads once per tick.
// Held signals are levels; Bomb, Pause, WeaponSelect and UpgradeChoice are edges.
type State struct {
	RotateLeft  bool
	RotateRight bool
	MoveOut     bool
	MoveIn      bool
	Fire        bool

	Bomb  bool
	Pause bool

	WeaponSelect  int // 1..4, 0 when no key was pressed this tick
	UpgradeChoice int // 1..3, 0 when no key was pressed this tick
}
