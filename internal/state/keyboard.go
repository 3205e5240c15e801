package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-radial-arena/internal/input"
)

var numberKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// readInput samples the keyboard into one simulation input.
// The number row selects an upgrade while cards are on offer and a weapon otherwise.
func readInput(choosingUpgrade bool) input.State {
	in := input.State{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		MoveOut:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		MoveIn:      ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
		Bomb:        inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for i, k := range numberKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if choosingUpgrade {
			if i < 3 {
				in.UpgradeChoice = i + 1
			}
		} else {
			in.WeaponSelect = i + 1
		}
		break
	}
	return in
}
