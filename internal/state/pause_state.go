// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed under a banner.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.hud.Pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.hud.Pause.IsClicked(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.previousState.ctx))
		return
	}
	if unpause {
		// re-entering the game state releases the pause button
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	faces := s.previousState.ctx.Faces
	ui.DrawCentered(screen, "PAUSED", faces.Banner, config.ScreenWidth/2, config.ScreenHeight/2-40, config.TextLightColor)
	ui.DrawCentered(screen, "P / Esc resume    M menu", faces.Body, config.ScreenWidth/2, config.ScreenHeight/2+30, config.TextDimColor)
}

func (s *PauseState) Exit() {}
