package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/leaderboard"
	"go-radial-arena/internal/ui"
)

// GameOverState shows the final result over the frozen arena and submits it.
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	last  *GameState
	board *ui.LeaderboardPanel
}

func NewGameOverState(sm *StateMachine, ctx *Context, last *GameState) *GameOverState {
	return &GameOverState{
		sm:    sm,
		ctx:   ctx,
		last:  last,
		board: ui.NewLeaderboardPanel(config.ScreenWidth/2-220, 420, 440, ctx.Faces.Title, ctx.Faces.Body),
	}
}

func (s *GameOverState) Enter() {
	if s.ctx.Board == nil {
		return
	}
	g := s.last.Game()
	s.ctx.Board.Submit(leaderboard.Entry{
		PlayerName: s.ctx.PlayerName,
		Score:      g.ECS.Session.Score,
		Mode:       g.Rules.Mode,
		RunID:      g.RunID,
	})
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.last.Restart()
		s.sm.SetState(s.last)
	case inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	h := s.last.Game().HUD()
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, "GAME OVER", s.ctx.Faces.Banner, cx, 160, config.BossBarColor)
	ui.DrawCentered(screen, fmt.Sprintf("SCORE %d", h.Score), s.ctx.Faces.Title, cx, 250, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("wave %d   best combo %d", h.Wave, h.MaxCombo), s.ctx.Faces.Body, cx, 300, config.TextDimColor)
	ui.DrawCentered(screen, "R restart    M menu", s.ctx.Faces.Body, cx, 350, config.TextDimColor)

	if s.ctx.Board != nil {
		s.board.Draw(screen, s.ctx.Board.View(), s.last.Game().RunID)
	}
}

func (s *GameOverState) Exit() {}
