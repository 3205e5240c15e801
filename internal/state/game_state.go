// internal/state/game_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-radial-arena/internal/app"
	"go-radial-arena/internal/config"
	"go-radial-arena/internal/ui"
	"go-radial-arena/pkg/render"
)

// GameState runs a session and draws it.
type GameState struct {
	sm        *StateMachine
	ctx       *Context
	game      *app.Game
	renderer  *render.ArenaRenderer
	hud       *ui.HUD
	lastDelta float64
	publishT  float64
}

func NewGameState(sm *StateMachine, ctx *Context, mode config.GameMode) *GameState {
	g := app.NewGame(app.Options{Mode: mode, Seed: ctx.Seed, Audio: ctx.Audio})
	renderer := render.NewArenaRenderer(config.ArenaPixelsPerUnit, config.ScreenWidth, config.ScreenHeight, render.ArenaColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		BoundaryColor:   config.BoundaryColor,
		TrackColor:      render.DarkenColor(config.PlayerColor),
		StrokeWidth:     1,
	})
	return &GameState{
		sm:       sm,
		ctx:      ctx,
		game:     g,
		renderer: renderer,
		hud:      ui.NewHUD(ctx.Faces),
	}
}

func (g *GameState) Enter() {
	g.hud.Pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.lastDelta = deltaTime
	choosing := len(g.game.PendingUpgrades()) > 0
	in := readInput(choosing)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case g.hud.Pause.IsClicked(x, y):
			in.Pause = true
		case choosing:
			if card := g.hud.Upgrade.CardAt(x, y); card > 0 {
				in.UpgradeChoice = card
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.ctx.Muter != nil {
		slog.Info("audio toggled", "muted", g.ctx.Muter.ToggleMute())
	}
	if in.Pause && !g.game.IsDying() && !g.game.IsGameOver() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, in)
	g.hud.Update(deltaTime, g.game.HUD())
	g.publish(deltaTime)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
	}
}

// publish sends a spectator frame at a fixed rate while anyone watches.
func (g *GameState) publish(deltaTime float64) {
	if g.ctx.Hub == nil {
		return
	}
	g.publishT += deltaTime
	if g.publishT < config.SpectatorPublishInterval && !g.game.IsGameOver() {
		return
	}
	g.publishT = 0
	if g.ctx.Hub.ClientCount() == 0 {
		return
	}
	if err := g.ctx.Hub.Publish(g.game.SpectatorFrame()); err != nil {
		slog.Debug("spectator frame not published", "error", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Frame(), g.lastDelta)
	g.hud.Draw(screen, g.game.HUD(), g.game.Upgrades.Levels())
}

func (g *GameState) Exit() {}

// Restart starts a fresh run of the same mode on this screen.
func (g *GameState) Restart() {
	g.game.Restart()
	g.hud = ui.NewHUD(g.ctx.Faces)
	g.lastDelta = 0
	g.publishT = 0
}

// Game exposes the running session to the pause and game over screens.
func (g *GameState) Game() *app.Game { return g.game }
