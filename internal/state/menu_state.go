// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-radial-arena/internal/config"
	"go-radial-arena/internal/event"
	"go-radial-arena/internal/ui"
)

var modeLabels = map[config.GameMode]string{
	config.ModeClassic:    "CLASSIC",
	config.ModeTimeAttack: "TIME ATTACK",
	config.ModeSurvival:   "SURVIVAL",
}

// MenuState picks a mode and shows that mode's top scores.
type MenuState struct {
	sm       *StateMachine
	ctx      *Context
	buttons  []*ui.MenuButton
	selected int
	board    *ui.LeaderboardPanel
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{sm: sm, ctx: ctx}
	const w, h = 260, 50
	x := config.ScreenWidth/2 - w/2
	for i, mode := range config.Modes {
		y := 300 + i*(h+16)
		m.buttons = append(m.buttons, ui.NewMenuButton(image.Rect(x, y, x+w, y+h), modeLabels[mode], ctx.Faces.Title))
		if mode == ctx.Mode {
			m.selected = i
		}
	}
	m.board = ui.NewLeaderboardPanel(config.ScreenWidth/2-220, 520, 440, ctx.Faces.Title, ctx.Faces.Body)
	return m
}

func (m *MenuState) Enter() {
	if m.ctx.Audio != nil {
		m.ctx.Audio.SetMusic(string(event.MusicMenu))
	}
	m.selectMode(m.selected)
}

func (m *MenuState) selectMode(i int) {
	m.selected = (i + len(m.buttons)) % len(m.buttons)
	for j, b := range m.buttons {
		b.Selected = j == m.selected
	}
	m.ctx.Mode = config.Modes[m.selected]
	if m.ctx.Board != nil {
		m.ctx.Board.RefreshTop(m.ctx.Mode)
	}
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.selectMode(m.selected - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.selectMode(m.selected + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.start()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.IsClicked(x, y) {
				m.selectMode(i)
				m.start()
				return
			}
		}
	}
}

func (m *MenuState) start() {
	m.sm.SetState(NewGameState(m.sm, m.ctx, m.ctx.Mode))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "RADIAL ARENA", m.ctx.Faces.Banner, config.ScreenWidth/2, 140, config.TextLightColor)
	ui.DrawCentered(screen, "arrows move and rotate   space fire   B bomb   1-4 weapons", m.ctx.Faces.Body, config.ScreenWidth/2, 220, config.TextDimColor)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
	if m.ctx.Board != nil {
		m.board.Draw(screen, m.ctx.Board.View(), "")
	}
}

func (m *MenuState) Exit() {}
