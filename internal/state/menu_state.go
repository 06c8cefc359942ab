// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState показывает стартовый экран
type MenuState struct {
	sm  *StateMachine
	res *Resources
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.res))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := render.DefaultFace()
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2

	render.DrawTextCentered(screen, m.res.Level.Name, face, cx, cy-40, config.TextLightColor)
	p := m.res.Store.Progress()
	if p.LevelsFinished > 0 {
		line := fmt.Sprintf("Last score: %d   Best score: %d", p.LastScore, p.BestScore)
		render.DrawTextCentered(screen, line, face, cx, cy, config.ScoreColor)
	}
	render.DrawTextCentered(screen, "Press SPACE to start", face, cx, cy+40, config.TextDimColor)
}

func (m *MenuState) Exit() {}
