// internal/state/result_state.go
package state

import (
	"fmt"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*ResultState)(nil)

// ResultState показывает итог уровня поверх последнего кадра игры
type ResultState struct {
	sm       *StateMachine
	res      *Resources
	previous State
	score    uint32
	won      bool
}

func NewResultState(sm *StateMachine, res *Resources, previous State, score uint32, won bool) *ResultState {
	return &ResultState{sm: sm, res: res, previous: previous, score: score, won: won}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(NewGameState(s.sm, s.res))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.res))
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	face := render.DefaultFace()
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	title := "BASE DESTROYED"
	if s.won {
		title = "LEVEL COMPLETE"
	}
	render.DrawTextCentered(screen, title, face, cx, cy-30, config.TextLightColor)
	render.DrawTextCentered(screen, fmt.Sprintf("Score: %d   Best: %d", s.score, s.res.Store.Progress().BestScore), face, cx, cy, config.ScoreColor)
	render.DrawTextCentered(screen, "SPACE: replay   ESC: menu", face, cx, cy+30, config.TextDimColor)
}

func (s *ResultState) Exit() {}
