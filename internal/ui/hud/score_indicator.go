// internal/ui/hud/score_indicator.go
package hud

import (
	"strconv"

	"go-tower-defense-hud/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator показывает текущий счёт.
type ScoreIndicator struct {
	X, Y int
	face font.Face
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, face: face}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score uint32) {
	text.Draw(screen, "Score: "+strconv.FormatUint(uint64(score), 10), i.face, i.X, i.Y, config.ScoreColor)
}
