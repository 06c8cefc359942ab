// internal/ui/hud/player_health_indicator.go
package hud

import (
	"fmt"
	"image/color"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthSegments   = 7
	HealthBarHeight  = 10.0
	HealthBarSpacing = 2.0
	HealthTotalWidth = 120.0
)

// PlayerHealthIndicator отображает здоровье базы в виде сегментированного бара.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует бар и подпись "health/max" над ним.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float32) {
	var percentage float32
	if maxHealth > 0 {
		percentage = health / maxHealth
	}
	if percentage < 0 {
		percentage = 0
	}

	segmentWidth := (HealthTotalWidth - float32(HealthSegments-1)*HealthBarSpacing) / float32(HealthSegments)
	currentX := i.X
	emptySegments, activeColor := healthState(percentage)

	for j := 0; j < HealthSegments; j++ {
		fillColor := activeColor
		if j >= HealthSegments-emptySegments {
			fillColor = config.HealthIndicatorEmptyColor
		}
		vector.DrawFilledRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, fillColor, false)
		vector.StrokeRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, 1, config.UIBorderColor, false)
		currentX += segmentWidth + HealthBarSpacing
	}

	label := fmt.Sprintf("%.0f/%.0f", health, maxHealth)
	render.DrawTextCentered(screen, label, i.face, int(i.X+HealthTotalWidth/2), int(i.Y)-4, config.TextLightColor)
}

// healthState определяет, сколько сегментов пусто (справа) и цвет активных.
func healthState(percentage float32) (int, color.RGBA) {
	activeSegments := 0
	for k := 0; k < HealthSegments; k++ {
		if percentage > float32(k)/float32(HealthSegments) {
			activeSegments++
		}
	}

	var activeColor color.RGBA
	switch {
	case percentage <= 0:
		activeColor = config.HealthIndicatorDepletedColor
	case percentage < 0.20:
		activeColor = config.HealthIndicatorCriticalColor
	case percentage < 0.50:
		activeColor = config.HealthIndicatorWarningColor
	default:
		activeColor = config.HealthIndicatorFullColor
	}

	return HealthSegments - activeSegments, activeColor
}
