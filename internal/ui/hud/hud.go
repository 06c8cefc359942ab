// internal/ui/hud/hud.go
package hud

import (
	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/internal/ui"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD рисует GameUIView. Собственного состояния игры не хранит.
type HUD struct {
	Health *PlayerHealthIndicator
	Wave   *WaveIndicator
	Score  *ScoreIndicator
	Panel  *TurretPanel
	face   font.Face
}

// NewHUD раскладывает индикаторы по экрану.
func NewHUD(totalWaves int) *HUD {
	face := render.DefaultFace()
	return &HUD{
		Health: NewPlayerHealthIndicator(config.HUDMargin, config.HUDMargin+config.HUDLineHeight, face),
		Wave:   NewWaveIndicator(config.ScreenWidth/2, config.WaveIndicatorY, totalWaves, face),
		Score:  NewScoreIndicator(config.ScreenWidth-160, config.HUDMargin+config.HUDLineHeight, face),
		Panel:  NewTurretPanel(config.ScreenHeight-config.TurretSlotHeight-config.HUDMargin, face),
		face:   face,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, view *ui.GameUIView) {
	h.Health.Draw(screen, view.HealthValue, view.MaxHealth)
	h.Wave.Draw(screen, view.WavesProgress)
	h.Score.Draw(screen, view.ScoreValue)
	h.Panel.Draw(screen, view.TurretUIEntityViewArray)
}

// Face возвращает шрифт HUD
func (h *HUD) Face() font.Face {
	return h.face
}
