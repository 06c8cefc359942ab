// internal/config/config.go
package config

import "image/color"

const (
	AppName      = "go_tower_defense_hud"
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	TurretDefsPath = "assets/data/turrets.yaml"
	LevelPath      = "assets/data/level_1.yaml"

	// Отладочная симуляция
	DebugEnemyReward  = 15
	DebugBaseDamage   = 1
	DebugWaveInterval = 20.0 // секунд между автоматическими волнами

	HUDMargin         = 16
	HUDLineHeight     = 18
	WaveIndicatorY    = 24
	TurretSlotWidth   = 96
	TurretSlotHeight  = 56
	TurretSlotSpacing = 12
	UIBorderWidth     = 2.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{120, 120, 130, 255}
	UIBorderColor   = color.RGBA{240, 240, 240, 255}
	UIColorBlue     = color.RGBA{70, 130, 180, 255}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
	ScoreColor      = color.RGBA{255, 215, 0, 255}

	HealthIndicatorFullColor     = color.RGBA{50, 205, 50, 255}
	HealthIndicatorWarningColor  = color.RGBA{255, 200, 0, 255}
	HealthIndicatorCriticalColor = color.RGBA{220, 60, 60, 255}
	HealthIndicatorEmptyColor    = color.RGBA{40, 40, 50, 255}
	HealthIndicatorDepletedColor = color.RGBA{90, 90, 90, 255}

	TurretSlotEnabledColor  = color.RGBA{70, 100, 120, 230}
	TurretSlotDisabledColor = color.RGBA{45, 45, 55, 230}

	OverlayColor = color.RGBA{0, 0, 0, 160}
)
