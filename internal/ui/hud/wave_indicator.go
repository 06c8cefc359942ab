// internal/ui/hud/wave_indicator.go
package hud

import (
	"strings"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y       float32
	TotalWaves int // 0: без знаменателя
	face       font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, totalWaves int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, TotalWaves: totalWaves, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveLabel пуст, пока волн не было.
func (i *WaveIndicator) waveLabel(waveNumber int) string {
	roman := toRoman(waveNumber)
	if roman == "" {
		return ""
	}
	if i.TotalWaves > 0 {
		return roman + " / " + toRoman(i.TotalWaves)
	}
	return roman
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	label := i.waveLabel(waveNumber)
	if label == "" {
		return
	}

	textColor := config.UIColorBlue
	if waveNumber%10 == 0 {
		textColor = config.BossWaveColor // Красный для босс-волн
	}
	render.DrawTextCentered(screen, label, i.face, int(i.X), int(i.Y), textColor)
}
