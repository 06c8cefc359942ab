// internal/ui/hud/turret_panel.go
package hud

import (
	"image"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/internal/ui"
	"go-tower-defense-hud/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TurretPanel рисует нижнюю панель со слотами турелей.
type TurretPanel struct {
	Y    int
	face font.Face
}

func NewTurretPanel(y int, face font.Face) *TurretPanel {
	return &TurretPanel{Y: y, face: face}
}

// SlotRect возвращает прямоугольник i-го из n слотов; панель центрирована по экрану.
func (p *TurretPanel) SlotRect(i, n int) image.Rectangle {
	total := n*config.TurretSlotWidth + (n-1)*config.TurretSlotSpacing
	x := (config.ScreenWidth-total)/2 + i*(config.TurretSlotWidth+config.TurretSlotSpacing)
	return image.Rect(x, p.Y, x+config.TurretSlotWidth, p.Y+config.TurretSlotHeight)
}

// SlotAt возвращает индекс слота под точкой или -1.
func (p *TurretPanel) SlotAt(x, y, n int) int {
	pt := image.Pt(x, y)
	for i := 0; i < n; i++ {
		if pt.In(p.SlotRect(i, n)) {
			return i
		}
	}
	return -1
}

// Draw рисует слоты; недоступные затемнены.
func (p *TurretPanel) Draw(screen *ebiten.Image, slots []*ui.TurretUIEntityView) {
	for i, slot := range slots {
		r := p.SlotRect(i, len(slots))
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		bg, border, fg := config.TurretSlotEnabledColor, config.UIBorderColor, config.TextLightColor
		if !slot.IsEnabled {
			bg = config.TurretSlotDisabledColor
			border = render.DarkenColor(config.UIBorderColor)
			fg = config.TextDimColor
		}

		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, config.UIBorderWidth, border, false)
		render.DrawTextCentered(screen, slot.Label, p.face, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2+4, fg)
	}
}
