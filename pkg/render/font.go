// pkg/render/font.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace возвращает встроенный моноширинный шрифт
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// DrawTextCentered рисует строку с центром по X в точке cx, базовая линия y.
func DrawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
