package state

import (
	"go-arcade-shooter/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawCentered выводит строку, центрированную по горизонтали.
func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
