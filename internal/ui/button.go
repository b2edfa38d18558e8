// internal/ui/button.go
package ui

import (
	"go-arcade-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button — прямоугольная кнопка с подсветкой при наведении.
type Button struct {
	X, Y, W, H float64
	Label      string
	Face       font.Face
}

func NewButton(x, y, w, h float64, label string, face font.Face) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Face: face}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(px, py int) bool {
	x, y := float64(px), float64(py)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	clr := config.ButtonColor
	if b.Contains(cx, cy) {
		clr = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, config.UIBorderColor, true)

	bounds := text.BoundString(b.Face, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Label, b.Face, tx, ty, config.TextLightColor)
}
