// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"go-arcade-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator отображает текущий счёт в углу экрана.
type ScoreIndicator struct {
	X, Y int
	Face font.Face
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, Face: face}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, total int) {
	text.Draw(screen, fmt.Sprintf("%08d", total), i.Face, i.X, i.Y, config.TextLightColor)
}
