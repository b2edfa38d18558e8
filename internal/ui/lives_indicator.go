package ui

import (
	"go-arcade-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator рисует ряд сегментов — по одному на оставшуюся жизнь.
type LivesIndicator struct {
	X, Y float64
}

func NewLivesIndicator(x, y float64) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	size := config.LifeIconSize
	for n := 0; n < lives; n++ {
		x := i.X + float64(n)*(size+config.LifeIconSpacing)
		vector.DrawFilledRect(screen, float32(x), float32(i.Y), float32(size), float32(size), config.LifeIconColor, true)
	}
}
