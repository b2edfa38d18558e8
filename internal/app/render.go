// internal/app/render.go
package app

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/pkg/geom"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Render draws the world interpolated by alpha: entities appear at
// PrevPos + alpha*(Pos-PrevPos), one step behind the simulation but smooth
// at any display refresh rate.
func (g *Game) Render(screen *ebiten.Image, alpha float64) {
	g.drawEnemies(screen, alpha)
	g.drawProjectiles(screen, alpha)
	g.drawShip(screen, alpha)
	g.drawExplosions(screen)
}

func (g *Game) drawShip(screen *ebiten.Image, alpha float64) {
	if g.GameOver {
		return
	}
	ship := g.Ship
	// Мигание во время неуязвимости.
	if ship.Invincible() && int(g.gameTime*10)%2 == 0 {
		return
	}
	pos := ship.RenderPos(alpha)
	r := config.PlayerRadius

	tip := pos.Add(geom.FromAngle(ship.Rot).Mul(r * 1.5))
	left := pos.Add(geom.FromAngle(ship.Rot + 2.5).Mul(r))
	right := pos.Add(geom.FromAngle(ship.Rot - 2.5).Mul(r))

	clr := config.PlayerColor
	vector.StrokeLine(screen, float32(tip.X()), float32(tip.Y()), float32(left.X()), float32(left.Y()), 2, clr, true)
	vector.StrokeLine(screen, float32(left.X()), float32(left.Y()), float32(right.X()), float32(right.Y()), 2, clr, true)
	vector.StrokeLine(screen, float32(right.X()), float32(right.Y()), float32(tip.X()), float32(tip.Y()), 2, clr, true)
	vector.DrawFilledCircle(screen, float32(pos.X()), float32(pos.Y()), float32(r*0.4), clr, true)
}

func (g *Game) drawEnemies(screen *ebiten.Image, alpha float64) {
	for _, e := range g.Enemies.Active() {
		pos := e.RenderPos(alpha)
		if sprite, ok := g.Sprites.Get(e.DefID); ok {
			op := &ebiten.DrawImageOptions{}
			b := sprite.Bounds()
			op.GeoM.Translate(pos.X()-float64(b.Dx())/2, pos.Y()-float64(b.Dy())/2)
			screen.DrawImage(sprite, op)
		} else {
			clr := enemyColor(e.DefID)
			vector.DrawFilledRect(screen,
				float32(pos.X()-e.Shape.W/2), float32(pos.Y()-e.Shape.H/2),
				float32(e.Shape.W), float32(e.Shape.H), clr, true)
		}
		g.drawHealthBar(screen, e, pos.X(), pos.Y())
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, e *component.Enemy, x, y float64) {
	if e.Health >= e.MaxHealth || e.MaxHealth <= 0 {
		return
	}
	w := e.Shape.W
	frac := float64(e.Health) / float64(e.MaxHealth)
	barY := y - e.Shape.H/2 - 6
	vector.DrawFilledRect(screen, float32(x-w/2), float32(barY), float32(w), 3, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, float32(x-w/2), float32(barY), float32(w*frac), 3, color.RGBA{90, 220, 90, 255}, false)
}

func (g *Game) drawProjectiles(screen *ebiten.Image, alpha float64) {
	for _, p := range g.Projectiles.Active() {
		pos := p.RenderPos(alpha)
		clr := config.ProjectileColor
		if p.Owner == component.SideEnemy {
			clr = config.EnemyShotColor
		}
		vector.DrawFilledCircle(screen, float32(pos.X()), float32(pos.Y()), float32(p.Shape.R), clr, true)
	}
}

func (g *Game) drawExplosions(screen *ebiten.Image) {
	for _, e := range g.Explosions.Active() {
		p := e.Progress()
		radius := e.MaxRadius * p
		clr := config.ExplosionColor
		clr.A = uint8(255 * (1 - p))
		vector.StrokeCircle(screen, float32(e.Pos.X()), float32(e.Pos.Y()), float32(radius), 3, clr, true)
	}
}

// enemyColor picks the fallback palette color of an enemy definition.
func enemyColor(defID string) color.RGBA {
	if def, ok := defs.EnemyLibrary[defID]; ok && len(config.EnemyColors) > 0 {
		return config.EnemyColors[def.Visuals.ColorIndex%len(config.EnemyColors)]
	}
	return color.RGBA{200, 200, 200, 255}
}
