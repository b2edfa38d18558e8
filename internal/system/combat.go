// internal/system/combat.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/pkg/geom"
)

// FireFunc spawns one enemy shot aimed along the given velocity.
type FireFunc func(pos, vel geom.Vec2)

// CombatSystem drives enemy fire timers. Enemies with a zero interval
// never shoot.
type CombatSystem struct {
	fire      FireFunc
	shotSpeed float64
}

func NewCombatSystem(shotSpeed float64, fire FireFunc) *CombatSystem {
	return &CombatSystem{fire: fire, shotSpeed: shotSpeed}
}

func (s *CombatSystem) Update(dt float64, enemies []*component.Enemy, target geom.Vec2) {
	for _, e := range enemies {
		if e.FireInterval <= 0 {
			continue
		}
		e.FireTimer += dt
		if e.FireTimer < e.FireInterval {
			continue
		}
		e.FireTimer = 0
		dir := geom.Normalize(target.Sub(e.Pos))
		if dir.X() == 0 && dir.Y() == 0 {
			dir = geom.V(0, 1) // target on top of the muzzle, shoot down
		}
		s.fire(e.Pos, dir.Mul(s.shotSpeed))
	}
}
