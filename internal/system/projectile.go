// internal/system/projectile.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
	"go-arcade-shooter/pkg/pool"
)

// ProjectileSystem integrates pooled projectiles, expires them by
// simulation-time lifetime and despawns them outside the play area.
type ProjectileSystem struct {
	pool   *pool.Pool[component.Projectile]
	bounds geom.Vec2
	margin float64
}

func NewProjectileSystem(p *pool.Pool[component.Projectile], bounds geom.Vec2, margin float64) *ProjectileSystem {
	return &ProjectileSystem{pool: p, bounds: bounds, margin: margin}
}

// Fire acquires a projectile from the pool. A false result means the pool
// is exhausted and the shot is skipped; callers must not treat it as an
// error.
func (s *ProjectileSystem) Fire(pos, vel geom.Vec2, owner component.Side, damage int, lifetime float64, shape collision.CircleShape) bool {
	p := s.pool.Acquire()
	if p == nil {
		return false
	}
	p.Spawn(pos, vel, owner, damage, lifetime, shape)
	return true
}

func (s *ProjectileSystem) Update(dt float64) {
	for _, p := range s.pool.Active() {
		p.Integrate(dt)
		p.Age += dt
		if p.Expired() || s.outOfBounds(p.Pos) {
			s.pool.Release(p)
		}
	}
}

func (s *ProjectileSystem) outOfBounds(pos geom.Vec2) bool {
	return pos.X() < -s.margin || pos.X() > s.bounds.X()+s.margin ||
		pos.Y() < -s.margin || pos.Y() > s.bounds.Y()+s.margin
}
