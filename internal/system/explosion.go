// internal/system/explosion.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/pkg/geom"
	"go-arcade-shooter/pkg/pool"
)

// ExplosionSystem ages pooled explosion bursts and retires them.
type ExplosionSystem struct {
	pool *pool.Pool[component.Explosion]
}

func NewExplosionSystem(p *pool.Pool[component.Explosion]) *ExplosionSystem {
	return &ExplosionSystem{pool: p}
}

// Burst spawns an explosion at pos; skipped silently when the pool is
// exhausted.
func (s *ExplosionSystem) Burst(pos geom.Vec2, lifetime, maxRadius float64) {
	e := s.pool.Acquire()
	if e == nil {
		return
	}
	e.Spawn(pos, lifetime, maxRadius)
}

func (s *ExplosionSystem) Update(dt float64) {
	for _, e := range s.pool.Active() {
		e.Age += dt
		if e.Age >= e.Lifetime {
			s.pool.Release(e)
		}
	}
}
