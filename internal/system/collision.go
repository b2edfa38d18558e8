// internal/system/collision.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/pool"
)

// CollisionSystem runs the per-step narrow-phase pass: player projectiles
// against enemies, enemy projectiles and enemy hulls against the ship.
// Outcomes are reported through the event dispatcher; the system itself
// owns no gameplay state.
type CollisionSystem struct {
	projectiles *pool.Pool[component.Projectile]
	enemies     *pool.Pool[component.Enemy]
	dispatcher  *event.Dispatcher
}

func NewCollisionSystem(projectiles *pool.Pool[component.Projectile], enemies *pool.Pool[component.Enemy], dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		projectiles: projectiles,
		enemies:     enemies,
		dispatcher:  dispatcher,
	}
}

func (s *CollisionSystem) Update(ship *component.Ship) {
	enemies := s.enemies.Active()
	shipCircle := ship.Shape.At(ship.Pos)

	for _, p := range s.projectiles.Active() {
		if p.HitDone {
			continue
		}
		c := p.Shape.At(p.Pos)
		switch p.Owner {
		case component.SidePlayer:
			s.projectileVsEnemies(p, c, enemies)
		case component.SideEnemy:
			s.projectileVsShip(p, c, ship, shipCircle)
		}
	}

	// Enemy hulls ramming the ship.
	if !ship.Invincible() {
		for _, e := range s.enemies.Active() {
			if _, ok := collision.IntersectBoxCircle(e.Shape.At(e.Pos), shipCircle); ok {
				s.dispatcher.Dispatch(event.Event{
					Type: event.PlayerHit,
					Data: event.PlayerHitData{Damage: e.ContactDamage},
				})
				s.destroyEnemy(e, 0) // ramming scores nothing
				break                // one contact hit per step, hit cooldown covers the rest
			}
		}
	}
}

func (s *CollisionSystem) projectileVsEnemies(p *component.Projectile, c collision.Circle, enemies []*component.Enemy) {
	for _, e := range enemies {
		if e.Health <= 0 {
			continue
		}
		if _, ok := collision.IntersectBoxCircle(e.Shape.At(e.Pos), c); !ok {
			continue
		}
		// Damage applies exactly once even if several checks overlap
		// before deactivation takes effect.
		p.HitDone = true
		if p.OnHit != nil {
			p.OnHit()
		}
		e.Health -= p.Damage
		if e.Health <= 0 {
			s.destroyEnemy(e, e.ScoreValue)
		}
		s.projectiles.Release(p)
		return
	}
}

func (s *CollisionSystem) projectileVsShip(p *component.Projectile, c collision.Circle, ship *component.Ship, shipCircle collision.Circle) {
	if ship.Invincible() {
		return
	}
	if _, ok := collision.IntersectCircles(c, shipCircle); !ok {
		return
	}
	p.HitDone = true
	if p.OnHit != nil {
		p.OnHit()
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Damage: p.Damage},
	})
	s.projectiles.Release(p)
}

func (s *CollisionSystem) destroyEnemy(e *component.Enemy, score int) {
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{
			ID:         e.ID,
			ScoreValue: score,
			X:          e.Pos.X(),
			Y:          e.Pos.Y(),
		},
	})
	s.enemies.Release(e)
}
