package component

import (
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
)

// Side tags who fired a projectile, for collision filtering.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Projectile is a pooled bullet. Age accumulates simulation time, never
// wall clock, so expiry stays deterministic under the fixed-step loop.
type Projectile struct {
	Transform
	Shape    collision.CircleShape
	Owner    Side
	Damage   int
	Lifetime float64
	Age      float64
	HitDone  bool // the hit callback fires at most once per activation

	// OnHit, when set, is invoked exactly once on first contact with a
	// target, before the projectile deactivates.
	OnHit func()
}

// Spawn reinitializes a projectile fresh from the pool.
func (p *Projectile) Spawn(pos, vel geom.Vec2, owner Side, damage int, lifetime float64, shape collision.CircleShape) {
	p.Place(pos)
	p.Vel = vel
	p.Owner = owner
	p.Damage = damage
	p.Lifetime = lifetime
	p.Age = 0
	p.HitDone = false
	p.OnHit = nil
	p.Shape = shape
}

// Expired reports whether the projectile's cumulative simulation time has
// reached its lifetime.
func (p *Projectile) Expired() bool {
	return p.Age >= p.Lifetime
}
