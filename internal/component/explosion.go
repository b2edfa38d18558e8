package component

import "go-arcade-shooter/pkg/geom"

// Explosion is a pooled, short-lived visual burst that expands and fades.
type Explosion struct {
	Pos       geom.Vec2
	Age       float64
	Lifetime  float64
	MaxRadius float64
}

// Spawn reinitializes an explosion fresh from the pool.
func (e *Explosion) Spawn(pos geom.Vec2, lifetime, maxRadius float64) {
	e.Pos = pos
	e.Age = 0
	e.Lifetime = lifetime
	e.MaxRadius = maxRadius
}

// Progress returns the life fraction in [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	t := e.Age / e.Lifetime
	if t > 1 {
		t = 1
	}
	return t
}
