package component

import (
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
)

// Ship is the player entity.
type Ship struct {
	Transform
	Shape collision.CircleShape

	// Tuning, set once at construction.
	ThrustAccel   float64 // acceleration at full thrust, px/s^2
	RotationSpeed float64 // rad/s
	MaxSpeed      float64 // velocity magnitude cap
	Drag          float64 // fraction of velocity kept after one idle second
	StopThreshold float64 // speed below which velocity snaps to zero
	FireRate      float64 // min seconds between shots
	Bounds        geom.Vec2 // movement area (0,0)..(Bounds.X, Bounds.Y)

	FireCooldown float64
	HitCooldown  float64 // remaining invincibility after a hit, seconds
}

// Invincible reports whether the post-hit grace period is active.
func (s *Ship) Invincible() bool {
	return s.HitCooldown > 0
}
