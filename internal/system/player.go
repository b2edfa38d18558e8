// internal/system/player.go
package system

import (
	"fmt"
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/pkg/geom"
)

// ShipInput is the per-step control state fed into the player system.
type ShipInput struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    float64 // intensity in [0, 1]; anything else fails validation
}

// PlayerSystem applies thrust, rotation, drag and bounds to the ship.
type PlayerSystem struct {
	ship *component.Ship
}

func NewPlayerSystem(ship *component.Ship) *PlayerSystem {
	return &PlayerSystem{ship: ship}
}

// Update advances the ship by one fixed step.
func (s *PlayerSystem) Update(dt float64, in ShipInput) error {
	if in.Thrust < 0 || in.Thrust > 1 {
		return fmt.Errorf("player: thrust intensity %g outside [0, 1]", in.Thrust)
	}
	ship := s.ship

	if in.TurnLeft {
		ship.SetRot(ship.Rot - ship.RotationSpeed*dt)
	}
	if in.TurnRight {
		ship.SetRot(ship.Rot + ship.RotationSpeed*dt)
	}

	if in.Thrust > 0 {
		accel := geom.FromAngle(ship.Rot).Mul(ship.ThrustAccel * in.Thrust * dt)
		ship.Vel = ship.Vel.Add(accel)
	} else {
		// Exponential decay, then snap to exactly zero below the threshold
		// so the ship never drifts at near-zero speed forever.
		ship.Vel = ship.Vel.Mul(math.Pow(ship.Drag, dt))
		if ship.Vel.Len() < ship.StopThreshold {
			ship.Vel = geom.V(0, 0)
		}
	}

	ship.Vel = geom.ClampLen(ship.Vel, ship.MaxSpeed)
	ship.Integrate(dt)

	// Clamp into the movement bounds after integration.
	clamped := geom.V(
		geom.Clamp(ship.Pos.X(), 0, ship.Bounds.X()),
		geom.Clamp(ship.Pos.Y(), 0, ship.Bounds.Y()),
	)
	if clamped != ship.Pos {
		ship.Pos = clamped
	}

	if ship.FireCooldown > 0 {
		ship.FireCooldown -= dt
	}
	if ship.HitCooldown > 0 {
		ship.HitCooldown -= dt
	}
	return nil
}

// TryFire consumes the fire cooldown. It reports false while the cooldown
// is still running.
func (s *PlayerSystem) TryFire() bool {
	if s.ship.FireCooldown > 0 {
		return false
	}
	s.ship.FireCooldown = s.ship.FireRate
	return true
}
