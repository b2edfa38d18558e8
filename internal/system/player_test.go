package system

import (
	"math"
	"testing"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"
)

func newTestShip() *component.Ship {
	shape, _ := collision.NewCircleShape(geom.V(0, 0), 14)
	ship := &component.Ship{
		Shape:         shape,
		ThrustAccel:   900,
		RotationSpeed: 4.5,
		MaxSpeed:      420,
		Drag:          0.02,
		StopThreshold: 2,
		FireRate:      0.18,
		Bounds:        geom.V(800, 600),
	}
	ship.Place(geom.V(400, 500))
	return ship
}

func TestUpdate_ThrustIntensityValidation(t *testing.T) {
	s := NewPlayerSystem(newTestShip())
	for _, bad := range []float64{-0.01, 1.01, 2} {
		if err := s.Update(dt, ShipInput{Thrust: bad}); err == nil {
			t.Errorf("thrust intensity %g should fail validation", bad)
		}
	}
	if err := s.Update(dt, ShipInput{Thrust: 1}); err != nil {
		t.Errorf("full thrust rejected: %v", err)
	}
	if err := s.Update(dt, ShipInput{Thrust: 0}); err != nil {
		t.Errorf("idle rejected: %v", err)
	}
}

func TestUpdate_ThrustAcceleratesAlongFacing(t *testing.T) {
	ship := newTestShip()
	ship.SetRot(0) // facing +X
	s := NewPlayerSystem(ship)

	if err := s.Update(dt, ShipInput{Thrust: 1}); err != nil {
		t.Fatal(err)
	}
	if ship.Vel.X() <= 0 {
		t.Errorf("vel.x = %g after thrusting along +X, want positive", ship.Vel.X())
	}
	if math.Abs(ship.Vel.Y()) > 1e-9 {
		t.Errorf("vel.y = %g, want 0", ship.Vel.Y())
	}

	// Half intensity gains half the speed.
	half := newTestShip()
	half.SetRot(0)
	sh := NewPlayerSystem(half)
	if err := sh.Update(dt, ShipInput{Thrust: 0.5}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(half.Vel.X()-ship.Vel.X()/2) > 1e-9 {
		t.Errorf("half thrust vel = %g, want %g", half.Vel.X(), ship.Vel.X()/2)
	}
}

func TestUpdate_SpeedClampedEveryStep(t *testing.T) {
	ship := newTestShip()
	ship.Bounds = geom.V(1e9, 1e9) // keep position clamping out of the way
	s := NewPlayerSystem(ship)

	for i := 0; i < 600; i++ { // ten seconds of full thrust
		if err := s.Update(dt, ShipInput{Thrust: 1}); err != nil {
			t.Fatal(err)
		}
		if v := ship.Vel.Len(); v > ship.MaxSpeed+1e-9 {
			t.Fatalf("step %d: speed %g exceeds cap %g", i, v, ship.MaxSpeed)
		}
	}
	if v := ship.Vel.Len(); math.Abs(v-ship.MaxSpeed) > 1e-6 {
		t.Errorf("sustained thrust should sit at the cap, got %g", v)
	}
}

func TestUpdate_IdleDecaySnapsToZero(t *testing.T) {
	ship := newTestShip()
	ship.Vel = geom.V(50, 0)
	s := NewPlayerSystem(ship)

	steps := 0
	for ; steps < 600 && ship.Vel.Len() > 0; steps++ {
		if err := s.Update(dt, ShipInput{}); err != nil {
			t.Fatal(err)
		}
	}
	if ship.Vel.X() != 0 || ship.Vel.Y() != 0 {
		t.Fatalf("velocity never snapped to exactly zero: %v", ship.Vel)
	}
	if steps == 0 || steps == 600 {
		t.Errorf("decay took %d steps, expected gradual stop", steps)
	}
}

func TestUpdate_PositionClampedIntoBounds(t *testing.T) {
	ship := newTestShip()
	ship.Place(geom.V(795, 300))
	ship.SetRot(0)
	s := NewPlayerSystem(ship)

	for i := 0; i < 120; i++ {
		if err := s.Update(dt, ShipInput{Thrust: 1}); err != nil {
			t.Fatal(err)
		}
	}
	if ship.Pos.X() != 800 {
		t.Errorf("x = %g, want clamped to 800", ship.Pos.X())
	}
}

func TestTryFire_CooldownGate(t *testing.T) {
	ship := newTestShip()
	s := NewPlayerSystem(ship)

	if !s.TryFire() {
		t.Fatal("first shot should succeed")
	}
	if s.TryFire() {
		t.Error("second immediate shot should be blocked by cooldown")
	}
	// Run the cooldown off.
	for i := 0; i < 12; i++ {
		if err := s.Update(dt, ShipInput{}); err != nil {
			t.Fatal(err)
		}
	}
	if !s.TryFire() {
		t.Error("shot after cooldown expiry should succeed")
	}
}

func TestUpdate_RotationNormalized(t *testing.T) {
	ship := newTestShip()
	ship.SetRot(0.1)
	s := NewPlayerSystem(ship)

	// Turn left long enough to wrap below zero.
	for i := 0; i < 60; i++ {
		if err := s.Update(dt, ShipInput{TurnLeft: true}); err != nil {
			t.Fatal(err)
		}
		if ship.Rot < 0 || ship.Rot >= 2*math.Pi {
			t.Fatalf("rotation %g left [0, 2pi)", ship.Rot)
		}
	}
}
