package system

import (
	"testing"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/pkg/geom"
)

const dt = 1.0 / 60.0

func stepEnemy(s *MovementSystem, e *component.Enemy, steps int) {
	for i := 0; i < steps; i++ {
		s.Update(dt, []*component.Enemy{e}, 1.0)
	}
}

func TestSideToSide_ReversesAtRightBound(t *testing.T) {
	s := NewMovementSystem()
	e := &component.Enemy{Pattern: defs.PatternSideToSide, MinX: 0, MaxX: 800}
	e.Place(geom.V(0, 100))
	e.Vel = geom.V(2, 0) // moving right

	// Drive until the right bound is crossed.
	for i := 0; i < 1000000 && e.Vel.X() > 0; i++ {
		stepEnemy(s, e, 1)
	}
	if e.Vel.X() >= 0 {
		t.Fatalf("velocity.x = %g after reaching MaxX, want negative", e.Vel.X())
	}
	if e.Pos.X() > 800 {
		t.Errorf("position escaped bound: x = %g", e.Pos.X())
	}

	// And back: it reverses again at the left bound.
	for i := 0; i < 1000000 && e.Vel.X() < 0; i++ {
		stepEnemy(s, e, 1)
	}
	if e.Vel.X() <= 0 {
		t.Errorf("velocity.x = %g after reaching MinX, want positive", e.Vel.X())
	}
}

func TestDownward_WrapsToTopAfterBottomBound(t *testing.T) {
	s := NewMovementSystem()
	e := &component.Enemy{Pattern: defs.PatternDownward, TopY: -40, BottomY: 640}
	e.Place(geom.V(100, 639))
	e.Vel = geom.V(0, 120)

	stepEnemy(s, e, 1)
	if e.Pos.Y() != -40 {
		t.Errorf("y = %g after crossing bottom bound, want wrap to -40", e.Pos.Y())
	}
	if e.PrevPos.Y() != -40 {
		t.Error("wrap must reset interpolation history, not smear across the screen")
	}
	if e.Pos.X() != 100 {
		t.Errorf("x changed on wrap: %g", e.Pos.X())
	}
}

func TestZigzag_DescendsWhileOscillating(t *testing.T) {
	s := NewMovementSystem()
	e := &component.Enemy{
		Pattern: defs.PatternZigzag,
		AnchorX: 400, WobbleAmp: 60, WobbleFreq: 3,
		TopY: -40, BottomY: 640,
	}
	e.Place(geom.V(400, 0))
	e.Vel = geom.V(0, 90)

	minX, maxX := 400.0, 400.0
	startY := e.Pos.Y()
	for i := 0; i < 180; i++ { // three seconds
		stepEnemy(s, e, 1)
		if x := e.Pos.X(); x < minX {
			minX = x
		} else if x > maxX {
			maxX = x
		}
	}
	if e.Pos.Y() <= startY {
		t.Errorf("zigzag did not descend: y = %g", e.Pos.Y())
	}
	if maxX-400 < 30 || 400-minX < 30 {
		t.Errorf("zigzag barely oscillated: x range [%g, %g]", minX, maxX)
	}
	if minX < 400-60-1e-6 || maxX > 400+60+1e-6 {
		t.Errorf("zigzag exceeded amplitude: x range [%g, %g]", minX, maxX)
	}
}

func TestStationary_NeverMoves(t *testing.T) {
	s := NewMovementSystem()
	e := &component.Enemy{Pattern: defs.PatternStationary}
	e.Place(geom.V(250, 80))

	stepEnemy(s, e, 120)
	if e.Pos.X() != 250 || e.Pos.Y() != 80 {
		t.Errorf("stationary enemy moved to %v", e.Pos)
	}
}

func TestSpeedMultiplier_ScalesAdvance(t *testing.T) {
	s := NewMovementSystem()
	slow := &component.Enemy{Pattern: defs.PatternDownward, TopY: -40, BottomY: 10000}
	slow.Place(geom.V(0, 0))
	slow.Vel = geom.V(0, 100)
	fast := &component.Enemy{Pattern: defs.PatternDownward, TopY: -40, BottomY: 10000}
	fast.Place(geom.V(0, 0))
	fast.Vel = geom.V(0, 100)

	for i := 0; i < 60; i++ {
		s.Update(dt, []*component.Enemy{slow}, 1.0)
		s.Update(dt, []*component.Enemy{fast}, 2.0)
	}
	ratio := fast.Pos.Y() / slow.Pos.Y()
	if ratio < 1.99 || ratio > 2.01 {
		t.Errorf("speed multiplier 2.0 advanced %gx as far, want 2x", ratio)
	}
}
