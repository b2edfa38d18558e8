// internal/system/movement.go
package system

import (
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/pkg/geom"
)

// patternFunc advances one enemy by one fixed step. speedMult comes from
// the difficulty controller.
type patternFunc func(e *component.Enemy, dt, speedMult float64)

// MovementSystem обновляет позиции врагов. Каждому паттерну из закрытого
// набора соответствует функция в таблице — никакой иерархии классов.
type MovementSystem struct {
	patterns map[defs.MovementPattern]patternFunc
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{
		patterns: map[defs.MovementPattern]patternFunc{
			defs.PatternSideToSide: updateSideToSide,
			defs.PatternDownward:   updateDownward,
			defs.PatternZigzag:     updateZigzag,
			defs.PatternStationary: updateStationary,
		},
	}
}

func (s *MovementSystem) Update(dt float64, enemies []*component.Enemy, speedMult float64) {
	for _, e := range enemies {
		e.Elapsed += dt
		fn, ok := s.patterns[e.Pattern]
		if !ok {
			fn = updateStationary
		}
		fn(e, dt, speedMult)
	}
}

// updateSideToSide oscillates between MinX and MaxX, reversing the
// velocity sign at each bound.
func updateSideToSide(e *component.Enemy, dt, speedMult float64) {
	e.PrevPos = e.Pos
	x := e.Pos.X() + e.Vel.X()*speedMult*dt
	if x <= e.MinX {
		x = e.MinX
		e.Vel = geom.V(math.Abs(e.Vel.X()), e.Vel.Y())
	} else if x >= e.MaxX {
		x = e.MaxX
		e.Vel = geom.V(-math.Abs(e.Vel.X()), e.Vel.Y())
	}
	e.Pos = geom.V(x, e.Pos.Y())
}

// updateDownward advances at constant +Y and wraps back to the top
// position once the bottom bound is crossed.
func updateDownward(e *component.Enemy, dt, speedMult float64) {
	e.PrevPos = e.Pos
	y := e.Pos.Y() + e.Vel.Y()*speedMult*dt
	if y > e.BottomY {
		// Teleport, not motion: reset interpolation history too.
		e.Place(geom.V(e.Pos.X(), e.TopY))
		return
	}
	e.Pos = geom.V(e.Pos.X(), y)
}

// updateZigzag combines a sinusoidal horizontal offset around AnchorX
// with constant downward motion.
func updateZigzag(e *component.Enemy, dt, speedMult float64) {
	e.PrevPos = e.Pos
	x := e.AnchorX + e.WobbleAmp*math.Sin(e.WobbleFreq*e.Elapsed)
	y := e.Pos.Y() + e.Vel.Y()*speedMult*dt
	if y > e.BottomY {
		e.Place(geom.V(x, e.TopY))
		return
	}
	e.Pos = geom.V(x, y)
}

func updateStationary(e *component.Enemy, dt, speedMult float64) {
	e.PrevPos = e.Pos
}
