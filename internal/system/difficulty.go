// internal/system/difficulty.go
package system

import (
	"fmt"
	"math"

	"go-arcade-shooter/internal/defs"
)

// DifficultySystem escalates stats on a played-time interval, distinct
// from the fixed simulation step. Every interval of cumulative update
// time advances one table step, up to the maximum level; after that
// updates are no-ops.
type DifficultySystem struct {
	interval float64
	scaling  float64
	maxLevel int
	steps    []defs.DifficultyStep

	level     int
	elapsed   float64 // cumulative played time
	sinceStep float64
}

func NewDifficultySystem(interval, scaling float64, maxLevel int, steps []defs.DifficultyStep) (*DifficultySystem, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("difficulty: interval must be positive, got %g", interval)
	}
	if scaling <= 0 {
		return nil, fmt.Errorf("difficulty: scaling factor must be positive, got %g", scaling)
	}
	if maxLevel < 1 {
		return nil, fmt.Errorf("difficulty: max level must be at least 1, got %d", maxLevel)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("difficulty: step table is empty")
	}
	return &DifficultySystem{
		interval: interval,
		scaling:  scaling,
		maxLevel: maxLevel,
		steps:    steps,
		level:    1,
	}, nil
}

// Update accumulates played time. A threshold crossing advances the level
// exactly once regardless of how many small updates led up to it.
func (d *DifficultySystem) Update(dt float64) {
	d.elapsed += dt
	if d.level >= d.maxLevel {
		return
	}
	d.sinceStep += dt
	for d.sinceStep >= d.interval && d.level < d.maxLevel {
		d.sinceStep -= d.interval
		d.level++
	}
}

// Level returns the current difficulty level, starting at 1.
func (d *DifficultySystem) Level() int { return d.level }

// PlayedTime returns the cumulative simulation time seen by Update.
func (d *DifficultySystem) PlayedTime() float64 { return d.elapsed }

// Step returns the stat multipliers of the current level. Levels past the
// table stay on its final entry.
func (d *DifficultySystem) Step() defs.DifficultyStep {
	i := d.level - 1
	if i >= len(d.steps) {
		i = len(d.steps) - 1
	}
	return d.steps[i]
}

// Multiplier is the exponential difficulty scalar exposed to callers:
// scalingFactor^(level-1), decoupled from the discrete step table.
func (d *DifficultySystem) Multiplier() float64 {
	return math.Pow(d.scaling, float64(d.level-1))
}
