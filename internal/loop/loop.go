// Package loop implements the fixed-timestep game loop: a time accumulator
// drained in constant-size simulation steps, with an interpolation alpha
// handed to the render phase for smooth drawing between steps.
package loop

import (
	"fmt"
	"time"
)

// UpdateFunc advances the simulation by one fixed step. dt is always the
// configured fixed interval.
type UpdateFunc func(dt float64) error

// RenderFunc draws one frame. alpha is the fraction of a fixed step that
// has accumulated but not yet been simulated, in [0, 1).
type RenderFunc func(alpha float64) error

// Loop drives update and render callbacks from per-frame ticks.
type Loop struct {
	step     float64 // fixed simulation interval, seconds
	maxDelta float64 // frame delta clamp ("spiral of death" mitigation)
	maxSteps int     // catch-up steps allowed per tick

	update UpdateFunc
	render RenderFunc

	running     bool
	started     bool // first tick after Start seeds lastTime
	lastTime    time.Time
	accumulator float64

	// Rolling one-second FPS counter.
	fps       int
	frames    int
	fpsElapse float64
}

// New validates the timing configuration and builds a stopped loop.
func New(step, maxDelta float64, maxSteps int) (*Loop, error) {
	if step <= 0 {
		return nil, fmt.Errorf("loop: fixed step must be positive, got %g", step)
	}
	if maxDelta < step {
		return nil, fmt.Errorf("loop: max delta %g must be at least one step %g", maxDelta, step)
	}
	if maxSteps <= 0 {
		return nil, fmt.Errorf("loop: max steps must be positive, got %d", maxSteps)
	}
	return &Loop{step: step, maxDelta: maxDelta, maxSteps: maxSteps}, nil
}

// SetUpdate installs the simulation callback.
func (l *Loop) SetUpdate(fn UpdateFunc) {
	l.update = fn
}

// SetRender installs the render callback.
func (l *Loop) SetRender(fn RenderFunc) {
	l.render = fn
}

// Start transitions the loop to running. It fails when either callback is
// unset and is a no-op when the loop is already running.
func (l *Loop) Start() error {
	if l.running {
		return nil
	}
	if l.update == nil || l.render == nil {
		return fmt.Errorf("loop: start requires update and render callbacks")
	}
	l.running = true
	l.started = false
	l.accumulator = 0
	l.frames = 0
	l.fpsElapse = 0
	return nil
}

// Stop requests cooperative cancellation: the flag is consulted at the top
// of the next tick, in-flight callbacks always run to completion.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	return l.running
}

// FPS returns the frame count of the last completed one-second window.
func (l *Loop) FPS() int {
	return l.fps
}

// Step returns the configured fixed interval.
func (l *Loop) Step() float64 {
	return l.step
}

// Tick processes one animation frame at the given time: it clamps the
// elapsed delta, drains the accumulator in fixed steps (at most maxSteps),
// then renders once with the interpolation alpha. An error from either
// callback stops the loop and is returned — no partial-frame recovery.
func (l *Loop) Tick(now time.Time) error {
	if !l.running {
		return nil
	}
	if !l.started {
		l.started = true
		l.lastTime = now
		return nil
	}

	delta := now.Sub(l.lastTime).Seconds()
	l.lastTime = now
	if delta < 0 {
		delta = 0
	}
	if delta > l.maxDelta {
		delta = l.maxDelta
	}
	l.accumulator += delta

	for steps := 0; l.accumulator >= l.step && steps < l.maxSteps; steps++ {
		if err := l.update(l.step); err != nil {
			l.running = false
			return fmt.Errorf("loop: update failed: %w", err)
		}
		l.accumulator -= l.step
	}
	// Drop banked time the step cap refused to simulate, otherwise it
	// would burst through on the next tick.
	if l.accumulator >= l.step {
		l.accumulator = l.step - 1e-12
	}

	l.frames++
	l.fpsElapse += delta
	if l.fpsElapse >= 1 {
		l.fps = l.frames
		l.frames = 0
		l.fpsElapse -= 1
	}

	alpha := l.accumulator / l.step
	if err := l.render(alpha); err != nil {
		l.running = false
		return fmt.Errorf("loop: render failed: %w", err)
	}
	return nil
}
