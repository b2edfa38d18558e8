package loop

import (
	"errors"
	"testing"
	"time"
)

const (
	step     = 1.0 / 60.0
	maxDelta = 0.25
	maxSteps = 5
)

// newRunningLoop builds a started loop and seeds its clock with one tick.
func newRunningLoop(t *testing.T, update UpdateFunc, render RenderFunc) (*Loop, time.Time) {
	t.Helper()
	l, err := New(step, maxDelta, maxSteps)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.SetUpdate(update)
	l.SetRender(render)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	start := time.Unix(0, 0)
	if err := l.Tick(start); err != nil {
		t.Fatalf("seed tick: %v", err)
	}
	return l, start
}

func advance(t *testing.T, l *Loop, from time.Time, delta float64) time.Time {
	t.Helper()
	next := from.Add(time.Duration(delta * float64(time.Second)))
	if err := l.Tick(next); err != nil {
		t.Fatalf("Tick(+%gs): %v", delta, err)
	}
	return next
}

func TestNew_ValidatesTiming(t *testing.T) {
	if _, err := New(0, maxDelta, maxSteps); err == nil {
		t.Error("zero step should fail")
	}
	if _, err := New(step, step/2, maxSteps); err == nil {
		t.Error("max delta below one step should fail")
	}
	if _, err := New(step, maxDelta, 0); err == nil {
		t.Error("zero max steps should fail")
	}
}

func TestStart_RequiresCallbacks(t *testing.T) {
	l, _ := New(step, maxDelta, maxSteps)
	if err := l.Start(); err == nil {
		t.Error("start without callbacks should fail")
	}
	l.SetUpdate(func(float64) error { return nil })
	if err := l.Start(); err == nil {
		t.Error("start without render callback should fail")
	}
}

func TestStart_NoOpWhenAlreadyRunning(t *testing.T) {
	l, now := newRunningLoop(t,
		func(float64) error { return nil },
		func(float64) error { return nil })
	now = advance(t, l, now, 0.02)
	if err := l.Start(); err != nil {
		t.Errorf("start while running should be a no-op, got %v", err)
	}
	// The clock must not have been reset: the next tick still advances.
	updates := 0
	l.SetUpdate(func(float64) error { updates++; return nil })
	advance(t, l, now, 0.02)
	if updates != 1 {
		t.Errorf("updates after redundant Start = %d, want 1", updates)
	}
}

func TestTick_UpdateAlwaysReceivesFixedStep(t *testing.T) {
	var steps []float64
	l, now := newRunningLoop(t,
		func(dt float64) error { steps = append(steps, dt); return nil },
		func(float64) error { return nil })

	// Irregular frame deltas: jittery but below the clamp.
	for _, d := range []float64{0.001, 0.017, 0.033, 0.008, 0.05, 0.021} {
		now = advance(t, l, now, d)
	}
	if len(steps) == 0 {
		t.Fatal("update never called")
	}
	for i, dt := range steps {
		if dt != step {
			t.Errorf("update %d received dt=%g, want fixed %g", i, dt, step)
		}
	}
}

func TestTick_MaxStepsCapsCatchUp(t *testing.T) {
	updates := 0
	l, now := newRunningLoop(t,
		func(float64) error { updates++; return nil },
		func(float64) error { return nil })

	// A long stall: even clamped to maxDelta this banks 15 steps of time,
	// but one tick may drain at most maxSteps.
	advance(t, l, now, 2.0)
	if updates != maxSteps {
		t.Errorf("updates after stall = %d, want max %d", updates, maxSteps)
	}
}

func TestTick_AlphaStaysInUnitRange(t *testing.T) {
	var alphas []float64
	l, now := newRunningLoop(t,
		func(float64) error { return nil },
		func(a float64) error { alphas = append(alphas, a); return nil })

	for _, d := range []float64{0.005, 0.02, 0.017, 0.5, 0.001} {
		now = advance(t, l, now, d)
	}
	for i, a := range alphas {
		if a < 0 || a >= 1 {
			t.Errorf("render %d alpha = %g, outside [0, 1)", i, a)
		}
	}
}

func TestTick_UpdateErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	l, now := newRunningLoop(t,
		func(float64) error { return boom },
		func(float64) error { t.Error("render must not run after update failure"); return nil })

	err := l.Tick(now.Add(20 * time.Millisecond))
	if !errors.Is(err, boom) {
		t.Fatalf("Tick error = %v, want wrapped boom", err)
	}
	if l.Running() {
		t.Error("loop still running after callback failure")
	}
	// Subsequent ticks are inert.
	if err := l.Tick(now.Add(time.Second)); err != nil {
		t.Errorf("tick on stopped loop returned %v", err)
	}
}

func TestTick_RenderErrorStopsLoop(t *testing.T) {
	boom := errors.New("render boom")
	l, now := newRunningLoop(t,
		func(float64) error { return nil },
		func(float64) error { return boom })

	err := l.Tick(now.Add(20 * time.Millisecond))
	if !errors.Is(err, boom) {
		t.Fatalf("Tick error = %v, want wrapped boom", err)
	}
	if l.Running() {
		t.Error("loop still running after render failure")
	}
}

func TestStop_TakesEffectAtNextTick(t *testing.T) {
	updates := 0
	l, now := newRunningLoop(t,
		func(float64) error { updates++; return nil },
		func(float64) error { return nil })

	now = advance(t, l, now, 0.02)
	before := updates
	l.Stop()
	if l.Running() {
		t.Error("loop reports running after Stop")
	}
	advance(t, l, now, 0.02)
	if updates != before {
		t.Errorf("update ran after Stop: %d -> %d", before, updates)
	}
}

func TestFPS_RollingOneSecondWindow(t *testing.T) {
	l, now := newRunningLoop(t,
		func(float64) error { return nil },
		func(float64) error { return nil })

	if l.FPS() != 0 {
		t.Errorf("FPS before first window = %d, want 0", l.FPS())
	}
	// 32 frames at 31.25ms (an exact binary fraction) fill one second.
	for i := 0; i < 32; i++ {
		now = advance(t, l, now, 0.03125)
	}
	if l.FPS() != 32 {
		t.Errorf("FPS after one second of frames = %d, want 32", l.FPS())
	}
}
