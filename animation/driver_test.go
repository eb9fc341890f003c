package animation

import (
	"context"
	"math"
	"testing"
	"time"
)

// circularDiff returns the distance between two angles on the circle.
func circularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), FullTurn)
	if d > math.Pi {
		d = FullTurn - d
	}
	return d
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver(0, 0)
	if d.Step() != DefaultStep {
		t.Errorf("expected default step %f, got %f", DefaultStep, d.Step())
	}
	if d.Interval() != DefaultInterval {
		t.Errorf("expected default interval %v, got %v", DefaultInterval, d.Interval())
	}
	if d.Angle() != 0 || d.Ticks() != 0 {
		t.Errorf("expected zero state, got angle=%f ticks=%d", d.Angle(), d.Ticks())
	}
	if d.Running() {
		t.Error("new driver should be stopped")
	}
}

func TestAngleAfterKTicks(t *testing.T) {
	steps := []float64{0.01, 0.1, 0.37, 1.0}

	for _, step := range steps {
		d := NewDriver(step, time.Millisecond)
		for k := 1; k <= 5000; k++ {
			angle := d.Tick()
			if angle < 0 || angle >= FullTurn {
				t.Fatalf("step %f tick %d: angle %f out of [0, 2π)", step, k, angle)
			}
			want := math.Mod(float64(k)*step, FullTurn)
			if circularDiff(angle, want) > 1e-9 {
				t.Fatalf("step %f tick %d: angle %f, want %f", step, k, angle, want)
			}
		}
	}
}

func TestPeriodicity(t *testing.T) {
	// A step that divides the turn exactly: period is 2π/step ticks
	step := FullTurn / 360
	d := NewDriver(step, time.Millisecond)

	if d.Period() != 360 {
		t.Fatalf("expected period 360, got %d", d.Period())
	}

	for i := 0; i < d.Period(); i++ {
		d.Tick()
	}
	if circularDiff(d.Angle(), 0) > 1e-9 {
		t.Errorf("expected angle back at 0 after one period, got %f", d.Angle())
	}

	// Default step: 2π/0.01 = 628.3 -> 629 ticks to complete the turn
	if got := NewDriver(DefaultStep, DefaultInterval).Period(); got != 629 {
		t.Errorf("expected default period 629, got %d", got)
	}
}

func TestAdvanceRequiresStart(t *testing.T) {
	d := NewDriver(0.01, 16*time.Millisecond)

	if n := d.Advance(time.Second); n != 0 {
		t.Errorf("stopped driver applied %d ticks", n)
	}
	if d.Angle() != 0 {
		t.Errorf("stopped driver moved to %f", d.Angle())
	}
}

func TestAdvanceFixedCadence(t *testing.T) {
	d := NewDriver(0.01, 16*time.Millisecond)
	d.Start()

	// 40ms -> 2 ticks, 8ms carried
	if n := d.Advance(40 * time.Millisecond); n != 2 {
		t.Errorf("expected 2 ticks, got %d", n)
	}
	// 8ms + 8ms -> 1 tick
	if n := d.Advance(8 * time.Millisecond); n != 1 {
		t.Errorf("expected carried time to complete a tick, got %d", n)
	}
	if d.Ticks() != 3 {
		t.Errorf("expected 3 ticks total, got %d", d.Ticks())
	}
	if math.Abs(d.Angle()-0.03) > 1e-12 {
		t.Errorf("expected angle 0.03, got %f", d.Angle())
	}
}

func TestTickHook(t *testing.T) {
	d := NewDriver(0.5, 10*time.Millisecond)
	d.Start()

	var calls int
	var lastPrev, lastAngle float64
	d.SetTickHook(func(prev, angle float64) {
		calls++
		lastPrev, lastAngle = prev, angle
	})

	d.Advance(30 * time.Millisecond)
	if calls != 3 {
		t.Fatalf("expected hook called 3 times, got %d", calls)
	}
	if math.Abs(lastPrev-1.0) > 1e-12 || math.Abs(lastAngle-1.5) > 1e-12 {
		t.Errorf("expected last hook call (1.0, 1.5), got (%f, %f)", lastPrev, lastAngle)
	}

	d.SetTickHook(nil)
	d.Tick()
	if calls != 3 {
		t.Errorf("expected removed hook not to be called, got %d calls", calls)
	}
}

func TestStopDiscardsPending(t *testing.T) {
	d := NewDriver(0.01, 16*time.Millisecond)
	d.Start()
	d.Advance(15 * time.Millisecond)
	d.Stop()

	if d.Running() {
		t.Error("expected driver stopped")
	}

	d.Start()
	if n := d.Advance(time.Millisecond); n != 0 {
		t.Errorf("pending time survived Stop: %d ticks", n)
	}
}

func TestReset(t *testing.T) {
	d := NewDriver(0.5, time.Millisecond)
	d.Tick()
	d.Tick()
	d.Reset()

	if d.Angle() != 0 || d.Ticks() != 0 {
		t.Errorf("expected zero state after reset, got angle=%f ticks=%d", d.Angle(), d.Ticks())
	}
}

func TestSetStepIgnoresInvalid(t *testing.T) {
	d := NewDriver(0.01, time.Millisecond)
	d.SetStep(-1)
	if d.Step() != 0.01 {
		t.Errorf("expected step unchanged, got %f", d.Step())
	}
	d.SetStep(0.02)
	if d.Step() != 0.02 {
		t.Errorf("expected step 0.02, got %f", d.Step())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d := NewDriver(0.01, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var seen int
	err := d.Run(ctx, func(angle float64) {
		seen++
		if seen == 5 {
			cancel()
		}
	})

	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if seen < 5 {
		t.Errorf("expected at least 5 ticks, got %d", seen)
	}
	if d.Running() {
		t.Error("driver should be stopped after Run returns")
	}
	if d.Ticks() != int64(seen) {
		t.Errorf("tick count %d does not match callbacks %d", d.Ticks(), seen)
	}
}

func TestRunStopFromCallback(t *testing.T) {
	d := NewDriver(0.01, time.Millisecond)

	calls := 0
	err := d.Run(context.Background(), func(float64) {
		calls++
		d.Stop()
	})

	if err != nil {
		t.Errorf("expected nil error after Stop, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly one callback, got %d", calls)
	}
}
