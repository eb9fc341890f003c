// Package animation advances the scene angle on a fixed cadence.
package animation

import (
	"context"
	"math"
	"time"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Defaults matching the original 60Hz animation.
const (
	DefaultStep     = 0.01                  // Radians per tick
	DefaultInterval = 16 * time.Millisecond // Wall-clock time per tick
)

// Driver owns the animation angle. It is not safe for concurrent use: the
// host loop is expected to both advance and read it.
type Driver struct {
	step     float64
	interval time.Duration

	angle   float64
	ticks   int64
	pending time.Duration // Elapsed time not yet converted into ticks
	running bool

	hook func(prev, angle float64)
}

// NewDriver creates a stopped driver at angle 0.
// Non-positive arguments fall back to the defaults.
func NewDriver(step float64, interval time.Duration) *Driver {
	if !(step > 0) {
		step = DefaultStep
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		step:     step,
		interval: interval,
	}
}

// Start begins accepting elapsed time in Advance.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.pending = 0
}

// Stop halts the cadence and discards partially elapsed time.
func (d *Driver) Stop() {
	d.running = false
	d.pending = 0
}

// Running reports whether the driver is started.
func (d *Driver) Running() bool {
	return d.running
}

// Tick advances the angle by one step, wrapping into [0, 2π).
func (d *Driver) Tick() float64 {
	prev := d.angle
	d.angle = wrap(d.angle + d.step)
	d.ticks++
	if d.hook != nil {
		d.hook(prev, d.angle)
	}
	return d.angle
}

// SetTickHook registers a function called after every tick, including
// ticks applied by Advance and Run. Pass nil to remove it.
func (d *Driver) SetTickHook(fn func(prev, angle float64)) {
	d.hook = fn
}

// Advance feeds elapsed wall-clock time to the driver and applies one tick
// per full interval. It returns the number of ticks applied, which is zero
// while stopped.
func (d *Driver) Advance(dt time.Duration) int {
	if !d.running || dt <= 0 {
		return 0
	}
	d.pending += dt
	n := 0
	for d.pending >= d.interval {
		d.pending -= d.interval
		d.Tick()
		n++
	}
	return n
}

// Run ticks on a wall-clock timer until ctx is cancelled, calling onTick
// with each new angle. The timer is released before Run returns. Run starts
// the driver if needed and stops it on exit.
func (d *Driver) Run(ctx context.Context, onTick func(angle float64)) error {
	d.Start()
	defer d.Stop()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !d.running {
				return nil
			}
			angle := d.Tick()
			if onTick != nil {
				onTick(angle)
			}
		}
	}
}

// Angle returns the current angle in radians, in [0, 2π).
func (d *Driver) Angle() float64 {
	return d.angle
}

// Ticks returns the number of ticks applied since creation or Reset.
func (d *Driver) Ticks() int64 {
	return d.ticks
}

// Step returns the angular increment per tick.
func (d *Driver) Step() float64 {
	return d.step
}

// Interval returns the wall-clock time per tick.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// SetStep changes the angular increment. Non-positive values are ignored.
func (d *Driver) SetStep(step float64) {
	if step > 0 {
		d.step = step
	}
}

// Period returns the number of ticks in one full turn.
func (d *Driver) Period() int {
	return int(math.Ceil(FullTurn/d.step - 1e-9))
}

// Reset returns the angle and tick count to zero.
func (d *Driver) Reset() {
	d.angle = 0
	d.ticks = 0
	d.pending = 0
}

// wrap maps a to [0, 2π).
func wrap(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}
