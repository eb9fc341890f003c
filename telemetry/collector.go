package telemetry

import (
	"math"
	"time"
)

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	interval            time.Duration
	step                float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	pauses       int
	angleResets  int
	cameraResets int
	speedChanges int

	// Frame times in milliseconds for current window
	frameMS []float64
}

// NewCollector creates a new stats collector.
// ticksPerWindow: ticks in each stats window
// interval: wall time per tick, step: radians per tick
func NewCollector(ticksPerWindow int64, interval time.Duration, step float64) *Collector {
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		interval:            interval,
		step:                step,
	}
}

// RecordEvent counts a playback event.
func (c *Collector) RecordEvent(e EventType) {
	switch e {
	case EventPause:
		c.pauses++
	case EventResetAngle:
		c.angleResets++
	case EventResetCamera:
		c.cameraResets++
	case EventSpeedChange:
		c.speedChanges++
	}
}

// RecordFrame records the wall time of one presented frame.
func (c *Collector) RecordFrame(d time.Duration) {
	c.frameMS = append(c.frameMS, float64(d)/float64(time.Millisecond))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// totalTicks counts every tick since the last angle reset, so revolutions
// are derived from it rather than from the wrapped angle.
func (c *Collector) Flush(currentTick int64, angle float64, totalTicks int64, skippedGlyphs int) WindowStats {
	mean, p10, p50, p90 := ComputeDistribution(c.frameMS)

	var revolutions int64
	if c.step > 0 {
		revolutions = int64(math.Floor(float64(totalTicks) * c.step / (2 * math.Pi)))
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		AnimTimeSec:     float64(currentTick) * c.interval.Seconds(),

		Angle:       angle,
		Revolutions: revolutions,

		Pauses:       c.pauses,
		AngleResets:  c.angleResets,
		CameraResets: c.cameraResets,
		SpeedChanges: c.speedChanges,

		Frames:      len(c.frameMS),
		FrameMSMean: mean,
		FrameMSP10:  p10,
		FrameMSP50:  p50,
		FrameMSP90:  p90,

		SkippedGlyphs: skippedGlyphs,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.pauses = 0
	c.angleResets = 0
	c.cameraResets = 0
	c.speedChanges = 0
	c.frameMS = c.frameMS[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
