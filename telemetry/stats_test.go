package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/handrule/geom"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDistribution(t *testing.T) {
	values := []float64{16, 17, 15, 16, 18, 16, 15, 17, 16, 34}
	mean, p10, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-18) > 0.001 {
		t.Errorf("mean = %v, want 18", mean)
	}
	if math.Abs(p10-15) > 0.01 {
		t.Errorf("p10 = %v, want 15", p10)
	}
	if math.Abs(p50-16) > 0.01 {
		t.Errorf("p50 = %v, want 16", p50)
	}
	if math.Abs(p90-19.6) > 0.01 {
		t.Errorf("p90 = %v, want 19.6", p90)
	}

	// Input must not be reordered
	if values[9] != 34 {
		t.Error("ComputeDistribution sorted its input in place")
	}
}

func TestComputeDistributionEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeDistribution(nil)

	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(600, 16*time.Millisecond, 0.01)

	if c.ShouldFlush(599) {
		t.Error("should not flush before a full window")
	}
	if !c.ShouldFlush(600) {
		t.Error("should flush after a full window")
	}

	c.RecordEvent(EventPause)
	c.RecordEvent(EventResume)
	c.RecordEvent(EventResetAngle)
	c.RecordEvent(EventSpeedChange)
	c.RecordEvent(EventSpeedChange)
	for i := 0; i < 10; i++ {
		c.RecordFrame(16 * time.Millisecond)
	}

	stats := c.Flush(700, 0.7, 700, 1)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 700 {
		t.Errorf("unexpected window %d..%d", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.AnimTimeSec-11.2) > 1e-9 {
		t.Errorf("anim time = %v, want 11.2", stats.AnimTimeSec)
	}
	if stats.Revolutions != 1 {
		t.Errorf("revolutions = %d, want 1", stats.Revolutions)
	}
	if stats.Pauses != 1 || stats.AngleResets != 1 || stats.SpeedChanges != 2 || stats.CameraResets != 0 {
		t.Errorf("unexpected event counts: %+v", stats)
	}
	if stats.Frames != 10 || math.Abs(stats.FrameMSMean-16) > 1e-9 {
		t.Errorf("unexpected frame stats: %d frames, mean %v", stats.Frames, stats.FrameMSMean)
	}
	if stats.SkippedGlyphs != 1 {
		t.Errorf("skipped glyphs = %d, want 1", stats.SkippedGlyphs)
	}

	// Counters reset for the next window
	next := c.Flush(1300, 0.1, 1300, 1)
	if next.WindowStartTick != 700 {
		t.Errorf("next window should start at 700, got %d", next.WindowStartTick)
	}
	if next.Pauses != 0 || next.Frames != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestNewFrameSample(t *testing.T) {
	s := NewFrameSample(157, math.Pi/2, geom.Vec(0, 3, 0), geom.Vec(-1, 0, 0))

	if s.Tick != 157 {
		t.Errorf("tick = %d, want 157", s.Tick)
	}
	if math.Abs(s.AngleDeg-90) > 1e-9 {
		t.Errorf("angle_deg = %v, want 90", s.AngleDeg)
	}
	if s.MarkerY != 3 || s.TangentX != -1 {
		t.Errorf("unexpected vectors: %+v", s)
	}
}
