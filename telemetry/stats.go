package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	AnimTimeSec     float64 `csv:"anim_time"`

	// Rotation state at window end
	Angle       float64 `csv:"angle"`
	Revolutions int64   `csv:"revolutions"`

	// Playback events during window
	Pauses       int `csv:"pauses"`
	AngleResets  int `csv:"angle_resets"`
	CameraResets int `csv:"camera_resets"`
	SpeedChanges int `csv:"speed_changes"`

	// Frame time distribution in milliseconds
	Frames      int     `csv:"frames"`
	FrameMSMean float64 `csv:"frame_ms_mean"`
	FrameMSP10  float64 `csv:"frame_ms_p10"`
	FrameMSP50  float64 `csv:"frame_ms_p50"`
	FrameMSP90  float64 `csv:"frame_ms_p90"`

	// Arrows that could not be built so far
	SkippedGlyphs int `csv:"skipped_glyphs"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistribution calculates mean and percentiles from values.
func ComputeDistribution(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("anim_time", s.AnimTimeSec),
		slog.Float64("angle", s.Angle),
		slog.Int64("revolutions", s.Revolutions),
		slog.Int("pauses", s.Pauses),
		slog.Int("angle_resets", s.AngleResets),
		slog.Int("camera_resets", s.CameraResets),
		slog.Int("speed_changes", s.SpeedChanges),
		slog.Int("frames", s.Frames),
		slog.Float64("frame_ms_mean", s.FrameMSMean),
		slog.Float64("frame_ms_p10", s.FrameMSP10),
		slog.Float64("frame_ms_p50", s.FrameMSP50),
		slog.Float64("frame_ms_p90", s.FrameMSP90),
		slog.Int("skipped_glyphs", s.SkippedGlyphs),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"anim_time", s.AnimTimeSec,
		"angle", s.Angle,
		"revolutions", s.Revolutions,
		"pauses", s.Pauses,
		"angle_resets", s.AngleResets,
		"camera_resets", s.CameraResets,
		"speed_changes", s.SpeedChanges,
		"frames", s.Frames,
		"frame_ms_mean", s.FrameMSMean,
		"frame_ms_p50", s.FrameMSP50,
		"frame_ms_p90", s.FrameMSP90,
		"skipped_glyphs", s.SkippedGlyphs,
	)
}
