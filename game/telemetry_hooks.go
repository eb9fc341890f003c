package game

import (
	"log/slog"

	"github.com/pthm-cable/handrule/scene"
	"github.com/pthm-cable/handrule/telemetry"
)

// frameFlushSize bounds how many frame samples are buffered before writing.
const frameFlushSize = 256

// recordTick runs after every driver tick.
func (g *Game) recordTick(prev, angle float64) {
	g.tick++

	if g.outputManager != nil {
		r := g.scene.Params().Radius
		g.frames = append(g.frames, telemetry.NewFrameSample(
			g.tick, angle, scene.MarkerPosition(angle, r), scene.TangentDirection(angle),
		))
		if len(g.frames) >= frameFlushSize {
			g.writeFrames()
		}
	}

	for _, bm := range g.bookmarkDetector.CheckTick(g.tick, prev, angle) {
		g.emitBookmark(bm)
	}

	g.flushTelemetry()
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.driver.Angle(), g.driver.Ticks(), len(g.scene.Skipped()))
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		g.writeFrames()
	}

	for _, bm := range g.bookmarkDetector.CheckWindow(stats) {
		g.emitBookmark(bm)
	}
}

// emitBookmark logs and persists a bookmark.
func (g *Game) emitBookmark(bm telemetry.Bookmark) {
	if g.logStats {
		bm.LogBookmark()
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// writeFrames writes and clears the buffered frame samples.
func (g *Game) writeFrames() {
	if g.outputManager == nil || len(g.frames) == 0 {
		return
	}
	if err := g.outputManager.WriteFrames(g.frames); err != nil {
		slog.Error("failed to write frames", "error", err)
	}
	g.frames = g.frames[:0]
}

// recordEvent counts a playback event and logs it when stats logging is on.
func (g *Game) recordEvent(e telemetry.EventType) {
	g.collector.RecordEvent(e)
	if g.logStats {
		slog.Info("event", "type", e.String(), "tick", g.tick)
	}
}
