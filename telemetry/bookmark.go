package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkAxisCrossing BookmarkType = "axis_crossing"
	BookmarkRevolution   BookmarkType = "revolution"
	BookmarkFrameHitch   BookmarkType = "frame_hitch"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// axisNames are the half-axes the marker passes, counterclockwise from +x.
var axisNames = [4]string{"+x", "+y", "-x", "-y"}

// BookmarkDetector detects notable moments in playback.
type BookmarkDetector struct {
	// Rolling history of windows (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// CheckTick reports the half-axes the marker crossed moving from prev to
// angle in one tick. A smaller angle means the rotation wrapped past 2π.
func (bd *BookmarkDetector) CheckTick(tick int64, prev, angle float64) []Bookmark {
	const quarter = math.Pi / 2

	end := angle
	if end < prev {
		end += 2 * math.Pi
	}

	var bookmarks []Bookmark
	first := int(math.Floor(prev/quarter)) + 1
	last := int(math.Floor(end / quarter))
	for q := first; q <= last; q++ {
		idx := q % 4
		if idx == 0 {
			bookmarks = append(bookmarks, Bookmark{
				Type:        BookmarkRevolution,
				Tick:        tick,
				Description: "Marker completed a full turn",
			})
			continue
		}
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkAxisCrossing,
			Tick:        tick,
			Description: fmt.Sprintf("Marker crossed the %s axis", axisNames[idx]),
		})
	}
	return bookmarks
}

// CheckWindow analyzes the latest stats window and returns any triggered bookmarks.
func (bd *BookmarkDetector) CheckWindow(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFrameHitch(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkFrameHitch fires when a window's p90 frame time is more than twice
// the rolling median and slower than 25ms.
func (bd *BookmarkDetector) checkFrameHitch(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 || stats.Frames == 0 {
		return nil
	}

	var sum float64
	var n int
	for _, h := range history {
		if h.Frames > 0 {
			sum += h.FrameMSP50
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	if avg <= 0 {
		return nil
	}

	if stats.FrameMSP90 > avg*2 && stats.FrameMSP90 > 25 {
		return &Bookmark{
			Type:        BookmarkFrameHitch,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("p90 frame %.1fms is %.1fx typical (%.1fms)", stats.FrameMSP90, stats.FrameMSP90/avg, avg),
		}
	}

	return nil
}
