// Package telemetry provides frame timing, rotation statistics, bookmarks
// and CSV output for the visualizer.
package telemetry

import (
	"math"

	"github.com/pthm-cable/handrule/geom"
)

// EventType identifies playback events.
type EventType uint8

const (
	EventPause EventType = iota
	EventResume
	EventResetAngle
	EventResetCamera
	EventSpeedChange
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventResetAngle:
		return "reset_angle"
	case EventResetCamera:
		return "reset_camera"
	case EventSpeedChange:
		return "speed_change"
	default:
		return "unknown"
	}
}

// FrameSample is one row of frames.csv: the rotation state after a tick.
type FrameSample struct {
	Tick     int64   `csv:"tick"`
	Angle    float64 `csv:"angle"`
	AngleDeg float64 `csv:"angle_deg"`
	MarkerX  float64 `csv:"marker_x"`
	MarkerY  float64 `csv:"marker_y"`
	TangentX float64 `csv:"tangent_x"`
	TangentY float64 `csv:"tangent_y"`
}

// NewFrameSample builds a sample from the rotation state.
func NewFrameSample(tick int64, angle float64, marker, tangent geom.Point3) FrameSample {
	return FrameSample{
		Tick:     tick,
		Angle:    angle,
		AngleDeg: angle * 180 / math.Pi,
		MarkerX:  marker.X,
		MarkerY:  marker.Y,
		TangentX: tangent.X,
		TangentY: tangent.Y,
	}
}
