package scene

import (
	"image/color"
	"math"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

// Caption text shown under the scene and above the angular arrow.
const (
	CaptionAngular = "Angular Displacement Vector (ω)"
	CaptionRule1   = "Right Hand Rule: Curl fingers in direction of rotation,"
	CaptionRule2   = "thumb points in direction of angular displacement vector"
)

// Colors holds the per-element colors.
type Colors struct {
	XAxis   color.RGBA
	YAxis   color.RGBA
	ZAxis   color.RGBA
	Circle  color.RGBA
	Motion  color.RGBA // Marker, radial line and velocity arrow
	Angular color.RGBA
	Hand    color.RGBA
	Text    color.RGBA
}

// Params holds the constants the scene is built from.
type Params struct {
	Radius              float64
	AxisLength          float64
	AxisLabelOffset     float64
	AxisLabelSize       float64
	CircleSegments      int
	MarkerRadius        float64
	VelocityArrowLength float64
	AngularArrowLength  float64
	LineWidth           float32
	CaptionSize         float64
	RuleTextSize        float64
	Colors              Colors
}

// DefaultParams returns the classic right-hand rule layout.
func DefaultParams() Params {
	return Params{
		Radius:              3,
		AxisLength:          5,
		AxisLabelOffset:     0.3,
		AxisLabelSize:       0.5,
		CircleSegments:      64,
		MarkerRadius:        0.2,
		VelocityArrowLength: 1,
		AngularArrowLength:  2,
		LineWidth:           2,
		CaptionSize:         0.5,
		RuleTextSize:        0.4,
		Colors: Colors{
			XAxis:   color.RGBA{R: 255, A: 255},
			YAxis:   color.RGBA{G: 128, A: 255},
			ZAxis:   color.RGBA{B: 255, A: 255},
			Circle:  color.RGBA{R: 255, G: 255, B: 255, A: 128},
			Motion:  color.RGBA{R: 255, G: 153, A: 255},
			Angular: color.RGBA{G: 255, B: 255, A: 255},
			Hand:    color.RGBA{R: 255, G: 204, B: 170, A: 255},
			Text:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}
}

// handParts returns the hand assembly in its unrotated pose: a palm block,
// a tilted thumb and four upright fingers, all lifted off the rotation plane.
func handParts(c color.RGBA) []components.Mesh {
	parts := []components.Mesh{
		{
			Shape:    components.ShapeBox,
			Position: geom.Vec(0, 0, 0.5),
			Size:     geom.Vec(1, 1.2, 0.3),
		},
		{
			Shape:     components.ShapeCapsule,
			Position:  geom.Vec(-0.6, 0, 0.5),
			RotationZ: math.Pi / 4,
			Radius:    0.15,
			Length:    0.6,
		},
	}
	for i := 0; i < 4; i++ {
		parts = append(parts, components.Mesh{
			Shape:    components.ShapeCapsule,
			Position: geom.Vec(-0.3+float64(i)*0.2, 0.8, 0.5),
			Radius:   0.1,
			Length:   0.8,
		})
	}
	for i := range parts {
		parts[i].Color = c
		parts[i].Layer = components.LayerHand
	}
	return parts
}
