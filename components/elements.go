// Package components defines ECS components for the scene.
package components

import (
	"image/color"

	"github.com/pthm-cable/handrule/geom"
)

// Layer identifies which scene element a drawable belongs to.
type Layer uint8

const (
	LayerAxes     Layer = iota // Coordinate axes and their letters
	LayerCircle                // Sampled rotation circle
	LayerMarker                // Orbiting marker sphere
	LayerRadial                // Origin-to-marker line
	LayerVelocity              // Tangential velocity arrow
	LayerHand                  // Rotating hand assembly
	LayerAngular               // Angular displacement arrow along z
	LayerLabels                // Caption text
	NumLayers
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerAxes:
		return "axes"
	case LayerCircle:
		return "circle"
	case LayerMarker:
		return "marker"
	case LayerRadial:
		return "radial"
	case LayerVelocity:
		return "velocity"
	case LayerHand:
		return "hand"
	case LayerAngular:
		return "angular"
	case LayerLabels:
		return "labels"
	default:
		return "unknown"
	}
}

// Segment is a colored line between two world points.
type Segment struct {
	A, B  geom.Point3
	Color color.RGBA
	Width float32
	Layer Layer
}

// Shape selects the mesh primitive.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCapsule
)

// Mesh is a solid primitive placed in the world.
// Capsules and boxes are aligned to their local Y axis before RotationZ is applied.
type Mesh struct {
	Shape     Shape
	Position  geom.Point3
	RotationZ float64     // Radians about +z
	Size      geom.Point3 // Box extents (width, height, depth)
	Radius    float64     // Sphere and capsule radius
	Length    float64     // Capsule body length, excluding the caps
	Color     color.RGBA
	Layer     Layer
}

// Label is text anchored at a world position.
type Label struct {
	Text     string
	Position geom.Point3
	FontSize float64 // World units; the renderer scales by distance
	Color    color.RGBA
	Layer    Layer
}

// Spin marks a mesh as part of the hand assembly, which turns about +z
// with the animation angle.
type Spin struct{}
