// Package scene composes the right-hand rule scene into a per-frame draw list.
//
// Elements that never change (axes, the sampled circle, captions and the
// hand parts in their rest pose) are stored once as ECS entities. Every
// call to Frame rebuilds the full draw list from those entities plus the
// elements that depend on the current angle.
package scene

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
	"github.com/pthm-cable/handrule/glyph"
)

// DrawList is everything the renderer needs for one frame, in world coordinates.
type DrawList struct {
	Segments []components.Segment
	Meshes   []components.Mesh
	Labels   []components.Label
}

// Filter returns a copy of the list holding only items on visible layers.
func (d DrawList) Filter(visible func(components.Layer) bool) DrawList {
	out := DrawList{
		Segments: make([]components.Segment, 0, len(d.Segments)),
		Meshes:   make([]components.Mesh, 0, len(d.Meshes)),
		Labels:   make([]components.Label, 0, len(d.Labels)),
	}
	for _, s := range d.Segments {
		if visible(s.Layer) {
			out.Segments = append(out.Segments, s)
		}
	}
	for _, m := range d.Meshes {
		if visible(m.Layer) {
			out.Meshes = append(out.Meshes, m)
		}
	}
	for _, l := range d.Labels {
		if visible(l.Layer) {
			out.Labels = append(out.Labels, l)
		}
	}
	return out
}

// Scene holds the static elements and builds frames from an angle.
type Scene struct {
	params Params

	world       *ecs.World
	segMap      *ecs.Map1[components.Segment]
	labelMap    *ecs.Map1[components.Label]
	handMap     *ecs.Map2[components.Mesh, components.Spin]
	segFilter   *ecs.Filter1[components.Segment]
	labelFilter *ecs.Filter1[components.Label]
	handFilter  *ecs.Filter2[components.Mesh, components.Spin]

	numSegments int
	numLabels   int
	numParts    int

	// Glyphs that failed to build, so each is reported once
	skipped map[string]error
}

// New creates a scene and populates its static elements.
func New(params Params) *Scene {
	world := ecs.NewWorld()

	s := &Scene{
		params:      params,
		world:       world,
		segMap:      ecs.NewMap1[components.Segment](world),
		labelMap:    ecs.NewMap1[components.Label](world),
		handMap:     ecs.NewMap2[components.Mesh, components.Spin](world),
		segFilter:   ecs.NewFilter1[components.Segment](world),
		labelFilter: ecs.NewFilter1[components.Label](world),
		handFilter:  ecs.NewFilter2[components.Mesh, components.Spin](world),
		skipped:     make(map[string]error),
	}

	s.spawnAxes()
	s.spawnCircle()
	s.spawnCaptions()
	s.spawnHand()

	return s
}

// Params returns the constants the scene was built from.
func (s *Scene) Params() Params {
	return s.params
}

// spawnAxes adds the three axis lines and their letters.
func (s *Scene) spawnAxes() {
	p := s.params
	axes := []struct {
		dir    geom.Point3
		letter string
		col    color.RGBA
	}{
		{geom.Vec(1, 0, 0), "X", p.Colors.XAxis},
		{geom.Vec(0, 1, 0), "Y", p.Colors.YAxis},
		{geom.Vec(0, 0, 1), "Z", p.Colors.ZAxis},
	}

	for _, axis := range axes {
		seg := components.Segment{
			A:     geom.Scale(axis.dir, -p.AxisLength),
			B:     geom.Scale(axis.dir, p.AxisLength),
			Color: axis.col,
			Width: p.LineWidth,
			Layer: components.LayerAxes,
		}
		s.addSegment(seg)

		s.addLabel(components.Label{
			Text:     axis.letter,
			Position: geom.Scale(axis.dir, p.AxisLength+p.AxisLabelOffset),
			FontSize: p.AxisLabelSize,
			Color:    axis.col,
			Layer:    components.LayerAxes,
		})
	}
}

// spawnCircle adds the sampled rotation path.
func (s *Scene) spawnCircle() {
	points := CirclePoints(s.params.Radius, s.params.CircleSegments)
	for i := 0; i+1 < len(points); i++ {
		s.addSegment(components.Segment{
			A:     points[i],
			B:     points[i+1],
			Color: s.params.Colors.Circle,
			Width: 1,
			Layer: components.LayerCircle,
		})
	}
}

// spawnCaptions adds the explanatory text.
func (s *Scene) spawnCaptions() {
	p := s.params
	s.addLabel(components.Label{
		Text:     CaptionAngular,
		Position: geom.Vec(0, 0, 2.5),
		FontSize: p.CaptionSize,
		Color:    p.Colors.Angular,
		Layer:    components.LayerLabels,
	})
	s.addLabel(components.Label{
		Text:     CaptionRule1,
		Position: geom.Vec(0, -4, 0),
		FontSize: p.RuleTextSize,
		Color:    p.Colors.Text,
		Layer:    components.LayerLabels,
	})
	s.addLabel(components.Label{
		Text:     CaptionRule2,
		Position: geom.Vec(0, -4.5, 0),
		FontSize: p.RuleTextSize,
		Color:    p.Colors.Text,
		Layer:    components.LayerLabels,
	})
}

// spawnHand adds the hand parts in their rest pose.
func (s *Scene) spawnHand() {
	for _, part := range handParts(s.params.Colors.Hand) {
		part := part
		s.handMap.NewEntity(&part, &components.Spin{})
		s.numParts++
	}
}

func (s *Scene) addSegment(seg components.Segment) {
	s.segMap.NewEntity(&seg)
	s.numSegments++
}

func (s *Scene) addLabel(l components.Label) {
	s.labelMap.NewEntity(&l)
	s.numLabels++
}

// Frame builds the complete draw list for the given angle.
func (s *Scene) Frame(angle float64) DrawList {
	p := s.params
	list := DrawList{
		Segments: make([]components.Segment, 0, s.numSegments+9),
		Meshes:   make([]components.Mesh, 0, s.numParts+1),
		Labels:   make([]components.Label, 0, s.numLabels),
	}

	// Static elements
	segQuery := s.segFilter.Query()
	for segQuery.Next() {
		list.Segments = append(list.Segments, *segQuery.Get())
	}
	labelQuery := s.labelFilter.Query()
	for labelQuery.Next() {
		list.Labels = append(list.Labels, *labelQuery.Get())
	}

	// Orbiting marker and its radial line
	marker := MarkerPosition(angle, p.Radius)
	list.Meshes = append(list.Meshes, components.Mesh{
		Shape:    components.ShapeSphere,
		Position: marker,
		Radius:   p.MarkerRadius,
		Color:    p.Colors.Motion,
		Layer:    components.LayerMarker,
	})
	list.Segments = append(list.Segments, components.Segment{
		A:     geom.Vec(0, 0, 0),
		B:     marker,
		Color: p.Colors.Motion,
		Width: p.LineWidth,
		Layer: components.LayerRadial,
	})

	// Tangential velocity
	s.appendArrow(&list, "velocity", marker, TangentDirection(angle),
		p.VelocityArrowLength, p.Colors.Motion, components.LayerVelocity)

	// Hand assembly turned about z
	handQuery := s.handFilter.Query()
	for handQuery.Next() {
		part, _ := handQuery.Get()
		list.Meshes = append(list.Meshes, SpinMesh(*part, angle))
	}

	// Angular displacement along the rotation axis, independent of angle
	s.appendArrow(&list, "angular", geom.Vec(0, 0, 0), geom.Vec(0, 0, 1),
		p.AngularArrowLength, p.Colors.Angular, components.LayerAngular)

	return list
}

// appendArrow adds an arrow's segments, skipping it with a single warning
// when its inputs cannot produce a valid glyph.
func (s *Scene) appendArrow(list *DrawList, name string, origin, dir geom.Point3, length float64, c color.RGBA, layer components.Layer) {
	arrow, err := glyph.Build(origin, dir, length, c)
	if err != nil {
		if _, seen := s.skipped[name]; !seen {
			s.skipped[name] = err
			slog.Warn("skipping arrow glyph", "arrow", name, "length", length, "error", err)
		}
		return
	}
	segs := arrow.Segments(s.params.LineWidth, layer)
	list.Segments = append(list.Segments, segs[:]...)
}

// Skipped returns the arrows that could not be built, keyed by name.
func (s *Scene) Skipped() map[string]error {
	return s.skipped
}

// MarkerPosition returns the point on the circle of radius r at angle.
func MarkerPosition(angle, r float64) geom.Point3 {
	return geom.Vec(r*math.Cos(angle), r*math.Sin(angle), 0)
}

// TangentDirection returns the unit direction of motion along the circle at
// angle, the derivative of MarkerPosition with respect to the angle.
func TangentDirection(angle float64) geom.Point3 {
	return geom.Vec(-math.Sin(angle), math.Cos(angle), 0)
}

// CirclePoints samples a closed circle of radius r in the XY plane. The
// first and last of the segments+1 points coincide.
func CirclePoints(r float64, segments int) []geom.Point3 {
	points := make([]geom.Point3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		points = append(points, geom.Vec(r*math.Cos(theta), r*math.Sin(theta), 0))
	}
	return points
}

// SpinMesh turns a hand part about the z axis through the origin.
func SpinMesh(m components.Mesh, angle float64) components.Mesh {
	m.Position = geom.RotateZ(m.Position, angle)
	m.RotationZ += angle
	return m
}
