package scene

import (
	"math"
	"testing"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

const tol = 1e-9

func countLayer(list DrawList, layer components.Layer) (segments, meshes, labels int) {
	for _, s := range list.Segments {
		if s.Layer == layer {
			segments++
		}
	}
	for _, m := range list.Meshes {
		if m.Layer == layer {
			meshes++
		}
	}
	for _, l := range list.Labels {
		if l.Layer == layer {
			labels++
		}
	}
	return
}

func TestMarkerOnCircle(t *testing.T) {
	r := 3.0
	for i := 0; i < 1000; i++ {
		theta := float64(i) * 0.0137
		p := MarkerPosition(theta, r)
		if math.Abs(p.X*p.X+p.Y*p.Y-r*r) > tol {
			t.Fatalf("angle %f: marker %v not on circle of radius %f", theta, p, r)
		}
		if p.Z != 0 {
			t.Fatalf("angle %f: marker left the XY plane: %v", theta, p)
		}
	}
}

func TestMarkerAndTangentScenarios(t *testing.T) {
	r := 3.0
	testCases := []struct {
		name        string
		angle       float64
		marker, dir geom.Point3
	}{
		{"zero", 0, geom.Vec(r, 0, 0), geom.Vec(0, 1, 0)},
		{"quarter", math.Pi / 2, geom.Vec(0, r, 0), geom.Vec(-1, 0, 0)},
		{"half", math.Pi, geom.Vec(-r, 0, 0), geom.Vec(0, -1, 0)},
	}

	for _, tc := range testCases {
		if got := MarkerPosition(tc.angle, r); !geom.ApproxEqual(got, tc.marker, tol) {
			t.Errorf("%s: marker %v, want %v", tc.name, got, tc.marker)
		}
		if got := TangentDirection(tc.angle); !geom.ApproxEqual(got, tc.dir, tol) {
			t.Errorf("%s: tangent %v, want %v", tc.name, got, tc.dir)
		}
	}
}

func TestTangentPerpendicularToRadius(t *testing.T) {
	for i := 0; i < 100; i++ {
		theta := float64(i) * 0.071
		p := MarkerPosition(theta, 2)
		d := TangentDirection(theta)
		if dot := p.X*d.X + p.Y*d.Y + p.Z*d.Z; math.Abs(dot) > tol {
			t.Errorf("angle %f: tangent not perpendicular to radius (dot %f)", theta, dot)
		}
		if math.Abs(geom.Length(d)-1) > tol {
			t.Errorf("angle %f: tangent not unit length", theta)
		}
	}
}

func TestCirclePoints(t *testing.T) {
	points := CirclePoints(3, 64)
	if len(points) != 65 {
		t.Fatalf("expected 65 points, got %d", len(points))
	}
	if !geom.ApproxEqual(points[0], points[64], tol) {
		t.Errorf("circle not closed: %v vs %v", points[0], points[64])
	}
	for i, p := range points {
		if math.Abs(geom.Length(p)-3) > tol {
			t.Errorf("point %d at radius %f", i, geom.Length(p))
		}
	}
}

func TestStaticElementCounts(t *testing.T) {
	s := New(DefaultParams())
	list := s.Frame(0)

	testCases := []struct {
		layer                    components.Layer
		segments, meshes, labels int
	}{
		{components.LayerAxes, 3, 0, 3},
		{components.LayerCircle, 64, 0, 0},
		{components.LayerMarker, 0, 1, 0},
		{components.LayerRadial, 1, 0, 0},
		{components.LayerVelocity, 4, 0, 0},
		{components.LayerHand, 0, 6, 0},
		{components.LayerAngular, 4, 0, 0},
		{components.LayerLabels, 0, 0, 3},
	}

	for _, tc := range testCases {
		segs, meshes, labels := countLayer(list, tc.layer)
		if segs != tc.segments || meshes != tc.meshes || labels != tc.labels {
			t.Errorf("%s: got %d segments, %d meshes, %d labels; want %d, %d, %d",
				tc.layer, segs, meshes, labels, tc.segments, tc.meshes, tc.labels)
		}
	}
}

func TestFrameVelocityArrow(t *testing.T) {
	params := DefaultParams()
	s := New(params)
	list := s.Frame(math.Pi / 2)

	var shaft *components.Segment
	for i := range list.Segments {
		if list.Segments[i].Layer == components.LayerVelocity {
			shaft = &list.Segments[i]
			break
		}
	}
	if shaft == nil {
		t.Fatal("velocity arrow missing")
	}

	// At 90 degrees the marker is at (0, r, 0) moving in -x
	if !geom.ApproxEqual(shaft.A, geom.Vec(0, params.Radius, 0), tol) {
		t.Errorf("shaft origin %v, want marker position", shaft.A)
	}
	want := geom.Vec(-params.VelocityArrowLength, params.Radius, 0)
	if !geom.ApproxEqual(shaft.B, want, tol) {
		t.Errorf("shaft tip %v, want %v", shaft.B, want)
	}
}

func TestAngularArrowIgnoresAngle(t *testing.T) {
	s := New(DefaultParams())

	collect := func(angle float64) []components.Segment {
		var segs []components.Segment
		for _, seg := range s.Frame(angle).Segments {
			if seg.Layer == components.LayerAngular {
				segs = append(segs, seg)
			}
		}
		return segs
	}

	a := collect(0)
	b := collect(2.1)
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("expected 4 angular segments, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("angular segment %d changed with angle: %v vs %v", i, a[i], b[i])
		}
	}
	if !geom.ApproxEqual(a[0].B, geom.Vec(0, 0, 2), tol) {
		t.Errorf("angular tip %v, want (0,0,2)", a[0].B)
	}
}

func TestHandSpinsAboutZ(t *testing.T) {
	s := New(DefaultParams())
	rest := s.Frame(0)
	turned := s.Frame(math.Pi / 2)

	var restHand, turnedHand []components.Mesh
	for _, m := range rest.Meshes {
		if m.Layer == components.LayerHand {
			restHand = append(restHand, m)
		}
	}
	for _, m := range turned.Meshes {
		if m.Layer == components.LayerHand {
			turnedHand = append(turnedHand, m)
		}
	}
	if len(restHand) != len(turnedHand) {
		t.Fatalf("hand part count changed: %d vs %d", len(restHand), len(turnedHand))
	}

	for i := range restHand {
		want := geom.RotateZ(restHand[i].Position, math.Pi/2)
		if !geom.ApproxEqual(turnedHand[i].Position, want, tol) {
			t.Errorf("part %d at %v, want %v", i, turnedHand[i].Position, want)
		}
		if math.Abs(turnedHand[i].RotationZ-restHand[i].RotationZ-math.Pi/2) > tol {
			t.Errorf("part %d orientation %f, want rest + pi/2", i, turnedHand[i].RotationZ)
		}
		if math.Abs(turnedHand[i].Position.Z-0.5) > tol {
			t.Errorf("part %d left its plane: z=%f", i, turnedHand[i].Position.Z)
		}
	}
}

func TestFrameRebuildsWholesale(t *testing.T) {
	s := New(DefaultParams())
	first := s.Frame(1.0)
	first.Segments[0].Color.R = 1
	first.Meshes[0].Radius = 99

	second := s.Frame(1.0)
	if second.Segments[0].Color.R == 1 || second.Meshes[0].Radius == 99 {
		t.Error("mutating a returned draw list leaked into the next frame")
	}
}

func TestZeroLengthArrowSkipped(t *testing.T) {
	params := DefaultParams()
	params.VelocityArrowLength = 0
	s := New(params)

	list := s.Frame(0.3)
	segs, _, _ := countLayer(list, components.LayerVelocity)
	if segs != 0 {
		t.Errorf("expected velocity arrow to be skipped, got %d segments", segs)
	}
	if _, ok := s.Skipped()["velocity"]; !ok {
		t.Error("expected velocity arrow recorded as skipped")
	}

	// Other elements still draw
	if segs, _, _ := countLayer(list, components.LayerAngular); segs != 4 {
		t.Errorf("expected angular arrow to survive, got %d segments", segs)
	}
}

func TestFilter(t *testing.T) {
	s := New(DefaultParams())
	list := s.Frame(0).Filter(func(l components.Layer) bool {
		return l != components.LayerHand && l != components.LayerLabels
	})

	if _, meshes, _ := countLayer(list, components.LayerHand); meshes != 0 {
		t.Errorf("expected hand filtered out, got %d meshes", meshes)
	}
	if _, _, labels := countLayer(list, components.LayerLabels); labels != 0 {
		t.Errorf("expected captions filtered out, got %d labels", labels)
	}
	if _, meshes, _ := countLayer(list, components.LayerMarker); meshes != 1 {
		t.Errorf("expected marker kept, got %d", meshes)
	}
}
