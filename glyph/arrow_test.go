package glyph

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

const tol = 1e-9

var orange = color.RGBA{R: 255, G: 153, B: 0, A: 255}

func TestArrowAlongX(t *testing.T) {
	a := New(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0), 2, orange)

	checks := []struct {
		name      string
		got, want geom.Point3
	}{
		{"tip", a.Tip, geom.Vec(2, 0, 0)},
		{"side", a.Side, geom.Vec(0, -1, 0)},
		{"headBase", a.HeadBase, geom.Vec(1.6, 0, 0)},
		{"side1", a.Side1, geom.Vec(1.6, -0.2, 0)},
		{"side2", a.Side2, geom.Vec(1.6, 0.2, 0)},
	}
	for _, c := range checks {
		if !geom.ApproxEqual(c.got, c.want, tol) {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if math.Abs(a.HeadLength-0.4) > tol {
		t.Errorf("expected head length 0.4, got %f", a.HeadLength)
	}
	if math.Abs(a.HeadWidth-0.2) > tol {
		t.Errorf("expected head width 0.2, got %f", a.HeadWidth)
	}
}

func TestShaftEndpoint(t *testing.T) {
	testCases := []struct {
		origin, dir geom.Point3
		length      float64
	}{
		{geom.Vec(0, 0, 0), geom.Vec(0, 0, 1), 2},
		{geom.Vec(3, 0, 0), geom.Vec(0, 5, 0), 1},
		{geom.Vec(-1, 2, 0.5), geom.Vec(1, 1, 1), 0.75},
		{geom.Vec(10, -3, 2), geom.Vec(-0.2, 0.1, -3), 4.5},
		{geom.Vec(0, 0, 0), geom.Vec(1e-3, -2e-3, 0), 10},
	}

	for _, tc := range testCases {
		a := New(tc.origin, tc.dir, tc.length, orange)
		want := geom.Add(tc.origin, geom.Scale(geom.Normalize(tc.dir), tc.length))
		if !geom.ApproxEqual(a.Tip, want, tol) {
			t.Errorf("New(%v, %v, %f): tip %v, want %v", tc.origin, tc.dir, tc.length, a.Tip, want)
		}
	}
}

func TestHeadSymmetry(t *testing.T) {
	dirs := []geom.Point3{
		geom.Vec(1, 0, 0),
		geom.Vec(0, 1, 0),
		geom.Vec(-1, 1, 0.3),
		geom.Vec(0.2, 0.1, 5),
		geom.Vec(0, 0, -1),
	}

	for _, d := range dirs {
		a := New(geom.Vec(1, 1, 1), d, 3, orange)
		off1 := geom.Sub(a.Side1, a.HeadBase)
		off2 := geom.Sub(a.Side2, a.HeadBase)

		if !geom.ApproxEqual(off1, geom.Scale(off2, -1), tol) {
			t.Errorf("dir %v: side offsets not symmetric: %v vs %v", d, off1, off2)
		}
		if math.Abs(geom.Length(off1)-a.HeadWidth) > tol {
			t.Errorf("dir %v: side1 at distance %f, want %f", d, geom.Length(off1), a.HeadWidth)
		}
		if math.Abs(geom.Length(off2)-a.HeadWidth) > tol {
			t.Errorf("dir %v: side2 at distance %f, want %f", d, geom.Length(off2), a.HeadWidth)
		}
	}
}

func TestSideDirectionFallback(t *testing.T) {
	testCases := []struct {
		name string
		d    geom.Point3
		want geom.Point3
	}{
		{"up z", geom.Vec(0, 0, 1), geom.Vec(1, 0, 0)},
		{"down z", geom.Vec(0, 0, -1), geom.Vec(1, 0, 0)},
		{"near z", geom.Normalize(geom.Vec(0.3, 0.1, 1)), geom.Vec(1, 0, 0)},
		{"along x", geom.Vec(1, 0, 0), geom.Vec(0, -1, 0)},
		{"along y", geom.Vec(0, 1, 0), geom.Vec(1, 0, 0)},
		{"diagonal", geom.Normalize(geom.Vec(1, 1, 0)), geom.Normalize(geom.Vec(1, -1, 0))},
		{"tilted", geom.Normalize(geom.Vec(3, 4, 2)), geom.Normalize(geom.Vec(4, -3, 0))},
	}

	for _, tc := range testCases {
		got := SideDirection(tc.d)
		if !geom.ApproxEqual(got, tc.want, tol) {
			t.Errorf("%s: SideDirection(%v) = %v, want %v", tc.name, tc.d, got, tc.want)
		}
	}
}

func TestAngularArrowUsesXSide(t *testing.T) {
	a := New(geom.Vec(0, 0, 0), geom.Vec(0, 0, 1), 2, orange)

	if !geom.ApproxEqual(a.Tip, geom.Vec(0, 0, 2), tol) {
		t.Errorf("expected tip (0,0,2), got %v", a.Tip)
	}
	if !geom.ApproxEqual(a.Side1, geom.Vec(0.2, 0, 1.6), tol) {
		t.Errorf("expected side1 (0.2,0,1.6), got %v", a.Side1)
	}
	if !geom.ApproxEqual(a.Side2, geom.Vec(-0.2, 0, 1.6), tol) {
		t.Errorf("expected side2 (-0.2,0,1.6), got %v", a.Side2)
	}
}

func TestSegmentsOrder(t *testing.T) {
	a := New(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0), 2, orange)
	segs := a.Segments(2, components.LayerVelocity)

	want := [4][2]geom.Point3{
		{a.Origin, a.Tip},
		{a.Tip, a.Side1},
		{a.Tip, a.Side2},
		{a.Side1, a.Side2},
	}
	for i, s := range segs {
		if s.A != want[i][0] || s.B != want[i][1] {
			t.Errorf("segment %d: got %v->%v, want %v->%v", i, s.A, s.B, want[i][0], want[i][1])
		}
		if s.Color != orange || s.Layer != components.LayerVelocity || s.Width != 2 {
			t.Errorf("segment %d: unexpected style %+v", i, s)
		}
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(geom.Vec(0, 0, 0), geom.Vec(0, 0, 0), 1, orange)
	if !errors.Is(err, ErrZeroDirection) {
		t.Errorf("expected ErrZeroDirection, got %v", err)
	}

	for _, length := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Build(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0), length, orange)
		if !errors.Is(err, ErrNonPositiveLength) {
			t.Errorf("length %f: expected ErrNonPositiveLength, got %v", length, err)
		}
	}

	_, err = Build(geom.Vec(math.NaN(), 0, 0), geom.Vec(1, 0, 0), 1, orange)
	if err == nil {
		t.Error("expected error for NaN origin")
	}
}

func TestBuildMatchesNew(t *testing.T) {
	origin := geom.Vec(3, 0, 0)
	dir := geom.Vec(0, 1, 0)

	got, err := Build(origin, dir, 1, orange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != New(origin, dir, 1, orange) {
		t.Errorf("Build and New disagree: %+v", got)
	}
}

func TestUncheckedZeroDirectionIsNaN(t *testing.T) {
	a := New(geom.Vec(0, 0, 0), geom.Vec(0, 0, 0), 1, orange)
	if geom.IsFinite(a.Tip) {
		t.Errorf("expected NaN tip for zero direction, got %v", a.Tip)
	}
}
