package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

func TestCapsuleParts(t *testing.T) {
	m := components.Mesh{
		Shape:    components.ShapeCapsule,
		Position: geom.Vec(1, 2, 0.5),
		Radius:   0.1,
		Length:   0.8,
	}

	base, capA, capB := CapsuleParts(m)
	if !geom.ApproxEqual(base, geom.Vec(1, 1.6, 0.5), 1e-9) {
		t.Errorf("upright base at %v", base)
	}
	if capA != base {
		t.Errorf("lower cap %v should sit on the base %v", capA, base)
	}
	if !geom.ApproxEqual(capB, geom.Vec(1, 2.4, 0.5), 1e-9) {
		t.Errorf("upright top cap at %v", capB)
	}

	// Turned a quarter, the capsule lies along x
	m.RotationZ = math.Pi / 2
	base, _, capB = CapsuleParts(m)
	if !geom.ApproxEqual(base, geom.Vec(1.4, 2, 0.5), 1e-9) {
		t.Errorf("turned base at %v", base)
	}
	if !geom.ApproxEqual(capB, geom.Vec(0.6, 2, 0.5), 1e-9) {
		t.Errorf("turned top cap at %v", capB)
	}
}

func TestLabelPixelSize(t *testing.T) {
	// With a 90 degree view the visible height at depth d is 2d
	got := LabelPixelSize(0.5, 10, 90, 800)
	if math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20px, got %f", got)
	}

	// Twice as far is half as big
	far := LabelPixelSize(0.5, 20, 90, 800)
	if math.Abs(far-got/2) > 1e-9 {
		t.Errorf("expected %f px, got %f", got/2, far)
	}

	if LabelPixelSize(0.5, -1, 90, 800) != 0 {
		t.Error("expected zero size behind the camera")
	}
}

func TestDisplayText(t *testing.T) {
	if got := DisplayText("Angular Displacement Vector (ω)"); got != "Angular Displacement Vector (w)" {
		t.Errorf("unexpected display text %q", got)
	}
	if got := DisplayText("X"); got != "X" {
		t.Errorf("ASCII text changed: %q", got)
	}
}
