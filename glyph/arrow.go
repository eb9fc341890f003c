// Package glyph builds line-segment arrows used to depict vectors in the scene.
package glyph

import (
	"errors"
	"image/color"
	"math"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

// Arrow head proportions.
const (
	HeadRatio          = 0.2 // Head length as a fraction of total length
	WidthRatio         = 0.5 // Head half-width as a fraction of head length
	ParallelZThreshold = 0.9 // |d.z| above this uses the fixed X side direction
)

var (
	ErrZeroDirection      = errors.New("glyph: zero-length direction")
	ErrNonPositiveLength  = errors.New("glyph: length must be positive")
	errNonFiniteArguments = errors.New("glyph: non-finite origin or direction")
)

// Arrow is a shaft plus a flat triangular head.
type Arrow struct {
	Origin     geom.Point3
	Direction  geom.Point3 // Unit direction
	Tip        geom.Point3
	HeadBase   geom.Point3
	Side       geom.Point3 // Unit side direction used for the head
	Side1      geom.Point3
	Side2      geom.Point3
	HeadLength float64
	HeadWidth  float64
	Color      color.RGBA
}

// New computes an arrow from origin along direction with the given length.
// direction need not be normalized but must be non-zero; a zero direction
// produces NaN points. Use Build for a checked variant.
func New(origin, direction geom.Point3, length float64, c color.RGBA) Arrow {
	d := geom.Normalize(direction)
	tip := geom.Add(origin, geom.Scale(d, length))

	headLength := length * HeadRatio
	headWidth := headLength * WidthRatio

	side := SideDirection(d)

	headBase := geom.Sub(tip, geom.Scale(d, headLength))
	return Arrow{
		Origin:     origin,
		Direction:  d,
		Tip:        tip,
		HeadBase:   headBase,
		Side:       side,
		Side1:      geom.Add(headBase, geom.Scale(side, headWidth)),
		Side2:      geom.Sub(headBase, geom.Scale(side, headWidth)),
		HeadLength: headLength,
		HeadWidth:  headWidth,
		Color:      c,
	}
}

// Build is New with its preconditions checked.
func Build(origin, direction geom.Point3, length float64, c color.RGBA) (Arrow, error) {
	if !geom.IsFinite(origin) || !geom.IsFinite(direction) {
		return Arrow{}, errNonFiniteArguments
	}
	if geom.IsZero(direction) {
		return Arrow{}, ErrZeroDirection
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return Arrow{}, ErrNonPositiveLength
	}
	return New(origin, direction, length, c), nil
}

// SideDirection returns the head's side direction for the unit direction d.
// Directions close to the z axis fall back to +X, since the in-plane
// perpendicular degenerates there.
func SideDirection(d geom.Point3) geom.Point3 {
	if math.Abs(d.Z) > ParallelZThreshold {
		return geom.Vec(1, 0, 0)
	}
	return geom.Normalize(geom.Vec(d.Y, -d.X, 0))
}

// Segments returns the shaft, both head strokes and the head base, in that order.
func (a Arrow) Segments(width float32, layer components.Layer) [4]components.Segment {
	seg := func(p, q geom.Point3) components.Segment {
		return components.Segment{A: p, B: q, Color: a.Color, Width: width, Layer: layer}
	}
	return [4]components.Segment{
		seg(a.Origin, a.Tip),
		seg(a.Tip, a.Side1),
		seg(a.Tip, a.Side2),
		seg(a.Side1, a.Side2),
	}
}
