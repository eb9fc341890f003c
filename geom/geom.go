// Package geom provides the 3D point and vector helpers shared by the scene.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is an immutable point or direction in world space.
type Point3 = r3.Vec

// zeroEpsilon is the length below which a vector is treated as zero.
const zeroEpsilon = 1e-12

// Vec creates a Point3.
func Vec(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Normalize returns the unit vector in the direction of v.
// The zero vector yields NaN components; callers must pass a non-zero v.
func Normalize(v Point3) Point3 {
	return r3.Unit(v)
}

// Scale returns v multiplied by s.
func Scale(v Point3, s float64) Point3 {
	return r3.Scale(s, v)
}

// Add returns v + w.
func Add(v, w Point3) Point3 {
	return r3.Add(v, w)
}

// Sub returns v - w.
func Sub(v, w Point3) Point3 {
	return r3.Sub(v, w)
}

// Length returns the Euclidean length of v.
func Length(v Point3) float64 {
	return r3.Norm(v)
}

// IsZero reports whether v is too short to normalize safely.
func IsZero(v Point3) bool {
	return r3.Norm(v) < zeroEpsilon
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v Point3) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// RotateZ rotates v by angle radians about the +z axis (counter-clockwise
// when viewed from +z).
func RotateZ(v Point3, angle float64) Point3 {
	if angle == 0 {
		return v
	}
	return r3.NewRotation(angle, Vec(0, 0, 1)).Rotate(v)
}

// ApproxEqual reports whether a and b differ by at most tol in every component.
func ApproxEqual(a, b Point3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
