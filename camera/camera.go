// Package camera provides an orbit camera for viewing the 3D scene.
package camera

import (
	"math"

	"github.com/pthm-cable/handrule/geom"
)

// maxPitch keeps the camera just short of the poles so the up vector stays valid.
const maxPitch = math.Pi/2 - 0.01

// Camera orbits a target point on a sphere.
// Yaw turns about the world Y axis, pitch tilts toward it.
type Camera struct {
	// Target is the focal point the camera looks at
	Target geom.Point3

	// Spherical position relative to Target
	Yaw, Pitch, Distance float64

	// Zoom constraints
	MinDistance, MaxDistance float64

	// Initial state for Reset
	initTarget                       geom.Point3
	initYaw, initPitch, initDistance float64
}

// New creates a camera at position looking at target.
// A position equal to target is pushed back along +z by one unit.
func New(position, target geom.Point3, minDistance, maxDistance float64) *Camera {
	offset := geom.Sub(position, target)
	if geom.IsZero(offset) {
		offset = geom.Vec(0, 0, 1)
	}

	dist := geom.Length(offset)
	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(clamp(offset.Y/dist, -1, 1))

	if minDistance <= 0 {
		minDistance = 0.1
	}
	if maxDistance < minDistance {
		maxDistance = minDistance
	}

	c := &Camera{
		Target:      target,
		Yaw:         yaw,
		Pitch:       clamp(pitch, -maxPitch, maxPitch),
		Distance:    clamp(dist, minDistance, maxDistance),
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
	c.initTarget = c.Target
	c.initYaw, c.initPitch, c.initDistance = c.Yaw, c.Pitch, c.Distance
	return c
}

// Position returns the camera position in world coordinates.
func (c *Camera) Position() geom.Point3 {
	return geom.Add(c.Target, geom.Scale(c.forwardOffset(), c.Distance))
}

// forwardOffset is the unit vector from the target to the camera.
func (c *Camera) forwardOffset() geom.Point3 {
	cosP := math.Cos(c.Pitch)
	return geom.Vec(
		cosP*math.Sin(c.Yaw),
		math.Sin(c.Pitch),
		cosP*math.Cos(c.Yaw),
	)
}

// Up returns the world up direction used for the view.
func (c *Camera) Up() geom.Point3 {
	return geom.Vec(0, 1, 0)
}

// Right returns the unit screen-right direction in world space.
func (c *Camera) Right() geom.Point3 {
	return geom.Vec(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
}

// ScreenUp returns the unit screen-up direction in world space.
func (c *Camera) ScreenUp() geom.Point3 {
	sinP := math.Sin(c.Pitch)
	cosP := math.Cos(c.Pitch)
	return geom.Vec(-sinP*math.Sin(c.Yaw), cosP, -sinP*math.Cos(c.Yaw))
}

// Rotate orbits the camera by the given yaw and pitch deltas in radians.
// Positive yaw swings the camera to the left, as when dragging the scene right.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw-dYaw, 2*math.Pi)
	c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Pan moves the target (and camera with it) in the view plane.
// dx and dy are in world units; positive dx moves the view right.
func (c *Camera) Pan(dx, dy float64) {
	move := geom.Add(geom.Scale(c.Right(), -dx), geom.Scale(c.ScreenUp(), dy))
	c.Target = geom.Add(c.Target, move)
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Camera) SetDistance(d float64) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// ZoomBy multiplies the orbit distance by the given factor.
// Factors below 1 move the camera closer.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.SetDistance(c.Distance * factor)
}

// Reset returns the camera to its initial position and target.
func (c *Camera) Reset() {
	c.Target = c.initTarget
	c.Yaw = c.initYaw
	c.Pitch = c.initPitch
	c.Distance = c.initDistance
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
