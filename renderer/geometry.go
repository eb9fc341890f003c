package renderer

import (
	"math"
	"strings"

	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
)

// CapsuleParts returns where to place a capsule's pieces: the base of its
// cylinder (which grows along local +Y) and the centers of its two end caps.
// The capsule is centered on m.Position and turned by m.RotationZ.
func CapsuleParts(m components.Mesh) (base, capA, capB geom.Point3) {
	half := m.Length / 2
	down := geom.RotateZ(geom.Vec(0, -half, 0), m.RotationZ)
	up := geom.RotateZ(geom.Vec(0, half, 0), m.RotationZ)
	base = geom.Add(m.Position, down)
	return base, base, geom.Add(m.Position, up)
}

// LabelPixelSize converts a world-space text height into pixels for a label
// at the given depth in front of a perspective camera.
func LabelPixelSize(worldSize, depth, fovyDeg, screenH float64) float64 {
	if depth <= 0 || fovyDeg <= 0 {
		return 0
	}
	visible := 2 * depth * math.Tan(fovyDeg*math.Pi/360)
	return worldSize / visible * screenH
}

// The built-in raylib font only covers ASCII.
var displayReplacer = strings.NewReplacer("ω", "w")

// DisplayText maps label text onto glyphs the default font can draw.
func DisplayText(s string) string {
	return displayReplacer.Replace(s)
}
