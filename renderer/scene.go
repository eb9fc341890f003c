package renderer

import (
	_ "embed"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/camera"
	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
	"github.com/pthm-cable/handrule/scene"
)

//go:embed shaders/lit.vs
var litVertexShader string

//go:embed shaders/lit.fs
var litFragmentShader string

// Lighting holds the ambient and spot light parameters for solid meshes.
type Lighting struct {
	Ambient       float32
	SpotPosition  geom.Point3
	SpotTarget    geom.Point3
	SpotAngle     float32 // Cone half-angle in radians
	SpotPenumbra  float32 // 0 = hard edge, 1 = fully soft
	SpotIntensity float32
}

// SceneRenderer draws a scene draw list in 3D with a lit shader for meshes
// and screen-space text for labels.
type SceneRenderer struct {
	shader         rl.Shader
	ambientLoc     int32
	lightPosLoc    int32
	lightTargetLoc int32
	spotAngleLoc   int32
	penumbraLoc    int32
	intensityLoc   int32

	sphere   rl.Model
	cube     rl.Model
	cylinder rl.Model

	lighting   Lighting
	fovy       float32
	background color.RGBA

	initialized bool
}

// NewSceneRenderer creates a new scene renderer.
func NewSceneRenderer(fovy float32, lighting Lighting, background color.RGBA) *SceneRenderer {
	return &SceneRenderer{
		lighting:   lighting,
		fovy:       fovy,
		background: background,
	}
}

// Init loads the shader and primitive models (must be called after raylib window is created).
func (r *SceneRenderer) Init() {
	if r.initialized {
		return
	}

	r.shader = rl.LoadShaderFromMemory(litVertexShader, litFragmentShader)
	r.ambientLoc = rl.GetShaderLocation(r.shader, "ambient")
	r.lightPosLoc = rl.GetShaderLocation(r.shader, "lightPos")
	r.lightTargetLoc = rl.GetShaderLocation(r.shader, "lightTarget")
	r.spotAngleLoc = rl.GetShaderLocation(r.shader, "spotAngle")
	r.penumbraLoc = rl.GetShaderLocation(r.shader, "penumbra")
	r.intensityLoc = rl.GetShaderLocation(r.shader, "intensity")

	// Lighting never changes, so set it once
	l := r.lighting
	rl.SetShaderValue(r.shader, r.ambientLoc, []float32{l.Ambient}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.lightPosLoc, vec3Uniform(l.SpotPosition), rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.lightTargetLoc, vec3Uniform(l.SpotTarget), rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.spotAngleLoc, []float32{l.SpotAngle}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.penumbraLoc, []float32{l.SpotPenumbra}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.intensityLoc, []float32{l.SpotIntensity}, rl.ShaderUniformFloat)

	// Unit primitives, scaled per draw
	r.sphere = rl.LoadModelFromMesh(rl.GenMeshSphere(1, 24, 24))
	r.cube = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	r.cylinder = rl.LoadModelFromMesh(rl.GenMeshCylinder(1, 1, 24))
	r.sphere.Materials.Shader = r.shader
	r.cube.Materials.Shader = r.shader
	r.cylinder.Materials.Shader = r.shader

	r.initialized = true
}

// Camera3D converts an orbit camera to a raylib perspective camera.
func (r *SceneRenderer) Camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.NewCamera3D(
		toRL(cam.Position()),
		toRL(cam.Target),
		toRL(cam.Up()),
		r.fovy,
		rl.CameraPerspective,
	)
}

// Draw renders the draw list to the current target. The caller owns
// BeginDrawing/EndDrawing and clearing.
func (r *SceneRenderer) Draw(list scene.DrawList, cam *camera.Camera) {
	if !r.initialized {
		r.Init()
	}

	cam3D := r.Camera3D(cam)
	rl.BeginMode3D(cam3D)
	r.drawMeshes(list.Meshes)
	r.drawSegments(list.Segments)
	rl.EndMode3D()

	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	r.drawLabels(list.Labels, cam, cam3D, int32(w), int32(h))
}

// drawSegments draws line segments, batching by width.
func (r *SceneRenderer) drawSegments(segments []components.Segment) {
	width := float32(-1)
	for _, s := range segments {
		if s.Width != width {
			rl.DrawRenderBatchActive()
			rl.SetLineWidth(s.Width)
			width = s.Width
		}
		rl.DrawLine3D(toRL(s.A), toRL(s.B), s.Color)
	}
	rl.DrawRenderBatchActive()
	rl.SetLineWidth(1)
}

// drawMeshes draws the solid primitives with the lit shader.
func (r *SceneRenderer) drawMeshes(meshes []components.Mesh) {
	zAxis := rl.NewVector3(0, 0, 1)
	for _, m := range meshes {
		deg := float32(m.RotationZ * 180 / math.Pi)

		switch m.Shape {
		case components.ShapeSphere:
			s := float32(m.Radius)
			rl.DrawModelEx(r.sphere, toRL(m.Position), zAxis, deg, rl.NewVector3(s, s, s), m.Color)

		case components.ShapeBox:
			rl.DrawModelEx(r.cube, toRL(m.Position), zAxis, deg, toRL(m.Size), m.Color)

		case components.ShapeCapsule:
			base, capA, capB := CapsuleParts(m)
			rad := float32(m.Radius)
			rl.DrawModelEx(r.cylinder, toRL(base), zAxis, deg, rl.NewVector3(rad, float32(m.Length), rad), m.Color)
			rl.DrawModelEx(r.sphere, toRL(capA), zAxis, deg, rl.NewVector3(rad, rad, rad), m.Color)
			rl.DrawModelEx(r.sphere, toRL(capB), zAxis, deg, rl.NewVector3(rad, rad, rad), m.Color)
		}
	}
}

// drawLabels projects labels to screen space and draws them centered.
func (r *SceneRenderer) drawLabels(labels []components.Label, cam *camera.Camera, cam3D rl.Camera3D, w, h int32) {
	camPos := cam.Position()
	forward := geom.Normalize(geom.Sub(cam.Target, camPos))

	for _, l := range labels {
		offset := geom.Sub(l.Position, camPos)
		depth := offset.X*forward.X + offset.Y*forward.Y + offset.Z*forward.Z
		if depth <= 0 {
			continue // Behind the camera
		}

		px := LabelPixelSize(l.FontSize, depth, float64(r.fovy), float64(h))
		if px < 6 {
			continue
		}
		size := int32(px)
		text := DisplayText(l.Text)

		pos := rl.GetWorldToScreenEx(toRL(l.Position), cam3D, w, h)
		tw := rl.MeasureText(text, size)
		rl.DrawText(text, int32(pos.X)-tw/2, int32(pos.Y)-size/2, size, l.Color)
	}
}

// Capture renders the draw list offscreen and returns the image. The caller
// must unload the returned image.
func (r *SceneRenderer) Capture(list scene.DrawList, cam *camera.Camera, w, h int32) *rl.Image {
	if !r.initialized {
		r.Init()
	}

	target := rl.LoadRenderTexture(w, h)
	defer rl.UnloadRenderTexture(target)

	cam3D := r.Camera3D(cam)

	rl.BeginTextureMode(target)
	rl.ClearBackground(r.background)
	rl.BeginMode3D(cam3D)
	r.drawMeshes(list.Meshes)
	r.drawSegments(list.Segments)
	rl.EndMode3D()
	r.drawLabels(list.Labels, cam, cam3D, w, h)
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img) // Render textures are stored bottom-up
	return img
}

// Background returns the clear color.
func (r *SceneRenderer) Background() color.RGBA {
	return r.background
}

// Unload frees resources.
func (r *SceneRenderer) Unload() {
	if r.initialized {
		rl.UnloadModel(r.sphere)
		rl.UnloadModel(r.cube)
		rl.UnloadModel(r.cylinder)
		rl.UnloadShader(r.shader)
		r.initialized = false
	}
}

func toRL(p geom.Point3) rl.Vector3 {
	return rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z))
}

func vec3Uniform(p geom.Point3) []float32 {
	return []float32{float32(p.X), float32(p.Y), float32(p.Z)}
}
