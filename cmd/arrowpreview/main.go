// Arrow glyph preview tool - interactive arrow construction with sliders.
//
// Usage: go run ./cmd/arrowpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/camera"
	"github.com/pthm-cable/handrule/components"
	"github.com/pthm-cable/handrule/geom"
	"github.com/pthm-cable/handrule/glyph"
	"github.com/pthm-cable/handrule/renderer"
	"github.com/pthm-cable/handrule/scene"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	panelWidth   = 300
	viewWidth    = windowWidth - panelWidth
)

// ArrowParams holds the glyph inputs.
type ArrowParams struct {
	DirX, DirY, DirZ float32
	Length           float32
}

var (
	arrowColor = color.RGBA{R: 255, G: 153, A: 255}
	sideColor  = color.RGBA{R: 200, G: 80, B: 200, A: 255}
	axisColor  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

func main() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Arrow Glyph Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := ArrowParams{DirX: 1, DirY: 0.5, DirZ: 0, Length: 2}

	cam := camera.New(geom.Vec(4, 3, 6), geom.Vec(0, 0, 0), 1, 30)
	r := renderer.NewSceneRenderer(45, renderer.Lighting{Ambient: 1}, color.RGBA{R: 245, G: 245, B: 245, A: 255})
	r.Init()
	defer r.Unload()

	for !rl.WindowShouldClose() {
		// Orbit only inside the view area
		mouse := rl.GetMousePosition()
		if mouse.X > panelWidth && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.GetMouseDelta()
			cam.Rotate(float64(d.X)*0.01, float64(d.Y)*0.01)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1 - float64(wheel)*0.1)
		}

		dir := geom.Vec(float64(params.DirX), float64(params.DirY), float64(params.DirZ))
		arrow, err := glyph.Build(geom.Vec(0, 0, 0), dir, float64(params.Length), arrowColor)

		if rl.IsKeyPressed(rl.KeyP) && err == nil {
			printArrow(arrow)
		}

		rl.BeginDrawing()
		rl.ClearBackground(r.Background())

		rl.BeginScissorMode(panelWidth, 0, viewWidth, windowHeight)
		r.Draw(previewList(arrow, err), cam)
		rl.EndScissorMode()

		drawPanel(&params, arrow, err)

		rl.EndDrawing()
	}
}

// previewList builds the axes plus the arrow and its side direction.
func previewList(a glyph.Arrow, err error) scene.DrawList {
	var list scene.DrawList
	for _, axis := range []geom.Point3{geom.Vec(1, 0, 0), geom.Vec(0, 1, 0), geom.Vec(0, 0, 1)} {
		list.Segments = append(list.Segments, components.Segment{
			A: geom.Scale(axis, -3), B: geom.Scale(axis, 3), Color: axisColor, Width: 1,
		})
	}
	list.Labels = append(list.Labels,
		components.Label{Text: "X", Position: geom.Vec(3.3, 0, 0), FontSize: 0.4, Color: axisColor},
		components.Label{Text: "Y", Position: geom.Vec(0, 3.3, 0), FontSize: 0.4, Color: axisColor},
		components.Label{Text: "Z", Position: geom.Vec(0, 0, 3.3), FontSize: 0.4, Color: axisColor},
	)
	if err != nil {
		return list
	}

	for _, s := range a.Segments(2, components.LayerVelocity) {
		list.Segments = append(list.Segments, s)
	}
	list.Segments = append(list.Segments, components.Segment{
		A: a.HeadBase, B: geom.Add(a.HeadBase, geom.Scale(a.Side, 0.5)), Color: sideColor, Width: 1,
	})
	return list
}

// drawPanel draws the sliders and the computed points.
func drawPanel(params *ArrowParams, a glyph.Arrow, err error) {
	rl.DrawRectangle(0, 0, panelWidth, windowHeight, rl.Color{R: 230, G: 230, B: 230, A: 255})

	x := float32(15)
	y := float32(10)
	rl.DrawText("Arrow Parameters", int32(x), int32(y), 20, rl.DarkGray)
	y += 35

	slider := func(label string, v *float32, min, max float32) {
		rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
		y += 18
		*v = gui.SliderBar(
			rl.Rectangle{X: x + 25, Y: y, Width: panelWidth - 110, Height: 20},
			fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
			*v, min, max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", *v), int32(x+panelWidth-75), int32(y+2), 16, rl.DarkGray)
		y += 32
	}
	slider("Direction x", &params.DirX, -1, 1)
	slider("Direction y", &params.DirY, -1, 1)
	slider("Direction z", &params.DirZ, -1, 1)
	slider("Length", &params.Length, 0, 5)

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 130, Height: 24}, "Along +z") {
		params.DirX, params.DirY, params.DirZ = 0, 0, 1
	}
	if gui.Button(rl.Rectangle{X: x + 140, Y: y, Width: 130, Height: 24}, "In plane") {
		params.DirX, params.DirY, params.DirZ = 1, 0.5, 0
	}
	y += 40

	if err != nil {
		rl.DrawText(err.Error(), int32(x), int32(y), 14, rl.Red)
		return
	}

	lines := []string{
		"tip       " + fmtPoint(a.Tip),
		"head base " + fmtPoint(a.HeadBase),
		"side      " + fmtPoint(a.Side),
		"side 1    " + fmtPoint(a.Side1),
		"side 2    " + fmtPoint(a.Side2),
		fmt.Sprintf("head %.3f x %.3f", a.HeadLength, a.HeadWidth),
		"",
		"P: print points | Drag: orbit",
	}
	for _, line := range lines {
		rl.DrawText(line, int32(x), int32(y), 14, rl.DarkGray)
		y += 18
	}
}

func printArrow(a glyph.Arrow) {
	fmt.Printf("origin=%s dir=%s tip=%s side1=%s side2=%s\n",
		fmtPoint(a.Origin), fmtPoint(a.Direction), fmtPoint(a.Tip), fmtPoint(a.Side1), fmtPoint(a.Side2))
}

func fmtPoint(p geom.Point3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}
