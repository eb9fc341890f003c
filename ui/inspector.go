package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/geom"
)

// InspectorData holds the live vectors shown in the inspector panel.
type InspectorData struct {
	Angle         float64
	Tick          int64
	Radius        float64
	Marker        geom.Point3
	Tangent       geom.Point3
	AngularLength float64
	MotionColor   rl.Color
	AngularColor  rl.Color
}

// InspectorSections describes the inspector content. Getters take an
// InspectorData.
func InspectorSections() []SectionDescriptor {
	get := func(data any) InspectorData { return data.(InspectorData) }

	return []SectionDescriptor{
		{
			ID:    "rotation",
			Title: "Rotation",
			Fields: []FieldDescriptor{
				{ID: "tick", Label: "Tick", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%d", get(d).Tick)
				}},
				{ID: "angle_deg", Label: "Angle", Widget: WidgetText, Format: "%.1f deg", Getter: func(d any) float32 {
					return float32(get(d).Angle * 180 / math.Pi)
				}},
				{ID: "turn", Label: "Turn", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float32 {
					return float32(get(d).Angle / (2 * math.Pi))
				}},
			},
		},
		{
			ID:    "marker",
			Title: "Marker (x/r, y/r)",
			Fields: []FieldDescriptor{
				{ID: "marker_x", Label: "x", Widget: WidgetCenteredBar, Range: CenteredRange(), Getter: func(d any) float32 {
					return normalized(get(d).Marker.X, get(d).Radius)
				}},
				{ID: "marker_y", Label: "y", Widget: WidgetCenteredBar, Range: CenteredRange(), Getter: func(d any) float32 {
					return normalized(get(d).Marker.Y, get(d).Radius)
				}},
			},
		},
		{
			ID:    "velocity",
			Title: "Velocity Direction",
			Fields: []FieldDescriptor{
				{ID: "tangent_x", Label: "x", Widget: WidgetCenteredBar, Range: CenteredRange(), Getter: func(d any) float32 {
					return float32(get(d).Tangent.X)
				}},
				{ID: "tangent_y", Label: "y", Widget: WidgetCenteredBar, Range: CenteredRange(), Getter: func(d any) float32 {
					return float32(get(d).Tangent.Y)
				}},
				{ID: "motion_color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color {
					return get(d).MotionColor
				}},
			},
		},
		{
			ID:    "angular",
			Title: "Angular Displacement",
			Fields: []FieldDescriptor{
				{ID: "axis", Label: "Axis", Widget: WidgetText, TextGetter: func(any) string {
					return "+z (counterclockwise)"
				}},
				{ID: "length", Label: "Length", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float32 {
					return float32(get(d).AngularLength)
				}},
				{ID: "angular_color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color {
					return get(d).AngularColor
				}},
			},
		},
	}
}

func normalized(v, r float64) float32 {
	if r == 0 {
		return 0
	}
	return float32(v / r)
}

// Inspector renders the vector inspection panel.
type Inspector struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
	visible  bool
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		sections: InspectorSections(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Toggle switches panel visibility.
func (ins *Inspector) Toggle() bool {
	ins.visible = !ins.visible
	return ins.visible
}

// IsVisible returns whether the panel is shown.
func (ins *Inspector) IsVisible() bool {
	return ins.visible
}

// Draw renders the inspector panel for the given data.
func (ins *Inspector) Draw(data InspectorData) int32 {
	if !ins.visible {
		return ins.y
	}

	r := ins.renderer
	padding := r.Theme.Padding
	contentWidth := ins.width - padding*2
	previewHeight := int32(110)

	panelHeight := padding*2 + previewHeight + 8
	for _, sd := range ins.sections {
		panelHeight += r.SectionHeight(sd, data)
	}
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	y := ins.y + padding
	y = ins.drawTopView(ins.x+padding, y, contentWidth, previewHeight, data)
	y = r.DrawSpacer(y, 8)

	for _, sd := range ins.sections {
		y = r.DrawSection(ins.x+padding, y, sd, data, contentWidth)
	}

	return y
}

// drawTopView renders the circle seen from +z with the marker and its velocity.
func (ins *Inspector) drawTopView(x, y, width, height int32, data InspectorData) int32 {
	rl.DrawRectangle(x, y, width, height, rl.Color{R: 25, G: 30, B: 35, A: 255})
	rl.DrawRectangleLinesEx(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}, 1, rl.Color{R: 50, G: 60, B: 70, A: 255})

	if data.Radius <= 0 {
		return y + height
	}

	cx := float32(x) + float32(width)/2
	cy := float32(y) + float32(height)/2
	scale := float32(height)/2 - 18
	toScreen := func(p geom.Point3, s float64) rl.Vector2 {
		// Screen y grows downward
		return rl.Vector2{X: cx + float32(p.X*s)*scale, Y: cy - float32(p.Y*s)*scale}
	}

	unit := 1 / data.Radius
	rl.DrawCircleLines(int32(cx), int32(cy), scale, rl.Color{R: 200, G: 200, B: 200, A: 128})

	m := toScreen(data.Marker, unit)
	rl.DrawLineV(rl.Vector2{X: cx, Y: cy}, m, data.MotionColor)

	tip := toScreen(geom.Add(data.Marker, geom.Scale(data.Tangent, data.Radius/3)), unit)
	rl.DrawLineV(m, tip, data.MotionColor)
	rl.DrawCircleV(m, 4, data.MotionColor)

	// Rotation axis points out of the screen
	rl.DrawCircleLines(int32(cx), int32(cy), 5, data.AngularColor)
	rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, 2, data.AngularColor)

	return y + height
}
