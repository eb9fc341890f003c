package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is what the controls panel displays.
type ControlsState struct {
	Paused   bool
	Speed    int
	MaxSpeed int
}

// ControlsAction reports what the user did in the panel this frame.
type ControlsAction struct {
	TogglePause bool
	ResetCamera bool
	ResetAngle  bool
	Speed       int // Requested speed, equal to the state's when unchanged
}

// ControlsPanel renders the left-side raygui panel with playback buttons and
// overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point is over the visible panel, so
// camera drags starting there can be ignored.
func (c *ControlsPanel) Contains(px, py float32, overlays *OverlayRegistry) bool {
	if !c.visible {
		return false
	}
	h := c.PanelHeight(overlays)
	return px >= float32(c.x) && px <= float32(c.x+c.width) &&
		py >= float32(c.y) && py <= float32(c.y+h)
}

// PanelHeight returns the panel height for the registered overlays.
func (c *ControlsPanel) PanelHeight(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	rowHeight := t.LineHeight + 6

	// Title, pause button, speed label and slider, reset buttons
	h := t.Padding*2 + t.LineHeight + 4 + rowHeight*4 + 8
	for _, cat := range overlays.Categories() {
		h += t.LineHeight + int32(len(overlays.ByCategory(cat)))*rowHeight + 4
	}
	return h
}

// Draw renders the controls panel and returns the requested actions.
// Overlay checkboxes update the registry directly.
func (c *ControlsPanel) Draw(state ControlsState, overlays *OverlayRegistry) ControlsAction {
	action := ControlsAction{Speed: state.Speed}
	if !c.visible {
		return action
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	rowHeight := lineHeight + 6
	innerW := float32(c.width - padding*2)

	r.DrawPanel(c.x, c.y, c.width, c.PanelHeight(overlays))

	x := float32(c.x + padding)
	y := c.y + padding

	rl.DrawText("Controls", int32(x), y, 16, rl.White)
	y += lineHeight + 4

	// Playback
	pauseLabel := "Pause [Space]"
	if state.Paused {
		pauseLabel = "Resume [Space]"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: innerW, Height: float32(lineHeight + 2)}, pauseLabel) {
		action.TogglePause = true
	}
	y += rowHeight

	maxSpeed := state.MaxSpeed
	if maxSpeed < 1 {
		maxSpeed = 1
	}
	rl.DrawText(fmt.Sprintf("Speed: %dx", state.Speed), int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
	y += rowHeight
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: x + 12, Y: float32(y), Width: innerW - 36, Height: float32(lineHeight)},
		"1", fmt.Sprintf("%d", maxSpeed),
		float32(state.Speed), 1, float32(maxSpeed),
	)
	action.Speed = SnapSpeed(newSpeed, maxSpeed)
	y += rowHeight

	half := (innerW - 6) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: half, Height: float32(lineHeight + 2)}, "Reset View") {
		action.ResetCamera = true
	}
	if gui.Button(rl.Rectangle{X: x + half + 6, Y: float32(y), Width: half, Height: float32(lineHeight + 2)}, "Reset Angle") {
		action.ResetAngle = true
	}
	y += rowHeight + 8

	// Overlays by category
	for _, category := range overlays.Categories() {
		rl.DrawText(categoryLabel(category), int32(x), y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			enabled := overlays.IsEnabled(desc.Layer)
			box := rl.Rectangle{X: x, Y: float32(y), Width: float32(lineHeight - 2), Height: float32(lineHeight - 2)}
			if checked := gui.CheckBox(box, desc.Name, enabled); checked != enabled {
				overlays.SetEnabled(desc.Layer, checked)
			}

			if desc.KeyLabel != "" {
				keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
				keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
				rl.DrawText(keyText, int32(x+innerW)-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
			}
			y += rowHeight
		}
		y += 4
	}

	return action
}

// SnapSpeed rounds a slider value to a whole speed within [1, maxSpeed].
func SnapSpeed(v float32, maxSpeed int) int {
	s := int(v + 0.5)
	if s < 1 {
		return 1
	}
	if s > maxSpeed {
		return maxSpeed
	}
	return s
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "reference":
		return "Reference"
	case "motion":
		return "Motion"
	case "rule":
		return "Right-Hand Rule"
	default:
		return cat
	}
}
