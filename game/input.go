package game

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/telemetry"
)

// Radians per frame for arrow-key orbiting.
const keyRotateStep = 0.03

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.resetAngle()
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.setSpeed(g.speed - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.setSpeed(g.speed + 1)
	}

	// Panels
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyI) {
		g.inspector.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}

	// Overlay toggles
	for key := int32(rl.KeyOne); key <= int32(rl.KeyEight); key++ {
		if !rl.IsKeyPressed(key) {
			continue
		}
		if layer, enabled, ok := g.overlays.HandleKeyPress(key); ok && g.logStats {
			slog.Info("overlay toggled", "layer", layer.String(), "enabled", enabled)
		}
	}
	if rl.IsKeyPressed(rl.KeyZero) {
		g.overlays.EnableAll()
	}

	// Camera controls
	g.handleCameraInput()
}

// handleResize checks for window resize and repositions panels.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.inspector.SetPosition(w-inspectorWidth-panelMargin, panelMargin)
	g.perfPanel.SetPosition(w-200, h-110)
}

// handleCameraInput processes orbit, pan and zoom controls.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overPanel := g.controls.Contains(mouse.X, mouse.Y, g.overlays)

	// Drags that start over the controls panel belong to raygui
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.rotating = !overPanel
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.rotating = false
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.panning = !overPanel
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		g.panning = false
	}

	delta := rl.GetMouseDelta()
	dx, dy := float64(delta.X), float64(delta.Y)

	if g.rotating && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		speed := g.cfg.Camera.RotateSpeed
		g.camera.Rotate(dx*speed, dy*speed)
	}
	if g.panning && rl.IsMouseButtonDown(rl.MouseButtonRight) {
		// Pan speed scales with distance so the scene tracks the cursor
		scale := g.cfg.Camera.PanSpeed * g.camera.Distance
		g.camera.Pan(dx*scale, dy*scale)
	}

	// Arrow key orbiting
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Rotate(keyRotateStep, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Rotate(-keyRotateStep, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Rotate(0, -keyRotateStep)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Rotate(0, keyRotateStep)
	}

	// Zoom controls: mouse wheel or +/- keys
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		g.camera.ZoomBy(math.Pow(g.cfg.Camera.ZoomStep, float64(wheel)))
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(g.cfg.Camera.ZoomStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(1 / g.cfg.Camera.ZoomStep)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.resetCamera()
	}
}

// togglePause stops or resumes the animation driver.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.driver.Stop()
		g.recordEvent(telemetry.EventPause)
	} else {
		g.driver.Start()
		g.recordEvent(telemetry.EventResume)
	}
}

// resetAngle returns the animation to angle 0.
func (g *Game) resetAngle() {
	g.driver.Reset()
	g.frame = g.scene.Frame(g.driver.Angle())
	g.recordEvent(telemetry.EventResetAngle)
}

// resetCamera restores the initial view.
func (g *Game) resetCamera() {
	g.camera.Reset()
	g.recordEvent(telemetry.EventResetCamera)
}

// setSpeed changes the speed multiplier, clamped to [1, MaxSpeed].
func (g *Game) setSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	if speed > g.cfg.Animation.MaxSpeed {
		speed = g.cfg.Animation.MaxSpeed
	}
	if speed == g.speed {
		return
	}
	g.speed = speed
	g.recordEvent(telemetry.EventSpeedChange)
}
