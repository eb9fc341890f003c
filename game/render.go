package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/scene"
	"github.com/pthm-cable/handrule/telemetry"
	"github.com/pthm-cable/handrule/ui"
)

const controlsLegend = "Drag: Orbit | Right-drag: Pan | Wheel: Zoom | SPACE: Pause | R: Reset | < >: Speed | 1-8: Overlays | TAB: Panel | I: Inspector | P: Perf"

// Draw renders the current frame. Must follow Update.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(g.renderer.Background())

	g.renderer.Draw(g.frame.Filter(g.overlays.IsEnabled), g.camera)
	g.drawUI()

	rl.EndDrawing()

	g.perfCollector.EndFrame()
	g.perfCollector.RecordPresent()
}

// drawUI draws the HUD and panels on top of the scene.
func (g *Game) drawUI() {
	g.hud.Draw(ui.HUDData{
		Title:         g.cfg.Screen.Title,
		Angle:         g.driver.Angle(),
		Tick:          g.tick,
		Speed:         g.speed,
		FPS:           rl.GetFPS(),
		Paused:        g.paused,
		SkippedGlyphs: len(g.scene.Skipped()),
	})

	action := g.controls.Draw(ui.ControlsState{
		Paused:   g.paused,
		Speed:    g.speed,
		MaxSpeed: g.cfg.Animation.MaxSpeed,
	}, g.overlays)
	g.applyControls(action)

	angle := g.driver.Angle()
	params := g.scene.Params()
	g.inspector.Draw(ui.InspectorData{
		Angle:         angle,
		Tick:          g.tick,
		Radius:        params.Radius,
		Marker:        scene.MarkerPosition(angle, params.Radius),
		Tangent:       scene.TangentDirection(angle),
		AngularLength: params.AngularArrowLength,
		MotionColor:   params.Colors.Motion,
		AngularColor:  params.Colors.Angular,
	})

	if g.showPerf {
		stats := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseTimes: stats.PhaseAvg,
			Total:      totalDuration(stats.PhaseAvg),
		}, sortedPhases(stats.PhaseAvg))
	}

	if hidden := g.overlays.HiddenLayers(); len(hidden) > 0 {
		rl.DrawText(fmt.Sprintf("%d overlay(s) hidden, 0 shows all", len(hidden)),
			10, g.screenHeight-45, 14, rl.Gray)
	}

	g.hud.DrawControls(g.screenWidth, g.screenHeight, controlsLegend)
}

// applyControls applies the actions requested through the controls panel.
func (g *Game) applyControls(action ui.ControlsAction) {
	if action.TogglePause {
		g.togglePause()
	}
	if action.ResetCamera {
		g.resetCamera()
	}
	if action.ResetAngle {
		g.resetAngle()
	}
	g.setSpeed(action.Speed)
}
