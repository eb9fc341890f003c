// Package game wires the animation driver, scene, camera and renderer into
// the interactive visualizer loop.
package game

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/animation"
	"github.com/pthm-cable/handrule/camera"
	"github.com/pthm-cable/handrule/config"
	"github.com/pthm-cable/handrule/renderer"
	"github.com/pthm-cable/handrule/scene"
	"github.com/pthm-cable/handrule/telemetry"
	"github.com/pthm-cable/handrule/ui"
)

// Panel layout
const (
	controlsWidth  = 220
	inspectorWidth = 240
	panelMargin    = 10
)

// Game holds the complete visualizer state.
type Game struct {
	cfg *config.Config

	driver *animation.Driver
	scene  *scene.Scene
	camera *camera.Camera
	frame  scene.DrawList // Latest composed frame

	// Rendering (nil when headless)
	renderer  *renderer.SceneRenderer
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	inspector *ui.Inspector
	perfPanel *ui.PerfPanel
	overlays  *ui.OverlayRegistry

	// Telemetry
	perfCollector    *telemetry.PerfCollector
	collector        *telemetry.Collector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	frames           []telemetry.FrameSample // Samples not yet written
	logStats         bool

	// State
	tick     int64 // Ticks applied since start, never reset
	paused   bool
	speed    int // Ticks per interval (1..MaxSpeed)
	headless bool
	showPerf bool

	// Mouse drag in progress
	rotating, panning bool

	// Window dimensions
	screenWidth, screenHeight int32
}

// NewGameWithOptions creates a new game instance. config.Init must have been
// called. In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	speed := opts.Speed
	if speed < 1 {
		speed = 1
	}
	if speed > cfg.Animation.MaxSpeed {
		speed = cfg.Animation.MaxSpeed
	}

	ticksPerWindow := int64(cfg.Derived.TicksPerWindow)
	if opts.StatsWindowSec > 0 {
		ticksPerWindow = int64(math.Round(opts.StatsWindowSec * float64(time.Second) / float64(cfg.Derived.TickInterval)))
	}

	g := &Game{
		cfg:              cfg,
		driver:           animation.NewDriver(cfg.Animation.Step, cfg.Derived.TickInterval),
		scene:            scene.New(SceneParams(cfg)),
		camera:           NewCamera(cfg),
		overlays:         ui.NewOverlayRegistry(),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:        telemetry.NewCollector(ticksPerWindow, cfg.Derived.TickInterval, cfg.Animation.Step),
		bookmarkDetector: telemetry.NewBookmarkDetector(5),
		logStats:         opts.LogStats,
		speed:            speed,
		headless:         opts.Headless,
		screenWidth:      int32(cfg.Screen.Width),
		screenHeight:     int32(cfg.Screen.Height),
	}
	g.driver.SetTickHook(g.recordTick)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !g.headless {
		g.renderer = NewSceneRenderer(cfg)
		g.renderer.Init()
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(panelMargin, 120, controlsWidth)
		g.inspector = ui.NewInspector(g.screenWidth-inspectorWidth-panelMargin, panelMargin, inspectorWidth)
		g.perfPanel = ui.NewPerfPanel(g.screenWidth-200, g.screenHeight-110)
	}

	for name, err := range g.scene.Skipped() {
		slog.Warn("arrow skipped", "name", name, "error", err)
	}

	g.frame = g.scene.Frame(g.driver.Angle())
	g.driver.Start()

	return g
}

// Update advances the animation by the elapsed frame time and composes the
// next frame. Call once per rendered frame.
func (g *Game) Update() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseAnimation)

	g.handleInput()

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	g.collector.RecordFrame(dt)
	if !g.paused {
		g.driver.Advance(dt * time.Duration(g.speed))
	}

	g.perfCollector.StartPhase(telemetry.PhaseCompose)
	g.frame = g.scene.Frame(g.driver.Angle())
}

// UpdateHeadless applies exactly one tick and composes the frame without
// touching raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()
	g.perfCollector.StartPhase(telemetry.PhaseAnimation)
	g.driver.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseCompose)
	g.frame = g.scene.Frame(g.driver.Angle())
	g.perfCollector.EndFrame()
}

// RunRealtime ticks headlessly on the wall-clock cadence until ctx is
// cancelled or maxTicks is reached (0 = unlimited).
func (g *Game) RunRealtime(ctx context.Context, maxTicks int64) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := g.driver.Run(ctx, func(angle float64) {
		g.perfCollector.StartFrame()
		g.perfCollector.StartPhase(telemetry.PhaseCompose)
		g.frame = g.scene.Frame(angle)
		g.perfCollector.EndFrame()
		g.perfCollector.RecordPresent()

		if maxTicks > 0 && g.tick >= maxTicks {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Tick returns the number of ticks applied since start.
func (g *Game) Tick() int64 {
	return g.tick
}

// Angle returns the current animation angle in radians.
func (g *Game) Angle() float64 {
	return g.driver.Angle()
}

// Frame returns the latest composed draw list.
func (g *Game) Frame() scene.DrawList {
	return g.frame
}

// Paused reports whether the animation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Speed returns the current speed multiplier.
func (g *Game) Speed() int {
	return g.speed
}

// Unload flushes pending telemetry and frees resources.
func (g *Game) Unload() {
	g.driver.Stop()
	g.driver.SetTickHook(nil)

	g.writeFrames()
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}

	if g.renderer != nil {
		g.renderer.Unload()
	}
}
