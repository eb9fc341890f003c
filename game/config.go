package game

import (
	"github.com/pthm-cable/handrule/camera"
	"github.com/pthm-cable/handrule/config"
	"github.com/pthm-cable/handrule/geom"
	"github.com/pthm-cable/handrule/renderer"
	"github.com/pthm-cable/handrule/scene"
)

// Options holds runtime settings that do not live in the config file.
type Options struct {
	LogStats       bool    // Log window stats and bookmarks via slog
	StatsWindowSec float64 // Stats window in seconds (0 = use config)
	OutputDir      string  // Directory for CSV logs (empty = disabled)
	Headless       bool    // Skip all raylib calls
	Speed          int     // Initial speed multiplier (0 = 1)
}

// SceneParams builds the scene constants from the loaded config.
func SceneParams(cfg *config.Config) scene.Params {
	pal := cfg.Derived.Palette
	return scene.Params{
		Radius:              cfg.Scene.Radius,
		AxisLength:          cfg.Scene.AxisLength,
		AxisLabelOffset:     cfg.Scene.AxisLabelOffset,
		AxisLabelSize:       cfg.Scene.AxisLabelSize,
		CircleSegments:      cfg.Scene.CircleSegments,
		MarkerRadius:        cfg.Scene.MarkerRadius,
		VelocityArrowLength: cfg.Scene.VelocityArrowLength,
		AngularArrowLength:  cfg.Scene.AngularArrowLength,
		LineWidth:           float32(cfg.Scene.LineWidth),
		CaptionSize:         cfg.Scene.CaptionSize,
		RuleTextSize:        cfg.Scene.RuleTextSize,
		Colors: scene.Colors{
			XAxis:   pal.XAxis,
			YAxis:   pal.YAxis,
			ZAxis:   pal.ZAxis,
			Circle:  pal.Circle,
			Motion:  pal.Motion,
			Angular: pal.Angular,
			Hand:    pal.Hand,
			Text:    pal.Text,
		},
	}
}

// NewCamera creates the orbit camera at the configured placement.
func NewCamera(cfg *config.Config) *camera.Camera {
	return camera.New(
		vec(cfg.Camera.Position),
		vec(cfg.Camera.Target),
		cfg.Camera.MinDistance,
		cfg.Camera.MaxDistance,
	)
}

// Lighting converts the lighting config. The spot light aims at the origin.
func Lighting(cfg *config.Config) renderer.Lighting {
	return renderer.Lighting{
		Ambient:       float32(cfg.Lighting.Ambient),
		SpotPosition:  vec(cfg.Lighting.SpotPosition),
		SpotTarget:    geom.Vec(0, 0, 0),
		SpotAngle:     float32(cfg.Lighting.SpotAngle),
		SpotPenumbra:  float32(cfg.Lighting.SpotPenumbra),
		SpotIntensity: float32(cfg.Lighting.SpotIntensity),
	}
}

// NewSceneRenderer creates the renderer for the configured view and lighting.
func NewSceneRenderer(cfg *config.Config) *renderer.SceneRenderer {
	return renderer.NewSceneRenderer(float32(cfg.Camera.Fovy), Lighting(cfg), cfg.Derived.Palette.Background)
}

func vec(a [3]float64) geom.Point3 {
	return geom.Vec(a[0], a[1], a[2])
}
