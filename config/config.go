// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Animation AnimationConfig `yaml:"animation"`
	Scene     SceneConfig     `yaml:"scene"`
	Colors    ColorsConfig    `yaml:"colors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CameraConfig holds the initial camera placement and orbit control tuning.
type CameraConfig struct {
	Position    [3]float64 `yaml:"position"`
	Target      [3]float64 `yaml:"target"`
	Fovy        float64    `yaml:"fovy"`         // Vertical field of view in degrees
	MinDistance float64    `yaml:"min_distance"` // Closest zoom
	MaxDistance float64    `yaml:"max_distance"` // Farthest zoom
	RotateSpeed float64    `yaml:"rotate_speed"` // Radians per dragged pixel
	PanSpeed    float64    `yaml:"pan_speed"`    // World units per pixel per unit of distance
	ZoomStep    float64    `yaml:"zoom_step"`    // Distance factor per wheel notch
}

// LightingConfig holds the ambient and spot light parameters.
type LightingConfig struct {
	Ambient       float64    `yaml:"ambient"`
	SpotPosition  [3]float64 `yaml:"spot_position"`
	SpotAngle     float64    `yaml:"spot_angle"` // Cone half-angle in radians
	SpotPenumbra  float64    `yaml:"spot_penumbra"`
	SpotIntensity float64    `yaml:"spot_intensity"`
}

// AnimationConfig holds the angle driver parameters.
type AnimationConfig struct {
	Step       float64 `yaml:"step"`        // Radians per tick
	IntervalMS int     `yaml:"interval_ms"` // Milliseconds per tick
	MaxSpeed   int     `yaml:"max_speed"`   // Upper bound of the speed multiplier
}

// SceneConfig holds the scene dimensions.
type SceneConfig struct {
	Radius              float64 `yaml:"radius"`                // Orbit radius of the marker
	AxisLength          float64 `yaml:"axis_length"`           // Axis half-length
	AxisLabelOffset     float64 `yaml:"axis_label_offset"`     // Distance past the axis end for X/Y/Z letters
	AxisLabelSize       float64 `yaml:"axis_label_size"`       // Letter height in world units
	CircleSegments      int     `yaml:"circle_segments"`       // Samples over one turn
	MarkerRadius        float64 `yaml:"marker_radius"`         // Orbiting sphere radius
	VelocityArrowLength float64 `yaml:"velocity_arrow_length"` // Tangential arrow length
	AngularArrowLength  float64 `yaml:"angular_arrow_length"`  // Angular displacement arrow length
	LineWidth           float64 `yaml:"line_width"`
	CaptionSize         float64 `yaml:"caption_size"`
	RuleTextSize        float64 `yaml:"rule_text_size"`
}

// ColorsConfig holds element colors as hex strings or CSS color names.
type ColorsConfig struct {
	Background string `yaml:"background"`
	XAxis      string `yaml:"x_axis"`
	YAxis      string `yaml:"y_axis"`
	ZAxis      string `yaml:"z_axis"`
	Circle     string `yaml:"circle"`
	Motion     string `yaml:"motion"` // Marker, radial line and velocity arrow
	Angular    string `yaml:"angular"`
	Hand       string `yaml:"hand"`
	Text       string `yaml:"text"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of animation per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// Palette holds parsed colors.
type Palette struct {
	Background color.RGBA
	XAxis      color.RGBA
	YAxis      color.RGBA
	ZAxis      color.RGBA
	Circle     color.RGBA
	Motion     color.RGBA
	Angular    color.RGBA
	Hand       color.RGBA
	Text       color.RGBA
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32       // Screen.Width as float32
	ScreenH32      float32       // Screen.Height as float32
	TickInterval   time.Duration // Animation.IntervalMS as a duration
	TicksPerWindow int           // Animation ticks per telemetry stats window
	Palette        Palette
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects values the scene cannot be built from.
func (c *Config) validate() error {
	switch {
	case c.Scene.Radius <= 0:
		return fmt.Errorf("scene.radius must be positive, got %g", c.Scene.Radius)
	case c.Scene.CircleSegments < 3:
		return fmt.Errorf("scene.circle_segments must be at least 3, got %d", c.Scene.CircleSegments)
	case c.Animation.Step <= 0:
		return fmt.Errorf("animation.step must be positive, got %g", c.Animation.Step)
	case c.Animation.IntervalMS <= 0:
		return fmt.Errorf("animation.interval_ms must be positive, got %d", c.Animation.IntervalMS)
	case c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance:
		return fmt.Errorf("camera distance range [%g, %g] is invalid", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TickInterval = time.Duration(c.Animation.IntervalMS) * time.Millisecond

	c.Derived.TicksPerWindow = int(c.Telemetry.StatsWindow * 1000 / float64(c.Animation.IntervalMS))
	if c.Derived.TicksPerWindow < 1 {
		c.Derived.TicksPerWindow = 1
	}

	if c.Animation.MaxSpeed < 1 {
		c.Animation.MaxSpeed = 1
	}

	colors := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"background", c.Colors.Background, &c.Derived.Palette.Background},
		{"x_axis", c.Colors.XAxis, &c.Derived.Palette.XAxis},
		{"y_axis", c.Colors.YAxis, &c.Derived.Palette.YAxis},
		{"z_axis", c.Colors.ZAxis, &c.Derived.Palette.ZAxis},
		{"circle", c.Colors.Circle, &c.Derived.Palette.Circle},
		{"motion", c.Colors.Motion, &c.Derived.Palette.Motion},
		{"angular", c.Colors.Angular, &c.Derived.Palette.Angular},
		{"hand", c.Colors.Hand, &c.Derived.Palette.Hand},
		{"text", c.Colors.Text, &c.Derived.Palette.Text},
	}
	for _, col := range colors {
		parsed, err := ParseColor(col.src)
		if err != nil {
			return fmt.Errorf("colors.%s: %w", col.name, err)
		}
		*col.dst = parsed
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
