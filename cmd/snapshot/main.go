// Snapshot tool - renders one frame of the scene at a given angle to a PNG.
//
// Usage: go run ./cmd/snapshot -angle 45 -out frame.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/config"
	"github.com/pthm-cable/handrule/game"
	"github.com/pthm-cable/handrule/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	angleDeg := flag.Float64("angle", 0, "Animation angle in degrees")
	outPath := flag.String("out", "snapshot.png", "Output PNG path")
	width := flag.Int("width", 0, "Render width (0 = screen width from config)")
	height := flag.Int("height", 0, "Render height (0 = screen height from config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	if *width > 0 {
		w = int32(*width)
	}
	if *height > 0 {
		h = int32(*height)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, "Snapshot")
	defer rl.CloseWindow()

	sc := scene.New(game.SceneParams(cfg))
	for name, err := range sc.Skipped() {
		slog.Warn("arrow skipped", "name", name, "error", err)
	}

	r := game.NewSceneRenderer(cfg)
	r.Init()
	defer r.Unload()

	angle := math.Mod(*angleDeg*math.Pi/180, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	img := r.Capture(sc.Frame(angle), game.NewCamera(cfg), w, h)
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
	fmt.Printf("Scene rendered to: %s (%dx%d, angle %.1f deg)\n", *outPath, w, h, angle*180/math.Pi)
}
