// Command quadrender plays the chain headlessly and writes every tick as a
// PNG frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/quad-path-mover/internal/config"
	"github.com/iburimskiy/quad-path-mover/internal/game"
	"github.com/iburimskiy/quad-path-mover/internal/settings"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML stage config")
		outDir     = flag.String("out", "frames", "output directory")
		taps       = flag.Int("taps", 10, "number of taps to simulate")
		verbose    = flag.Bool("v", false, "enable renderer logging")
	)
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Render] %v", err)
		}
		cfg = loaded
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("[Render] Failed to create output dir: %v", err)
	}

	frames, err := renderTaps(cfg, *outDir, *taps)
	if err != nil {
		log.Fatalf("[Render] %v", err)
	}
	log.Printf("[Render] Wrote %d frames to %s", frames, *outDir)
}

// renderTaps simulates taps on a silent in-memory stage driven by a
// virtual clock and saves one frame per tick plus the initial frame.
func renderTaps(cfg config.Config, dir string, taps int) (int, error) {
	now := time.Unix(0, 0)
	sm := settings.NewManager(nil)
	sm.SetSoundEnabled(false)
	stage := game.NewStage(cfg, sm, game.WithClock(func() time.Time { return now }))
	defer func() {
		if err := stage.Close(); err != nil {
			log.Printf("[Render] Warning: failed to close stage: %v", err)
		}
	}()

	frame := 0
	save := func() error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
		frame++
		return stage.SavePNG(path)
	}

	if err := save(); err != nil {
		return frame, err
	}
	for i := 0; i < taps; i++ {
		stage.Tap()
		for stage.Animating() {
			now = now.Add(cfg.TickInterval)
			if !stage.Step() {
				continue
			}
			if err := save(); err != nil {
				return frame, err
			}
		}
	}
	return frame, nil
}
