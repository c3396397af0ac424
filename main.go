package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/quad-path-mover/internal/config"
	"github.com/iburimskiy/quad-path-mover/internal/game"
	"github.com/iburimskiy/quad-path-mover/internal/settings"
)

func main() {
	configPath := flag.String("config", "", "optional YAML stage config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}

	sm := settings.Open(config.AppName)
	stage := game.NewStage(cfg, sm)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetFullscreen(sm.Settings().Fullscreen)

	runErr := ebiten.RunGame(stage)
	if err := stage.Close(); err != nil {
		log.Printf("[Main] Warning: failed to save state: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
