package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName     = "quad-path-mover"
	WindowTitle = "Quad Path Mover - Click to move, S: snapshot, M: sound, F: fullscreen, R: resume, Esc/Q: Quit"

	WindowWidth  = 1024
	WindowHeight = 512

	// Chain parameters
	NodeCount    = 5
	TickInterval = 50 * time.Millisecond
	StepsPerUnit = 10

	// Colors
	BackgroundColor = "#212121"
	PathColor       = "#1976D2"
	DotColor        = "#FFFFFF"

	// Boundary cue
	CueBaseFrequency = 392.0
	CueDuration      = 140 * time.Millisecond
	CueSampleRate    = 44100
)

// Config describes the stage. Zero fields in a loaded file keep their defaults.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Nodes        int           `yaml:"nodes"`
	TickInterval time.Duration `yaml:"tickInterval"`
	StepsPerUnit int           `yaml:"stepsPerUnit"`

	Colors ColorConfig `yaml:"colors"`
	Cue    CueConfig   `yaml:"cue"`
}

// ColorConfig holds "#RRGGBB" or "#RRGGBBAA" strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	Path       string `yaml:"path"`
	Dot        string `yaml:"dot"`
}

type CueConfig struct {
	BaseFrequency float64       `yaml:"baseFrequency"`
	Duration      time.Duration `yaml:"duration"`
}

// Default returns the stock five node stage.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Nodes:        NodeCount,
		TickInterval: TickInterval,
		StepsPerUnit: StepsPerUnit,
		Colors: ColorConfig{
			Background: BackgroundColor,
			Path:       PathColor,
			Dot:        DotColor,
		},
		Cue: CueConfig{
			BaseFrequency: CueBaseFrequency,
			Duration:      CueDuration,
		},
	}
}

// Load reads a YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sizes, timing and colors.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Nodes < 1 {
		errs = append(errs, fmt.Errorf("nodes must be at least 1, got %d", c.Nodes))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tickInterval must be positive, got %v", c.TickInterval))
	}
	if c.StepsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("stepsPerUnit must be positive, got %d", c.StepsPerUnit))
	}
	if c.Cue.BaseFrequency <= 0 || c.Cue.Duration <= 0 {
		errs = append(errs, errors.New("cue frequency and duration must be positive"))
	}
	colors := []struct{ name, hex string }{
		{"background", c.Colors.Background},
		{"path", c.Colors.Path},
		{"dot", c.Colors.Dot},
	}
	for _, col := range colors {
		if _, err := ParseHexColor(col.hex); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", col.name, err))
		}
	}
	return errors.Join(errs...)
}

// Palette returns the parsed colors. Invalid entries fall back to the defaults.
func (c Config) Palette() (bg, path, dot color.RGBA) {
	bg = mustColor(c.Colors.Background, BackgroundColor)
	path = mustColor(c.Colors.Path, PathColor)
	dot = mustColor(c.Colors.Dot, DotColor)
	return bg, path, dot
}

func mustColor(hex, fallback string) color.RGBA {
	if c, err := ParseHexColor(hex); err == nil {
		return c
	}
	c, _ := ParseHexColor(fallback)
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
