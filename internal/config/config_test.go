package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Nodes != 5 {
		t.Errorf("Nodes = %d, want 5", cfg.Nodes)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", cfg.TickInterval)
	}
	if cfg.StepsPerUnit != 10 {
		t.Errorf("StepsPerUnit = %d, want 10", cfg.StepsPerUnit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.yaml")
	data := []byte("width: 800\nnodes: 7\ntickInterval: 20ms\ncolors:\n  path: \"#FF0000\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Width)
	}
	if cfg.Height != WindowHeight {
		t.Errorf("Height = %d, want default %d", cfg.Height, WindowHeight)
	}
	if cfg.Nodes != 7 {
		t.Errorf("Nodes = %d, want 7", cfg.Nodes)
	}
	if cfg.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, want 20ms", cfg.TickInterval)
	}
	_, path2, _ := cfg.Palette()
	if path2 != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("path color = %v, want red", path2)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "width: [1, 2"},
		{"zero nodes", "nodes: -1\n"},
		{"bad color", "colors:\n  dot: \"#12\"\n"},
		{"negative interval", "tickInterval: -5ms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) error = nil, want error", tt.content)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestValidate_ColorErrorsInFieldOrder(t *testing.T) {
	cfg := Default()
	cfg.Colors.Background = "nope"
	cfg.Colors.Path = "#12"
	cfg.Colors.Dot = "#zzzzzz"

	for i := 0; i < 10; i++ {
		err := cfg.Validate()
		if err == nil {
			t.Fatal("Validate() = nil, want color errors")
		}
		msg := err.Error()
		bg := strings.Index(msg, "colors.background")
		path := strings.Index(msg, "colors.path")
		dot := strings.Index(msg, "colors.dot")
		if bg < 0 || !(bg < path && path < dot) {
			t.Fatalf("Validate() = %q, want background, path, dot in order", msg)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#212121", color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}, false},
		{"1976D2", color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}, false},
		{"#FFFFFF80", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, false},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
