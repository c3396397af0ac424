package config

import "testing"

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load("../../configs/stage.example.yaml")
	if err != nil {
		t.Fatalf("Load(example) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("example config = %+v, want defaults %+v", cfg, Default())
	}
}
