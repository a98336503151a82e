package config

import (
	"os"
	"path/filepath"
	"testing"

	"orthoview/pkg/ortho"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	if got, want := cfg.ModeOptions(), ortho.DefaultOptions(); got != want {
		t.Errorf("Expected default mode options %+v, got %+v", want, got)
	}
	if _, ok := cfg.Origin(); ok {
		t.Error("Expected no origin by default")
	}
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error %v", err)
	}
	if cfg.Viewer.Width != 800 {
		t.Errorf("Expected default width 800, got %d", cfg.Viewer.Width)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
viewer:
  width: 640
  dragGestures: true
  interpolation: linear
volume:
  origin: [1, 2, 3]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Viewer.Width != 640 {
		t.Errorf("Expected width 640, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 800 {
		t.Errorf("Expected unset height to keep its default, got %d", cfg.Viewer.Height)
	}
	if !cfg.ModeOptions().DragGestures {
		t.Error("Expected drag gestures to be enabled")
	}
	o, ok := cfg.Origin()
	if !ok || o.X != 1 || o.Y != 2 || o.Z != 3 {
		t.Errorf("Expected origin (1,2,3), got %v (set=%v)", o, ok)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if cfg.Viewer.Interpolation != "nearest" {
		t.Errorf("Expected nearest interpolation, got %q", cfg.Viewer.Interpolation)
	}
	if cfg.Volume.Spacing != DefaultConfig().Volume.Spacing {
		t.Errorf("Expected spacing %v, got %v", DefaultConfig().Volume.Spacing, cfg.Volume.Spacing)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewer.Width = 0
	if cfg.Validate() == nil {
		t.Error("Expected error for zero width")
	}

	cfg = DefaultConfig()
	cfg.Viewer.Interpolation = "kriging"
	if cfg.Validate() == nil {
		t.Error("Expected error for unknown interpolation")
	}

	cfg = DefaultConfig()
	cfg.Volume.Origin = []float64{1, 2}
	if cfg.Validate() == nil {
		t.Error("Expected error for a two-component origin")
	}

	cfg = DefaultConfig()
	cfg.Volume.Spacing[2] = 0
	if cfg.Validate() == nil {
		t.Error("Expected error for zero spacing")
	}

	cfg = DefaultConfig()
	cfg.Viewer.FineZoomRate = -1
	if cfg.Validate() == nil {
		t.Error("Expected error for negative zoom rate")
	}
}
