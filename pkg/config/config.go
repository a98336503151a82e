// Package config provides configuration loading and management for orthoview.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"orthoview/pkg/interpolation"
	"orthoview/pkg/ortho"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Viewer parameters
	Viewer struct {
		// Width and Height are the window or output image size in pixels
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// Title is the interactive window title
		Title string `yaml:"title"`

		// ShowOrientation draws anatomical direction labels
		ShowOrientation bool `yaml:"showOrientation"`

		// ShowFocus draws the focus crosshair
		ShowFocus bool `yaml:"showFocus"`

		// EdgeFraction is the size of the cursor edge zones relative to a sub-view
		EdgeFraction float64 `yaml:"edgeFraction"`

		// ScrollZoomFactor converts a wheel step into fine zoom units
		ScrollZoomFactor float64 `yaml:"scrollZoomFactor"`

		// FineZoomRate is the zoom exponent per fine zoom unit
		FineZoomRate float64 `yaml:"fineZoomRate"`

		// MoveRate scales focus motion along the view direction
		MoveRate float64 `yaml:"moveRate"`

		// DragGestures enables the mouse drag mappings
		DragGestures bool `yaml:"dragGestures"`

		// TargetFollowsFocus centres the target on the focus after a reset
		TargetFollowsFocus bool `yaml:"targetFollowsFocus"`

		// Interpolation selects the slice sampler: nearest or linear
		Interpolation string `yaml:"interpolation"`
	} `yaml:"viewer"`

	// Volume parameters
	Volume struct {
		// InputDir holds numbered 2D slices; empty selects the built-in phantom
		InputDir string `yaml:"inputDir"`

		// Dims is the phantom size in voxels
		Dims [3]int `yaml:"dims"`

		// Spacing is the voxel size in mm
		Spacing [3]float64 `yaml:"spacing"`

		// Origin, when set, is the scanner position of voxel (0,0,0).
		// Otherwise the volume is centred on the scanner origin.
		Origin []float64 `yaml:"origin,omitempty"`
	} `yaml:"volume"`

	// Output parameters
	Output struct {
		// File is the rendered image written in headless mode
		File string `yaml:"file"`

		// Quality is the JPEG quality for image output
		Quality int `yaml:"quality"`

		// ExtractSlices saves every slice along each axis
		ExtractSlices bool `yaml:"extractSlices"`

		// SlicesDir is where extracted slices are written
		SlicesDir string `yaml:"slicesDir"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	opts := ortho.DefaultOptions()

	cfg.Viewer.Width = 800
	cfg.Viewer.Height = 800
	cfg.Viewer.Title = "orthoview"
	cfg.Viewer.ShowOrientation = opts.ShowOrientation
	cfg.Viewer.ShowFocus = opts.ShowFocus
	cfg.Viewer.EdgeFraction = opts.EdgeFraction
	cfg.Viewer.ScrollZoomFactor = opts.ScrollZoomFactor
	cfg.Viewer.FineZoomRate = opts.FineZoomRate
	cfg.Viewer.MoveRate = opts.MoveRate
	cfg.Viewer.Interpolation = "nearest"

	cfg.Volume.Dims = [3]int{128, 128, 64}
	cfg.Volume.Spacing = [3]float64{1, 1, 1.5}

	cfg.Output.File = "ortho.png"
	cfg.Output.Quality = 95
	cfg.Output.SlicesDir = "extracted_slices"
	cfg.Output.Verbose = false

	return cfg
}

// Validate checks that sizes and rates are usable
func (c *Config) Validate() error {
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("invalid viewer size %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	if c.Viewer.EdgeFraction <= 0 || c.Viewer.EdgeFraction >= 0.5 {
		return fmt.Errorf("edgeFraction must be in (0, 0.5), got %g", c.Viewer.EdgeFraction)
	}
	if c.Viewer.ScrollZoomFactor <= 0 || c.Viewer.FineZoomRate <= 0 || c.Viewer.MoveRate <= 0 {
		return fmt.Errorf("zoom and move rates must be positive")
	}
	if _, err := interpolation.ByName(c.Viewer.Interpolation); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if c.Volume.Spacing[i] <= 0 {
			return fmt.Errorf("voxel spacing must be positive, got %v", c.Volume.Spacing)
		}
		if c.Volume.InputDir == "" && c.Volume.Dims[i] <= 0 {
			return fmt.Errorf("phantom dimensions must be positive, got %v", c.Volume.Dims)
		}
	}
	if n := len(c.Volume.Origin); n != 0 && n != 3 {
		return fmt.Errorf("origin needs 3 coordinates, got %d", n)
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("quality must be in [1, 100], got %d", c.Output.Quality)
	}
	return nil
}

// ModeOptions maps the viewer section onto the ortho mode options
func (c *Config) ModeOptions() ortho.Options {
	return ortho.Options{
		ShowOrientation:    c.Viewer.ShowOrientation,
		ShowFocus:          c.Viewer.ShowFocus,
		EdgeFraction:       c.Viewer.EdgeFraction,
		FineZoomRate:       c.Viewer.FineZoomRate,
		ScrollZoomFactor:   c.Viewer.ScrollZoomFactor,
		MoveRate:           c.Viewer.MoveRate,
		DragGestures:       c.Viewer.DragGestures,
		TargetFollowsFocus: c.Viewer.TargetFollowsFocus,
	}
}

// Origin returns the configured voxel origin, if any
func (c *Config) Origin() (r3.Vec, bool) {
	if len(c.Volume.Origin) != 3 {
		return r3.Vec{}, false
	}
	o := c.Volume.Origin
	return r3.Vec{X: o[0], Y: o[1], Z: o[2]}, true
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
