package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"orthoview/internal/models"
	"orthoview/pkg/config"
	"orthoview/pkg/interpolation"
	"orthoview/pkg/ortho"
	"orthoview/pkg/transform"
	"orthoview/pkg/viewer"
	"orthoview/pkg/volume"
	"orthoview/pkg/window"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "orthoview.yaml", "YAML configuration file")
	inputDir := flag.String("input", "", "Directory containing 2D slices (default: built-in phantom)")
	outputFile := flag.String("output", "", "Rendered image filename (.png or .jpg)")
	interactive := flag.Bool("interactive", false, "Open an interactive window instead of writing an image")
	sliceGap := flag.Float64("gap", 0, "Inter-slice gap in mm (overrides volume.spacing[2])")
	extractSlices := flag.Bool("extract-slices", false, "Extract and save slices along all axes")
	slicesDir := flag.String("slices-dir", "", "Directory to save extracted slices")
	writeConfig := flag.String("write-config", "", "Write the default configuration to this file and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.CreateDefaultConfigFile(*writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *writeConfig)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Command line flags override the configuration file
	if *inputDir != "" {
		cfg.Volume.InputDir = *inputDir
	}
	if *outputFile != "" {
		cfg.Output.File = *outputFile
	}
	if *sliceGap > 0 {
		cfg.Volume.Spacing[2] = *sliceGap
	}
	if *extractSlices {
		cfg.Output.ExtractSlices = true
	}
	if *slicesDir != "" {
		cfg.Output.SlicesDir = *slicesDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Output.Verbose {
		ortho.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fmt.Println("================================")
	fmt.Println("ORTHOGONAL TRIPLE-VIEW VOLUME VIEWER")
	fmt.Println("================================")

	startTime := time.Now()
	vol, err := loadVolume(cfg)
	if err != nil {
		log.Fatalf("Failed to load volume: %v", err)
	}
	dims := vol.Dims()
	fmt.Printf("Volume: %dx%dx%d voxels, spacing %.2fx%.2fx%.2f mm (loaded in %.2f seconds)\n",
		dims[0], dims[1], dims[2],
		vol.VoxelSpacing(models.Sagittal), vol.VoxelSpacing(models.Coronal), vol.VoxelSpacing(models.Axial),
		time.Since(startTime).Seconds())

	if cfg.Output.ExtractSlices {
		fmt.Println("\nExtracting slices along all axes...")
		for _, axis := range models.Axes {
			axisDir := filepath.Join(cfg.Output.SlicesDir, axis.String())
			fmt.Printf("Saving %s slices to: %s\n", axis, axisDir)

			if err := vol.SaveSliceSequence(axis, axisDir, cfg.Output.Quality); err != nil {
				log.Printf("Warning: Failed to save %s slices: %v", axis, err)
			}
		}
		fmt.Println("Slice extraction completed!")
	}

	v := viewer.New(cfg.Viewer.Width, cfg.Viewer.Height, vol, cfg.ModeOptions())

	if *interactive {
		fmt.Println("\nR: reset view, O: toggle orientation labels, Ctrl+wheel: zoom")
		if err := window.Run(v, cfg.Viewer.Title); err != nil {
			log.Fatalf("Window failed: %v", err)
		}
		return
	}

	v.Frame()
	if err := v.Host.Canvas().Save(cfg.Output.File, cfg.Output.Quality); err != nil {
		log.Fatalf("Failed to save image: %v", err)
	}
	fmt.Printf("\nRendered %dx%d view saved to: %s\n", cfg.Viewer.Width, cfg.Viewer.Height, cfg.Output.File)
}

// loadVolume reads the configured slice directory, or builds the phantom when
// none is set, and applies the sampler and origin settings.
func loadVolume(cfg *config.Config) (*volume.Volume, error) {
	var (
		vol *volume.Volume
		err error
	)
	if cfg.Volume.InputDir != "" {
		vol, err = volume.LoadSlices(cfg.Volume.InputDir, cfg.Volume.Spacing)
	} else {
		vol, err = volume.NewPhantom(cfg.Volume.Dims, cfg.Volume.Spacing)
	}
	if err != nil {
		return nil, err
	}

	sampler, err := interpolation.ByName(cfg.Viewer.Interpolation)
	if err != nil {
		return nil, err
	}
	vol.SetSampler(sampler)

	if origin, ok := cfg.Origin(); ok {
		xform, err := transform.Scaling(cfg.Volume.Spacing, origin)
		if err != nil {
			return nil, fmt.Errorf("invalid volume geometry: %w", err)
		}
		vol.SetTransform(xform)
	}

	vol.AutoWindow()
	return vol, nil
}
