// Command maskeval compares predicted ROI masks against ground-truth masks
// and particle-tracking tables, prints the metrics, and writes the results
// to an Excel workbook.
package main

import (
	"flag"
	"fmt"
	"os"

	"mask-evaluator/internal/config"
	"mask-evaluator/internal/eval"
	"mask-evaluator/internal/version"
)

func main() {
	configPath := flag.String("config", "", "Path to TOML configuration file")
	roiDir := flag.String("roi", "", "Directory of predicted ROI masks")
	gtDir := flag.String("gt", "", "Directory of ground-truth masks")
	trackDir := flag.String("tracks", "", "Directory of track CSV files")
	output := flag.String("o", "", "Output workbook path (default evaluation_results.xlsx)")
	scale := flag.Float64("scale", 0, "Nanometers per pixel (default 117)")
	size := flag.Int("size", 0, "Canonical mask edge length in pixels (default 428)")
	frame := flag.Int("frame", 0, "Reference frame for track comparison (default 1)")
	trackComparison := flag.Bool("track-comparison", false, "Include the track comparison sheet")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("maskeval %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override file values.
	if *roiDir != "" {
		cfg.ROIDir = *roiDir
	}
	if *gtDir != "" {
		cfg.GTDir = *gtDir
	}
	if *trackDir != "" {
		cfg.TrackDir = *trackDir
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *scale != 0 {
		cfg.NmPerPixel = *scale
	}
	if *size != 0 {
		cfg.CanonicalSize = *size
	}
	if *frame != 0 {
		cfg.ReferenceFrame = *frame
	}
	if *trackComparison {
		cfg.TrackComparison = true
	}

	if cfg.ROIDir == "" || cfg.GTDir == "" || cfg.TrackDir == "" {
		fmt.Println("Usage: maskeval -roi <dir> -gt <dir> -tracks <dir> [-o <file>] [-track-comparison]")
		os.Exit(1)
	}

	evaluator, err := eval.New(cfg.EvalConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load evaluation data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(evaluator.MaskMetrics().Render())

	if err := evaluator.SaveResults(cfg.Output, cfg.TrackComparison); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save results: %v\n", err)
		os.Exit(1)
	}
}
