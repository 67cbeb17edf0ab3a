// Package config loads the maskeval configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"mask-evaluator/internal/eval"

	"github.com/pelletier/go-toml/v2"
)

// Config mirrors the evaluator settings plus the output options of the
// CLI. Flags override file values; file values override defaults.
type Config struct {
	ROIDir   string `toml:"roi_dir"`
	GTDir    string `toml:"gt_dir"`
	TrackDir string `toml:"track_dir"`

	NmPerPixel     float64 `toml:"nm_per_pixel"`
	CanonicalSize  int     `toml:"canonical_size"`
	ReferenceFrame int     `toml:"reference_frame"`

	Output          string `toml:"output"`
	TrackComparison bool   `toml:"track_comparison"`
}

// Default returns the configuration defaults applied before a file or
// flags override them.
func Default() Config {
	return Config{
		NmPerPixel:     eval.DefaultNmPerPixel,
		CanonicalSize:  eval.DefaultCanonicalSize,
		ReferenceFrame: eval.DefaultReferenceFrame,
		Output:         "evaluation_results.xlsx",
	}
}

// Load reads a TOML configuration file over the defaults. Unknown keys are
// rejected so typos surface instead of silently falling back.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// EvalConfig converts the file configuration to the evaluator's.
func (c Config) EvalConfig() eval.Config {
	return eval.Config{
		ROIDir:         c.ROIDir,
		GTDir:          c.GTDir,
		TrackDir:       c.TrackDir,
		NmPerPixel:     c.NmPerPixel,
		CanonicalSize:  c.CanonicalSize,
		ReferenceFrame: c.ReferenceFrame,
	}
}
