// Package eval orchestrates mask/track evaluation over three aligned file
// collections: predicted ROI masks, ground-truth masks, and track tables.
//
// All file I/O happens in New; the evaluation methods compute purely from
// the in-memory aligned sets.
package eval

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"mask-evaluator/internal/align"
	"mask-evaluator/internal/mask"
	"mask-evaluator/internal/metrics"
	"mask-evaluator/internal/report"
	"mask-evaluator/internal/track"
)

// Defaults applied by Config for zero-valued fields.
const (
	DefaultNmPerPixel     = 117.0
	DefaultCanonicalSize  = 428
	DefaultReferenceFrame = 1
)

// Sheet names in the exported workbook.
const (
	MaskMetricsSheet     = "Mask Metrics"
	TrackComparisonSheet = "Track Comparison"
)

// Config describes one evaluation run. Zero values for the numeric fields
// select the defaults.
type Config struct {
	ROIDir   string // predicted ROI masks
	GTDir    string // ground-truth masks
	TrackDir string // track CSV tables

	NmPerPixel     float64 // nanometers per pixel for track coordinates
	CanonicalSize  int     // canonical mask edge length in pixels
	ReferenceFrame int     // frame used for track reconciliation
}

func (c Config) withDefaults() Config {
	if c.NmPerPixel == 0 {
		c.NmPerPixel = DefaultNmPerPixel
	}
	if c.CanonicalSize == 0 {
		c.CanonicalSize = DefaultCanonicalSize
	}
	if c.ReferenceFrame == 0 {
		c.ReferenceFrame = DefaultReferenceFrame
	}
	return c
}

// AlignedSet holds the loaded data for one matched identifier. Built once
// by New and read-only afterwards.
type AlignedSet struct {
	ID        int
	ROIFile   string
	GTFile    string
	TrackFile string
	ROI       *mask.Grid
	GT        *mask.Grid
	Tracks    track.Table
}

// Evaluator compares predicted ROI masks against ground-truth masks and
// track tables.
type Evaluator struct {
	cfg  Config
	sets []AlignedSet
}

// New lists the three directories, aligns the files by numeric identifier
// and loads every matched triplet. It fails when no triplet aligns, when a
// collection holds duplicate identifiers, or when a predicted mask does not
// already match the canonical size. Identifiers missing from some
// collection are reported and skipped.
func New(cfg Config) (*Evaluator, error) {
	cfg = cfg.withDefaults()

	roiFiles, err := align.ListImages(cfg.ROIDir)
	if err != nil {
		return nil, err
	}
	gtFiles, err := align.ListImages(cfg.GTDir)
	if err != nil {
		return nil, err
	}
	trackFiles, err := align.ListTracks(cfg.TrackDir)
	if err != nil {
		return nil, err
	}

	triplets, missing, err := align.Align(roiFiles, gtFiles, trackFiles)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		fmt.Printf("Warning: missing sets for identifiers %v\n", missing)
	}

	e := &Evaluator{cfg: cfg, sets: make([]AlignedSet, 0, len(triplets))}
	for _, t := range triplets {
		set, err := e.loadSet(t)
		if err != nil {
			return nil, err
		}
		e.sets = append(e.sets, set)
	}

	fmt.Printf("Loaded %d aligned sets\n", len(e.sets))
	return e, nil
}

func (e *Evaluator) loadSet(t align.Triplet) (AlignedSet, error) {
	roi, err := mask.Read(filepath.Join(e.cfg.ROIDir, t.ROIFile))
	if err != nil {
		return AlignedSet{}, err
	}
	// Predicted masks are used as-is and must already be canonical.
	if roi.Width != e.cfg.CanonicalSize || roi.Height != e.cfg.CanonicalSize {
		return AlignedSet{}, fmt.Errorf("predicted mask %s is %dx%d, want %dx%d",
			t.ROIFile, roi.Width, roi.Height, e.cfg.CanonicalSize, e.cfg.CanonicalSize)
	}

	gt, err := mask.ReadGroundTruth(filepath.Join(e.cfg.GTDir, t.GTFile), e.cfg.CanonicalSize)
	if err != nil {
		return AlignedSet{}, err
	}

	tracks, err := track.Load(filepath.Join(e.cfg.TrackDir, t.TrackFile), e.cfg.NmPerPixel)
	if err != nil {
		return AlignedSet{}, err
	}

	return AlignedSet{
		ID:        t.ID,
		ROIFile:   t.ROIFile,
		GTFile:    t.GTFile,
		TrackFile: t.TrackFile,
		ROI:       roi,
		GT:        gt,
		Tracks:    tracks,
	}, nil
}

// Sets returns the aligned sets loaded for this run.
func (e *Evaluator) Sets() []AlignedSet {
	return e.sets
}

// MaskMetrics computes the set-overlap metrics table, one row per aligned
// set.
func (e *Evaluator) MaskMetrics() *report.Table {
	t := report.NewTable("File Number", "ROI File", "GT File",
		"Jaccard Index", "Dice Coefficient", "Intersection", "False Positives")
	for _, set := range e.sets {
		t.Append(set.ID, set.ROIFile, set.GTFile,
			metrics.OverlapRatio(set.ROI, set.GT),
			metrics.SimilarityCoefficient(set.ROI, set.GT),
			metrics.IntersectionCount(set.ROI, set.GT),
			metrics.FalsePositives(set.ROI, set.GT))
	}
	return t
}

// TrackComparison reconciles track identities against mask membership,
// restricted to the reference frame.
func (e *Evaluator) TrackComparison() *report.Table {
	t := report.NewTable("File Number", "ROI File", "GT File", "Track File",
		"Num Extra", "Num Lost", "Extra Track IDs", "Lost Track IDs")
	for _, set := range e.sets {
		rows := set.Tracks.ForFrame(e.cfg.ReferenceFrame)
		predicted := metrics.TrackIDsInMask(set.ROI, rows)
		truth := metrics.TrackIDsInMask(set.GT, rows)
		extra := metrics.Difference(predicted, truth)
		lost := metrics.Difference(truth, predicted)
		t.Append(set.ID, set.ROIFile, set.GTFile, set.TrackFile,
			len(extra), len(lost), joinIDs(extra), joinIDs(lost))
	}
	return t
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// SaveResults summarizes the result tables and writes them to an xlsx
// workbook, overwriting any existing file at path. The track-comparison
// sheet is opt-in.
func (e *Evaluator) SaveResults(path string, trackComparison bool) error {
	maskTable := e.MaskMetrics()
	maskTable.Summarize(report.DefaultSummaryLabel)
	sheets := []report.Sheet{{Name: MaskMetricsSheet, Table: maskTable}}

	if trackComparison {
		trackTable := e.TrackComparison()
		trackTable.Summarize(report.DefaultSummaryLabel)
		sheets = append(sheets, report.Sheet{Name: TrackComparisonSheet, Table: trackTable})
	}

	if err := report.WriteWorkbook(path, sheets); err != nil {
		return err
	}
	fmt.Printf("Saved results to %s\n", path)
	return nil
}
