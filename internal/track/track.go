// Package track loads particle-tracking tables exported by the acquisition
// software.
package track

import (
	"fmt"
	"math"
	"os"

	"mask-evaluator/pkg/geometry"

	"github.com/gocarina/gocsv"
)

func init() {
	// A track table without one of the expected columns is malformed, not
	// a table of zero values.
	gocsv.FailIfUnmatchedStructTags = true
}

// Row is one tracked-particle observation. The csv tags mirror the exact
// headers the tracker writes, including the leading space on " X (nm)";
// header drift fails at parse time.
type Row struct {
	Frame   int     `csv:"Frame"`
	TrackID int     `csv:"Track ID"`
	XNm     float64 `csv:" X (nm)"`
	YNm     float64 `csv:"Y (nm)"`

	// Px is the position in pixels, derived by Load from the
	// nanometers-per-pixel scale.
	Px geometry.PointInt `csv:"-"`
}

// Table is the ordered set of rows from one track file. Read-only after
// Load.
type Table []Row

// Load parses a track CSV and derives pixel coordinates, rounding to the
// nearest integer.
func Load(path string, nmPerPixel float64) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer file.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse track file %s: %w", path, err)
	}

	for i := range rows {
		rows[i].Px = geometry.PointInt{
			X: int(math.Round(rows[i].XNm / nmPerPixel)),
			Y: int(math.Round(rows[i].YNm / nmPerPixel)),
		}
	}
	return rows, nil
}

// ForFrame returns the rows recorded at the given frame index, preserving
// order.
func (t Table) ForFrame(frame int) []Row {
	var rows []Row
	for _, r := range t {
		if r.Frame == frame {
			rows = append(rows, r)
		}
	}
	return rows
}
