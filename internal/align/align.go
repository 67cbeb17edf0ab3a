// Package align matches predicted-mask, ground-truth, and track files by
// the numeric identifiers embedded in their filenames.
//
// The matching contract is the last run of consecutive digits in the name:
// "cell_007.tif", "gt007.png" and "tracks_007.csv" all carry identifier 7.
package align

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"mask-evaluator/internal/mask"
)

// ErrNoAlignedFiles is returned when the three collections share no
// identifier at all. A run without a single matched set is a configuration
// error, not an empty result.
var ErrNoAlignedFiles = errors.New("no aligned ROI / ground-truth / track files found")

// Triplet names one predicted mask, one ground-truth mask and one track
// table sharing a numeric identifier.
type Triplet struct {
	ID        int
	ROIFile   string
	GTFile    string
	TrackFile string
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// ExtractIdentifier returns the last run of consecutive digits in a
// filename, or -1 when the name contains none.
func ExtractIdentifier(name string) int {
	runs := digitRun.FindAllString(name, -1)
	if len(runs) == 0 {
		return -1
	}
	id, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		// Digit run too long for an int.
		return -1
	}
	return id
}

// ListImages returns the mask filenames in dir, sorted by extracted
// identifier.
func ListImages(dir string) ([]string, error) {
	return list(dir, mask.IsSupportedFormat)
}

// ListTracks returns the track CSV filenames in dir, sorted by extracted
// identifier.
func ListTracks(dir string) ([]string, error) {
	return list(dir, func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".csv")
	})
}

func list(dir string, keep func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !keep(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.SliceStable(names, func(i, j int) bool {
		return ExtractIdentifier(names[i]) < ExtractIdentifier(names[j])
	})
	return names, nil
}

// Align intersects the identifiers of the three collections and returns the
// matched triplets in ascending identifier order. Identifiers present in
// some but not all collections come back in missing, sorted, so the caller
// can report them. An identifier appearing twice within one collection is
// an error: the match would be ambiguous.
func Align(roiFiles, gtFiles, trackFiles []string) (triplets []Triplet, missing []int, err error) {
	roiByID, err := indexByIdentifier(roiFiles, "predicted masks")
	if err != nil {
		return nil, nil, err
	}
	gtByID, err := indexByIdentifier(gtFiles, "ground-truth masks")
	if err != nil {
		return nil, nil, err
	}
	trackByID, err := indexByIdentifier(trackFiles, "track tables")
	if err != nil {
		return nil, nil, err
	}

	matched := make(map[int]bool)
	for id, roiName := range roiByID {
		gtName, inGT := gtByID[id]
		trackName, inTracks := trackByID[id]
		if !inGT || !inTracks {
			continue
		}
		matched[id] = true
		triplets = append(triplets, Triplet{
			ID:        id,
			ROIFile:   roiName,
			GTFile:    gtName,
			TrackFile: trackName,
		})
	}
	sort.Slice(triplets, func(i, j int) bool { return triplets[i].ID < triplets[j].ID })

	seen := make(map[int]bool)
	for _, byID := range []map[int]string{roiByID, gtByID, trackByID} {
		for id := range byID {
			if !matched[id] && !seen[id] {
				seen[id] = true
				missing = append(missing, id)
			}
		}
	}
	sort.Ints(missing)

	if len(triplets) == 0 {
		return nil, nil, ErrNoAlignedFiles
	}
	return triplets, missing, nil
}

func indexByIdentifier(names []string, collection string) (map[int]string, error) {
	byID := make(map[int]string, len(names))
	for _, name := range names {
		id := ExtractIdentifier(name)
		if prev, ok := byID[id]; ok {
			return nil, fmt.Errorf("duplicate identifier %d in %s: %s and %s", id, collection, prev, name)
		}
		byID[id] = name
	}
	return byID, nil
}
