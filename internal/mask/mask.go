// Package mask provides binary mask loading and canonical-size
// normalization.
//
// Masks arrive as raster images from heterogeneous acquisition/export
// pipelines. Loading collapses multi-channel images to their first channel
// and thresholds at zero, so any positive sample is foreground.
package mask

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"mask-evaluator/pkg/geometry"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Grid is a fixed-shape 2D binary mask. Pix holds one byte per pixel in
// row-major order, restricted to {0,1}.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid creates an all-background grid of the given shape.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the value at (x, y). Coordinates outside the grid are
// background.
func (g *Grid) At(x, y int) uint8 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the value at (x, y). The coordinate must be inside the grid.
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Sum returns the number of foreground pixels.
func (g *Grid) Sum() int {
	n := 0
	for _, v := range g.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Window returns a copy of the given rectangle of the grid. The rectangle
// must lie inside the grid.
func (g *Grid) Window(r geometry.RectInt) *Grid {
	out := NewGrid(r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		src := (r.Y+y)*g.Width + r.X
		copy(out.Pix[y*r.Width:(y+1)*r.Width], g.Pix[src:src+r.Width])
	}
	return out
}

// Read decodes a raster image and binarizes it. Multi-channel images
// collapse to their first channel; any positive sample becomes foreground.
func Read(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mask: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mask %s: %w", path, err)
	}

	return binarize(img), nil
}

// ReadGroundTruth decodes a ground-truth mask and normalizes it to
// size×size via Normalize.
func ReadGroundTruth(path string, size int) (*Grid, error) {
	g, err := Read(path)
	if err != nil {
		return nil, err
	}
	normalized, err := Normalize(g, size)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", path, err)
	}
	return normalized, nil
}

// Normalize brings a mask to the canonical size×size shape:
//  1. A mask already at the canonical shape passes through unchanged.
//  2. A mask at least as large on both axes is center-cropped, keeping
//     foreground pixels exact.
//  3. Anything smaller on either axis is resampled with nearest-neighbor
//     interpolation and re-binarized at the midpoint.
func Normalize(g *Grid, size int) (*Grid, error) {
	switch {
	case g.Width == size && g.Height == size:
		return g, nil
	case g.Width >= size && g.Height >= size:
		return g.Window(geometry.CenteredWindow(g.Width, g.Height, size)), nil
	default:
		return resample(g, size)
	}
}

func binarize(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			// RGBA() reports the first channel in r for both
			// grayscale and color images.
			r, _, _, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			if r > 0 {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}

// SupportedFormats returns the mask file extensions the loader accepts.
func SupportedFormats() []string {
	return []string{".tif", ".tiff", ".png", ".jpg", ".jpeg", ".bmp"}
}

// IsSupportedFormat checks if the given path has a supported mask format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
