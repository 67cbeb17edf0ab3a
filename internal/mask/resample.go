package mask

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// resample scales a grid to size×size with nearest-neighbor interpolation.
// The grid round-trips through an 8-bit single-channel Mat at 0/255 so that
// the midpoint re-binarization in matToGrid is well defined.
func resample(g *Grid, size int) (*Grid, error) {
	if g.Width == 0 || g.Height == 0 {
		return nil, fmt.Errorf("cannot resample empty %dx%d mask", g.Width, g.Height)
	}

	mat := gridToMat(g)
	defer mat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Point{X: size, Y: size}, 0, 0, gocv.InterpolationNearestNeighbor)

	return matToGrid(resized), nil
}

// gridToMat converts a Grid to a single-channel 8-bit Mat, mapping
// foreground to 255.
func gridToMat(g *Grid) gocv.Mat {
	mat := gocv.NewMatWithSize(g.Height, g.Width, gocv.MatTypeCV8UC1)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			mat.SetUCharAt(y, x, g.At(x, y)*255)
		}
	}
	return mat
}

// matToGrid converts a single-channel Mat back to a Grid, re-binarizing at
// the midpoint threshold.
func matToGrid(mat gocv.Mat) *Grid {
	g := NewGrid(mat.Cols(), mat.Rows())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if mat.GetUCharAt(y, x) > 127 {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}
