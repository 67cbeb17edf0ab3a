// Package geometry provides basic integer geometric types used throughout
// the application.
package geometry

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RectInt represents an axis-aligned rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CenteredWindow returns a size×size window centered inside a width×height
// area. Offsets use floor division, so for an odd size difference the window
// sits one pixel closer to the top-left corner.
func CenteredWindow(width, height, size int) RectInt {
	return RectInt{
		X:      (width - size) / 2,
		Y:      (height - size) / 2,
		Width:  size,
		Height: size,
	}
}
