package renderer

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Image is a linear RGB framebuffer stored row by row, top row first
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at column x of output row y (row 0 is the top)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Row returns the writable slice for output row y
func (img *Image) Row(y int) []core.Vec3 {
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}
