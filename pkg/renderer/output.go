package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/fogleman/gg"
)

// toByte maps a channel in [0,1] to 0..255
func toByte(c float64) uint8 {
	return uint8(math.Floor(255.999 * c))
}

// toRGB clamps a linear color, applies gamma when it is set and not 1, and quantizes it
func toRGB(c core.Vec3, gamma float64) (uint8, uint8, uint8) {
	c = c.Clamp(0, 1)
	if gamma > 0 && gamma != 1 {
		c = c.GammaCorrect(gamma)
	}
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

// WritePPM writes the image as an ASCII P3 PPM, top row first.
// gamma <= 0 or 1 writes linear values.
func WritePPM(w io.Writer, img *Image, gamma float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for _, p := range img.Pixels {
		r, g, b := toRGB(p, gamma)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// SavePPM writes the image to a PPM file
func SavePPM(path string, img *Image, gamma float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePPM(f, img, gamma); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ToRGBA converts the image to 8-bit RGBA with the same channel mapping as the PPM writer
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := toRGB(img.At(x, y), gamma)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// SavePNG writes a PNG preview of the image
func SavePNG(path string, img *Image, gamma float64) error {
	if err := gg.SavePNG(path, img.ToRGBA(gamma)); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}
