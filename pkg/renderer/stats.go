package renderer

import (
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	AverageSamples  float64       // Average samples per pixel
	RenderTime      time.Duration // Time spent tracing rays
	MeanLuminance   float64       // Mean pixel luminance of the final image
	StdDevLuminance float64       // Standard deviation of pixel luminance
	BVH             geometry.Stats
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// luminanceStats returns the mean and standard deviation of pixel luminance
func luminanceStats(img *Image) (mean, std float64) {
	if len(img.Pixels) == 0 {
		return 0, 0
	}
	lum := make([]float64, len(img.Pixels))
	for i, p := range img.Pixels {
		lum[i] = p.Luminance()
	}
	if len(lum) == 1 {
		return lum[0], 0
	}
	return stat.MeanStdDev(lum, nil)
}
