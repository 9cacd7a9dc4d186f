package scene

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	lin "github.com/sgreben/piecewiselinear"
)

// Background is the color seen by rays that leave the scene.
// Stops are spread evenly from straight down (first) to straight up (last)
// and interpolated linearly per channel.
type Background struct {
	stops   []core.Vec3
	r, g, b lin.Function
}

// NewGradientBackground creates a background from bottom-to-top color stops.
// A single stop gives a constant color; no stops give black.
func NewGradientBackground(stops ...core.Vec3) Background {
	bg := Background{stops: append([]core.Vec3(nil), stops...)}
	if len(stops) < 2 {
		return bg
	}

	x := make([]float64, len(stops))
	r := make([]float64, len(stops))
	g := make([]float64, len(stops))
	b := make([]float64, len(stops))
	for i, c := range stops {
		x[i] = float64(i) / float64(len(stops)-1)
		r[i], g[i], b[i] = c.X, c.Y, c.Z
	}

	bg.r = lin.Function{X: x, Y: r}
	bg.g = lin.Function{X: x, Y: g}
	bg.b = lin.Function{X: x, Y: b}
	return bg
}

// NewSolidBackground creates a constant background
func NewSolidBackground(c core.Vec3) Background {
	return NewGradientBackground(c)
}

// DefaultBackground is the white-to-sky-blue gradient
func DefaultBackground() Background {
	return NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Color returns the background color for a ray direction
func (bg Background) Color(direction core.Vec3) core.Vec3 {
	switch len(bg.stops) {
	case 0:
		return core.Vec3{}
	case 1:
		return bg.stops[0]
	}

	t := 0.5 * (direction.Normalize().Y + 1.0)
	t = math.Max(0, math.Min(1, t))
	return core.NewVec3(bg.r.At(t), bg.g.At(t), bg.b.At(t))
}

// Stops returns the configured color stops, bottom first
func (bg Background) Stops() []core.Vec3 {
	return bg.stops
}
