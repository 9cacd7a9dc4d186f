package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Mirror represents a specular reflector with optional fuzz
type Mirror struct {
	noEmission
	Fuzz float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMirror creates a new mirror material
func NewMirror(fuzz float64) *Mirror {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Mirror{Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the normal, perturbed by the fuzz sphere
func (m *Mirror) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Ray, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Fuzzed rays that dip below the surface are absorbed
	return scattered, scattered.Direction.Dot(hit.Normal) > 0
}

func (m *Mirror) isMaterial() {}
