package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material.
// The reflectance comes from the surface albedo carried in the hit record.
type Lambertian struct {
	noEmission
}

// NewLambertian creates a new lambertian material
func NewLambertian() *Lambertian {
	return &Lambertian{}
}

// Scatter sends the ray toward normal + random unit vector, a cosine-weighted direction
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Ray, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The random vector can cancel the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.NewRay(hit.Point, scatterDirection), true
}

func (l *Lambertian) isMaterial() {}
