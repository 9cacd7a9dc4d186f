package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// AreaLight represents a light-emitting surface
type AreaLight struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewAreaLight creates a new emissive material
func NewAreaLight(emission core.Vec3) *AreaLight {
	return &AreaLight{Emission: emission}
}

// Scatter never continues the path; lights absorb every incoming ray
func (e *AreaLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Ray, bool) {
	return core.Ray{}, false
}

// Emitted returns the emitted light for this material
func (e *AreaLight) Emitted() core.Vec3 {
	return e.Emission
}

func (e *AreaLight) isMaterial() {}
