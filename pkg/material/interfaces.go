package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Material decides what happens to a ray arriving at a surface.
// The set of materials is closed: Lambertian, Mirror, Glass and AreaLight.
type Material interface {
	// Scatter returns the outgoing ray and true to continue the path,
	// or false when the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Ray, bool)

	// Emitted returns the radiance emitted by the surface (zero for non-emitters)
	Emitted() core.Vec3

	isMaterial()
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Albedo    core.Vec3 // Base reflectance color of the surface
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that do not emit light
type noEmission struct{}

func (noEmission) Emitted() core.Vec3 {
	return core.Vec3{}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
