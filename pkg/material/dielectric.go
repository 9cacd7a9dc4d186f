package material

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Glass represents a transparent dielectric that can both reflect and refract
type Glass struct {
	noEmission
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewGlass creates a new glass material
func NewGlass(refractiveIndex float64) *Glass {
	return &Glass{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction.
// Total internal reflection always reflects; otherwise Schlick's reflectance
// is compared with a uniform draw.
func (g *Glass) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Ray, bool) {
	refractionRatio := g.RefractionRatio(hit.FrontFace)

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	var direction core.Vec3
	if CannotRefract(refractionRatio, sinTheta) || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.NewRay(hit.Point, direction), true
}

// RefractionRatio returns eta_incident / eta_transmitted for a ray entering (frontFace) or leaving the medium
func (g *Glass) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / g.RefractiveIndex
	}
	return g.RefractiveIndex
}

func (g *Glass) isMaterial() {}

// CannotRefract reports total internal reflection
func CannotRefract(refractionRatio, sinTheta float64) bool {
	return refractionRatio*sinTheta > 1.0
}

// refract bends unit vector uv through a surface with normal n using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
