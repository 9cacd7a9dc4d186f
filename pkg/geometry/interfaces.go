package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// The set is closed: Sphere, Plane, Triangle, Box and Rectangle.
type Shape interface {
	// Hit fills hit and returns true for the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool
	BoundingBox() core.AABB
	// NormalAt returns the outward surface normal at a point on the shape
	NormalAt(point core.Vec3) core.Vec3
	GetMaterial() material.Material

	isShape()
}

// Surface is the appearance shared by every shape: a base reflectance color
// and a material that may be shared with other shapes
type Surface struct {
	Albedo   core.Vec3
	Material material.Material
}

// NewSurface creates a surface from a color and material
func NewSurface(albedo core.Vec3, mat material.Material) Surface {
	return Surface{Albedo: albedo, Material: mat}
}

// GetMaterial returns the material of the surface
func (s Surface) GetMaterial() material.Material {
	return s.Material
}

// record fills the hit record for an intersection at t with the given outward normal
func (s Surface) record(ray core.Ray, t float64, outwardNormal core.Vec3, hit *material.HitRecord) {
	hit.T = t
	hit.Point = ray.At(t)
	hit.Albedo = s.Albedo
	hit.Material = s.Material
	hit.SetFaceNormal(ray, outwardNormal)
}
