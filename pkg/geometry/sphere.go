package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center core.Vec3
	Radius float64
	bbox   core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface Surface) *Sphere {
	r := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Surface: surface,
		Center:  center,
		Radius:  radius,
		bbox:    core.NewAABB(center.Subtract(r), center.Add(r)),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	s.record(ray, root, outwardNormal, hit)
	return true
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

func (s *Sphere) isShape() {}
