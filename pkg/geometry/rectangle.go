package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Rectangle is an axis-aligned rectangle lying in the plane y = K,
// bounded by [X0, X1] x [Z0, Z1]
type Rectangle struct {
	Surface
	X0, X1 float64
	Z0, Z1 float64
	K      float64
	bbox   core.AABB
}

// NewRectangle creates a rectangle at height k. Bounds are reordered if given reversed.
func NewRectangle(x0, x1, z0, z1, k float64, surface Surface) *Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if z0 > z1 {
		z0, z1 = z1, z0
	}
	return &Rectangle{
		Surface: surface,
		X0:      x0,
		X1:      x1,
		Z0:      z0,
		Z1:      z1,
		K:       k,
		// NewAABB pads the zero-height y axis
		bbox: core.NewAABB(core.NewVec3(x0, k, z0), core.NewVec3(x1, k, z1)),
	}
}

// Hit tests the ray against the plane y = K and clips to the rectangle bounds
func (r *Rectangle) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if ray.Direction.Y == 0 {
		return false
	}

	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return false
	}

	r.record(ray, t, core.NewVec3(0, 1, 0), hit)
	return true
}

// NormalAt returns +Y everywhere
func (r *Rectangle) NormalAt(point core.Vec3) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// BoundingBox returns the padded bounding box of the rectangle
func (r *Rectangle) BoundingBox() core.AABB {
	return r.bbox
}

func (r *Rectangle) isShape() {}
