package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	bbox   core.AABB
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, surface Surface) *Plane {
	p := &Plane{
		Surface: surface,
		Point:   point,
		Normal:  normal.Normalize(),
	}
	p.bbox = p.computeBoundingBox()
	return p
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 || t < tMin || t > tMax {
		return false
	}

	p.record(ray, t, p.Normal, hit)
	return true
}

// NormalAt returns the plane normal, the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// BoundingBox returns a bounding box for this plane
func (p *Plane) BoundingBox() core.AABB {
	return p.bbox
}

func (p *Plane) isShape() {}

// planeExtent stands in for infinity. It is far beyond any finite ray origin
// a scene uses, while centroids, box unions and slab distances stay finite.
const planeExtent = 1e300

func (p *Plane) computeBoundingBox() core.AABB {
	const epsilon = 0.001 // Small thickness to avoid zero-width bounding box

	switch getAxisAlignment(p.Normal) {
	case xAxisAligned:
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -planeExtent, -planeExtent),
			core.NewVec3(x+epsilon, planeExtent, planeExtent),
		)
	case yAxisAligned:
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-planeExtent, y-epsilon, -planeExtent),
			core.NewVec3(planeExtent, y+epsilon, planeExtent),
		)
	case zAxisAligned:
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, z-epsilon),
			core.NewVec3(planeExtent, planeExtent, z+epsilon),
		)
	default:
		// Not axis-aligned - use large bounding box (less optimal but correct)
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, -planeExtent),
			core.NewVec3(planeExtent, planeExtent, planeExtent),
		)
	}
}

// axisAlignment describes which axis a normal is parallel to
type axisAlignment int

const (
	notAxisAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const tolerance = 1e-9
	n := normal.Normalize()
	switch {
	case math.Abs(math.Abs(n.X)-1) < tolerance:
		return xAxisAligned
	case math.Abs(math.Abs(n.Y)-1) < tolerance:
		return yAxisAligned
	case math.Abs(math.Abs(n.Z)-1) < tolerance:
		return zAxisAligned
	default:
		return notAxisAligned
	}
}
