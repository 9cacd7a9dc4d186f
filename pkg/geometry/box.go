package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Box is an axis-aligned box used directly as a primitive
type Box struct {
	Surface
	Bounds core.AABB
}

// NewBox creates a box spanning the two corner points
func NewBox(min, max core.Vec3, surface Surface) *Box {
	return &Box{
		Surface: surface,
		Bounds:  core.NewAABB(min.Min(max), min.Max(max)),
	}
}

// NewAxisAlignedBox creates a box from a center and half-extents
// (a size of (1,1,1) creates a 2x2x2 box)
func NewAxisAlignedBox(center, size core.Vec3, surface Surface) *Box {
	return NewBox(center.Subtract(size), center.Add(size), surface)
}

// Hit returns the entry distance, or the exit distance when the origin is inside the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := ray.Origin.Axis(axis)
		d := ray.Direction.Axis(axis)
		lo := b.Bounds.Min.Axis(axis)
		hi := b.Bounds.Max.Axis(axis)

		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}

		t0 := (lo - o) / d
		t1 := (hi - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = math.Max(tNear, t0)
		tFar = math.Min(tFar, t1)
		if tFar < tNear {
			return false
		}
	}

	t := tNear
	if t < tMin || t > tMax {
		t = tFar
		if t < tMin || t > tMax {
			return false
		}
	}

	point := ray.At(t)
	b.record(ray, t, b.NormalAt(point), hit)
	return true
}

// NormalAt returns the outward normal of the face nearest to point
func (b *Box) NormalAt(point core.Vec3) core.Vec3 {
	bestAxis := 0
	bestSign := 1.0
	bestDist := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		p := point.Axis(axis)
		if d := math.Abs(p - b.Bounds.Min.Axis(axis)); d < bestDist {
			bestDist, bestAxis, bestSign = d, axis, -1
		}
		if d := math.Abs(p - b.Bounds.Max.Axis(axis)); d < bestDist {
			bestDist, bestAxis, bestSign = d, axis, 1
		}
	}

	var n [3]float64
	n[bestAxis] = bestSign
	return core.NewVec3(n[0], n[1], n[2])
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.Bounds
}

func (b *Box) isShape() {}
