package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// When vertex normals are present the shading normal is interpolated across the face.
type Triangle struct {
	Surface
	V0, V1, V2 core.Vec3     // The three vertices
	normals    *[3]core.Vec3 // Optional per-vertex normals (smooth shading)
	normal     core.Vec3     // Cached geometric normal
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, surface Surface) *Triangle {
	t := &Triangle{
		Surface: surface,
		V0:      v0,
		V1:      v1,
		V2:      v2,
	}

	// Precompute normal and bounding box for efficiency
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// NewSmoothTriangle creates a triangle whose normal is interpolated from vertex normals
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, surface Surface) *Triangle {
	t := NewTriangle(v0, v1, v2, surface)
	t.normals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// Smooth reports whether the triangle carries vertex normals
func (t *Triangle) Smooth() bool {
	return t.normals != nil
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	const epsilon = 1e-8

	// Calculate two edge vectors
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Calculate determinant
	q := ray.Direction.Cross(edge2)
	p := edge1.Dot(q)

	// If determinant is near zero, ray lies in plane of triangle
	if p > -epsilon && p < epsilon {
		return false
	}

	f := 1.0 / p
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(q)
	if u < 0.0 {
		return false
	}

	r := s.Cross(edge1)
	v := f * ray.Direction.Dot(r)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(r)
	if tHit < tMin || tHit > tMax {
		return false
	}

	t.record(ray, tHit, t.normalAtBarycentric(u, v), hit)
	return true
}

// normalAtBarycentric returns the shading normal for barycentric coordinates (u, v)
func (t *Triangle) normalAtBarycentric(u, v float64) core.Vec3 {
	if t.normals == nil {
		return t.normal
	}
	w := 1 - u - v
	n := t.normals[0].Multiply(w).
		Add(t.normals[1].Multiply(u)).
		Add(t.normals[2].Multiply(v)).
		Normalize()
	if n.NearZero() {
		return t.normal
	}
	return n
}

// NormalAt returns the shading normal at a point on the triangle
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	if t.normals == nil {
		return t.normal
	}
	u, v := t.barycentric(point)
	return t.normalAtBarycentric(u, v)
}

// barycentric returns the (u, v) weights of V1 and V2 for a point in the triangle plane
func (t *Triangle) barycentric(point core.Vec3) (float64, float64) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	w := point.Subtract(t.V0)

	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	dw1 := w.Dot(e1)
	dw2 := w.Dot(e2)

	denom := d11*d22 - d12*d12
	if denom == 0 {
		return 0, 0
	}
	u := (d22*dw1 - d12*dw2) / denom
	v := (d11*dw2 - d12*dw1) / denom
	return u, v
}

// GetNormal returns the triangle's geometric normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

func (t *Triangle) isShape() {}
