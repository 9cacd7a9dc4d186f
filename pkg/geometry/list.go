package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Hittable is anything that answers closest-hit queries: a single shape,
// a ShapeList or a BVH
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool
}

// ShapeList tests every shape in turn and keeps the closest hit
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list over the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Hit returns the closest hit among all shapes in [tMin, tMax]
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if shape.Hit(ray, tMin, closestSoFar, hit) {
			hitAnything = true
			closestSoFar = hit.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all shape boxes
func (l *ShapeList) BoundingBox() core.AABB {
	if len(l.Shapes) == 0 {
		return core.AABB{}
	}
	box := l.Shapes[0].BoundingBox()
	for _, shape := range l.Shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}
