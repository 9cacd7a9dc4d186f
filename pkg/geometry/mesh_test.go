package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadVertices() ([]core.Vec3, []int) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	return vertices, []int{0, 1, 2, 0, 2, 3}
}

func TestNewTriangleMesh(t *testing.T) {
	vertices, faces := quadVertices()

	mesh, err := NewTriangleMesh(vertices, faces, testSurface, &TriangleMeshOptions{
		Scale:  2,
		Offset: core.NewVec3(0, 0, -1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.GetTriangleCount())

	box := mesh.BoundingBox()
	assert.InDelta(t, 2.0, box.Max.X, 1e-9)
	assert.InDelta(t, 2.0, box.Max.Y, 1e-9)

	var hit material.HitRecord
	list := NewShapeList(mesh.GetTriangles()...)
	require.True(t, list.Hit(core.NewRay(core.NewVec3(1.5, 0.5, 3), core.NewVec3(0, 0, -1)), 1e-4, math.Inf(1), &hit))
	assert.InDelta(t, 4.0, hit.T, 1e-9)
}

func TestNewTriangleMesh_SmoothNormals(t *testing.T) {
	vertices, faces := quadVertices()
	normals := []core.Vec3{
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1),
	}

	mesh, err := NewTriangleMesh(vertices, faces, testSurface, &TriangleMeshOptions{Normals: normals})
	require.NoError(t, err)
	for _, s := range mesh.GetTriangles() {
		assert.True(t, s.(*Triangle).Smooth())
	}
}

func TestNewTriangleMesh_Errors(t *testing.T) {
	vertices, _ := quadVertices()

	_, err := NewTriangleMesh(vertices, []int{0, 1}, testSurface, nil)
	assert.Error(t, err)

	_, err = NewTriangleMesh(vertices, []int{0, 1, 7}, testSurface, nil)
	assert.Error(t, err)

	_, err = NewTriangleMesh(vertices, []int{0, 1, 2}, testSurface, &TriangleMeshOptions{Normals: []core.Vec3{{}}})
	assert.Error(t, err)
}
