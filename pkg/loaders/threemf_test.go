package loaders

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/hpinc/go3mf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadModel() *go3mf.Model {
	return &go3mf.Model{
		Resources: go3mf.Resources{
			Objects: []*go3mf.Object{{
				ID: 1,
				Mesh: &go3mf.Mesh{
					Vertices: go3mf.Vertices{Vertex: []go3mf.Point3D{
						{0, 0, 0}, {1000, 0, 0}, {0, 1000, 0}, {1000, 1000, 0},
					}},
					Triangles: go3mf.Triangles{Triangle: []go3mf.Triangle{
						{V1: 0, V2: 1, V3: 2},
						{V1: 1, V2: 3, V3: 2},
					}},
				},
			}},
		},
		Build: go3mf.Build{Items: []*go3mf.Item{{ObjectID: 1}}},
	}
}

func TestMeshFrom3MF(t *testing.T) {
	// Millimetres to metres
	mesh, err := meshFrom3MF(quadModel(), testSurface, MeshOptions{Scale: 0.001})
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.GetTriangleCount())
	assert.InDelta(t, 1.0, mesh.BoundingBox().Max.X, 1e-6)

	var hit material.HitRecord
	list := geometry.NewShapeList(mesh.GetTriangles()...)
	require.True(t, list.Hit(core.NewRay(core.NewVec3(0.75, 0.75, 2), core.NewVec3(0, 0, -1)), 1e-4, math.Inf(1), &hit))
	assert.InDelta(t, 2.0, hit.T, 1e-6)
}

func TestMeshFrom3MF_SmoothNormals(t *testing.T) {
	mesh, err := meshFrom3MF(quadModel(), testSurface, MeshOptions{Scale: 0.001, SmoothNormals: true})
	require.NoError(t, err)

	for _, s := range mesh.GetTriangles() {
		tri := s.(*geometry.Triangle)
		require.True(t, tri.Smooth())
		assert.InDelta(t, 1.0, tri.NormalAt(core.NewVec3(0.5, 0.5, 0)).Z, 1e-9)
	}
}

func TestMeshFrom3MF_Errors(t *testing.T) {
	missing := quadModel()
	missing.Build.Items[0].ObjectID = 7
	_, err := meshFrom3MF(missing, testSurface, MeshOptions{})
	assert.Error(t, err)

	empty := &go3mf.Model{}
	_, err = meshFrom3MF(empty, testSurface, MeshOptions{})
	assert.Error(t, err)
}

func TestVertexNormals(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(5, 5, 5),
	}
	normals := vertexNormals(vertices, []int{0, 1, 2})

	assert.Equal(t, core.NewVec3(0, 0, 1), normals[0])
	assert.Equal(t, core.NewVec3(0, 0, 1), normals[2])
	assert.Equal(t, core.Vec3{}, normals[3], "unused vertex has no normal")
}
