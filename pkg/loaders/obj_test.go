package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad in the z=0 plane
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3
f 2 4 3
`

var testSurface = geometry.NewSurface(core.NewVec3(1, 0, 0), material.NewLambertian())

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOBJ(t *testing.T) {
	path := writeTempFile(t, "quad.obj", quadOBJ)

	mesh, err := LoadOBJ(path, testSurface, MeshOptions{Scale: 2, Offset: core.NewVec3(0, 0, -1)})
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.GetTriangleCount())

	box := mesh.BoundingBox()
	assert.InDelta(t, 2.0, box.Max.X, 1e-9)
	assert.InDelta(t, -1.0, box.Centroid().Z, 1e-9)

	var hit material.HitRecord
	list := geometry.NewShapeList(mesh.GetTriangles()...)
	require.True(t, list.Hit(core.NewRay(core.NewVec3(1.5, 1.5, 1), core.NewVec3(0, 0, -1)), 1e-4, math.Inf(1), &hit))
	assert.InDelta(t, 2.0, hit.T, 1e-9)
	assert.Equal(t, testSurface.Albedo, hit.Albedo)
}

func TestLoadOBJ_SmoothNormals(t *testing.T) {
	path := writeTempFile(t, "quad.obj", quadOBJ)

	mesh, err := LoadOBJ(path, testSurface, MeshOptions{SmoothNormals: true})
	require.NoError(t, err)

	for _, s := range mesh.GetTriangles() {
		tri := s.(*geometry.Triangle)
		assert.True(t, tri.Smooth())
		n := tri.NormalAt(core.NewVec3(0.5, 0.5, 0))
		assert.InDelta(t, 1.0, math.Abs(n.Z), 1e-9)
	}
}

func TestLoadMesh_Errors(t *testing.T) {
	_, err := LoadMesh("scene.stl", testSurface, MeshOptions{})
	assert.Error(t, err)

	_, err = LoadMesh(filepath.Join(t.TempDir(), "missing.obj"), testSurface, MeshOptions{})
	assert.Error(t, err)

	_, err = LoadMesh(filepath.Join(t.TempDir(), "missing.3mf"), testSurface, MeshOptions{})
	assert.Error(t, err)
}
