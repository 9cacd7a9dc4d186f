package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"basic", "materials", "mesh", "spheres"}, Names())

	infos := List()
	require.Len(t, infos, 4)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
		assert.Contains(t, []string{"path", "phong"}, info.Integrator)
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	_, err := Create("cornell-box", Options{})
	assert.ErrorContains(t, err, "unknown scene")
}

func TestCreate_BuildsBVH(t *testing.T) {
	s, err := Create("basic", Options{})
	require.NoError(t, err)
	require.NotNil(t, s.BVH)
	assert.Equal(t, len(s.Shapes), s.BVH.Len())
	assert.Equal(t, "phong", s.Integrator)
	assert.Equal(t, 4, s.GetPrimitiveCount())
}

func TestCreate_SpheresIsDeterministic(t *testing.T) {
	a, err := Create("spheres", Options{Seed: 7, SphereCount: 50})
	require.NoError(t, err)
	b, err := Create("spheres", Options{Seed: 7, SphereCount: 50})
	require.NoError(t, err)

	require.Len(t, a.Shapes, 50)
	for i := range a.Shapes {
		sa := a.Shapes[i].(*geometry.Sphere)
		sb := b.Shapes[i].(*geometry.Sphere)
		assert.Equal(t, sa.Center, sb.Center)
		assert.Equal(t, sa.Albedo, sb.Albedo)
		assert.True(t, sa.Center.Z >= -1 && sa.Center.Z <= -0.1)
	}
}

func TestCreate_MaterialsUsesEveryMaterial(t *testing.T) {
	s, err := Create("materials", Options{})
	require.NoError(t, err)
	assert.Equal(t, "path", s.Integrator)

	seen := map[string]bool{}
	for _, shape := range s.Shapes {
		switch shape.GetMaterial().(type) {
		case *material.Lambertian:
			seen["lambertian"] = true
		case *material.Mirror:
			seen["mirror"] = true
		case *material.Glass:
			seen["glass"] = true
		case *material.AreaLight:
			seen["light"] = true
		}
		if _, ok := shape.(*geometry.Rectangle); ok {
			seen["rectangle"] = true
		}
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 400+8, len(s.Shapes))
}

func TestCreate_Mesh(t *testing.T) {
	_, err := Create("mesh", Options{})
	assert.Error(t, err, "mesh path is required")

	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 -1\nv 1 0 -1\nv 0 1 -1\nf 1 2 3\n"), 0o644))

	s, err := Create("mesh", Options{MeshPath: path, MeshScale: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, s.GetPrimitiveCount())
	assert.InDelta(t, 2.0, s.BVH.BoundingBox().Max.X, 1e-9)
}
