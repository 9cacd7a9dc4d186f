package loaders

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/fogleman/pt/pt"
)

// LoadOBJ loads a Wavefront OBJ file into triangles sharing one surface
func LoadOBJ(path string, surface geometry.Surface, opts MeshOptions) (*geometry.TriangleMesh, error) {
	mesh, err := pt.LoadOBJ(path, pt.Material{})
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file %s: %w", path, err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("OBJ file %s contains no faces", path)
	}
	return meshFromPT(mesh, surface, opts), nil
}

// meshFromPT converts parsed triangles, optionally averaging vertex normals first
func meshFromPT(mesh *pt.Mesh, surface geometry.Surface, opts MeshOptions) *geometry.TriangleMesh {
	if opts.SmoothNormals {
		mesh.SmoothNormals()
	}

	triangles := make([]*geometry.Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		v1 := opts.place(vec(t.V1))
		v2 := opts.place(vec(t.V2))
		v3 := opts.place(vec(t.V3))

		if opts.SmoothNormals {
			triangles = append(triangles, geometry.NewSmoothTriangle(v1, v2, v3, vec(t.N1), vec(t.N2), vec(t.N3), surface))
		} else {
			triangles = append(triangles, geometry.NewTriangle(v1, v2, v3, surface))
		}
	}

	return geometry.NewTriangleMeshFromTriangles(triangles)
}

func vec(v pt.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
