package loaders

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/hpinc/go3mf"
)

// Load3MF loads every mesh object referenced by the build section of a 3MF package
func Load3MF(path string, surface geometry.Surface, opts MeshOptions) (*geometry.TriangleMesh, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open 3MF file %s: %w", path, err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode 3MF file %s: %w", path, err)
	}

	return meshFrom3MF(&model, surface, opts)
}

// meshFrom3MF flattens the build items of a decoded model into one triangle mesh
func meshFrom3MF(model *go3mf.Model, surface geometry.Surface, opts MeshOptions) (*geometry.TriangleMesh, error) {
	var vertices []core.Vec3
	var faces []int

	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok {
			return nil, fmt.Errorf("build item references missing object %d", item.ObjectID)
		}
		if obj.Mesh == nil {
			continue
		}

		base := len(vertices)
		for _, v := range obj.Mesh.Vertices.Vertex {
			vertices = append(vertices, core.NewVec3(float64(v.X()), float64(v.Y()), float64(v.Z())))
		}
		for _, t := range obj.Mesh.Triangles.Triangle {
			faces = append(faces, base+int(t.V1), base+int(t.V2), base+int(t.V3))
		}
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("3MF model contains no triangles")
	}

	meshOpts := &geometry.TriangleMeshOptions{Scale: opts.Scale, Offset: opts.Offset}
	if opts.SmoothNormals {
		meshOpts.Normals = vertexNormals(vertices, faces)
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, surface, meshOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to build 3MF mesh: %w", err)
	}
	return mesh, nil
}

// vertexNormals averages the area-weighted face normals around each vertex
func vertexNormals(vertices []core.Vec3, faces []int) []core.Vec3 {
	normals := make([]core.Vec3, len(vertices))
	for i := 0; i+2 < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		if a >= len(vertices) || b >= len(vertices) || c >= len(vertices) {
			continue
		}
		n := vertices[b].Subtract(vertices[a]).Cross(vertices[c].Subtract(vertices[a]))
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
