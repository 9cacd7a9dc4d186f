package geometry

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// TriangleMesh is an indexed triangle soup expanded into individual triangles
type TriangleMesh struct {
	triangles []Shape
	bbox      core.AABB
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals []core.Vec3 // Optional per-vertex normals; produces smooth triangles
	Scale   float64     // Uniform scale applied to vertices (0 means 1)
	Offset  core.Vec3   // Translation applied after scaling
}

// NewTriangleMesh creates a mesh from vertices and face indices.
// Each group of 3 indices forms a triangle; all triangles share surface.
func NewTriangleMesh(vertices []core.Vec3, faces []int, surface Surface, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	var opts TriangleMeshOptions
	if options != nil {
		opts = *options
	}
	if opts.Normals != nil && len(opts.Normals) != len(vertices) {
		return nil, fmt.Errorf("got %d normals for %d vertices", len(opts.Normals), len(vertices))
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	placed := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		placed[i] = v.Multiply(scale).Add(opts.Offset)
	}

	numTriangles := len(faces) / 3
	mesh := &TriangleMesh{triangles: make([]Shape, 0, numTriangles)}

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(placed) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(placed))
			}
		}

		var tri *Triangle
		if opts.Normals != nil {
			tri = NewSmoothTriangle(placed[i0], placed[i1], placed[i2],
				opts.Normals[i0], opts.Normals[i1], opts.Normals[i2], surface)
		} else {
			tri = NewTriangle(placed[i0], placed[i1], placed[i2], surface)
		}

		if len(mesh.triangles) == 0 {
			mesh.bbox = tri.BoundingBox()
		} else {
			mesh.bbox = mesh.bbox.Union(tri.BoundingBox())
		}
		mesh.triangles = append(mesh.triangles, tri)
	}

	return mesh, nil
}

// NewTriangleMeshFromTriangles wraps already built triangles
func NewTriangleMeshFromTriangles(triangles []*Triangle) *TriangleMesh {
	mesh := &TriangleMesh{triangles: make([]Shape, 0, len(triangles))}
	for i, tri := range triangles {
		if i == 0 {
			mesh.bbox = tri.BoundingBox()
		} else {
			mesh.bbox = mesh.bbox.Union(tri.BoundingBox())
		}
		mesh.triangles = append(mesh.triangles, tri)
	}
	return mesh
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles as shapes
func (tm *TriangleMesh) GetTriangles() []Shape {
	return tm.triangles
}
