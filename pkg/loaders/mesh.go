package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
)

// MeshOptions control how a loaded mesh is placed and shaded
type MeshOptions struct {
	Scale         float64   // Uniform scale (0 means 1)
	Offset        core.Vec3 // Translation applied after scaling
	SmoothNormals bool      // Interpolate vertex normals across faces
}

func (o MeshOptions) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

func (o MeshOptions) place(v core.Vec3) core.Vec3 {
	return v.Multiply(o.scale()).Add(o.Offset)
}

// LoadMesh loads a triangle mesh, choosing the format from the file extension
func LoadMesh(path string, surface geometry.Surface, opts MeshOptions) (*geometry.TriangleMesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path, surface, opts)
	case ".3mf":
		return Load3MF(path, surface, opts)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
}
