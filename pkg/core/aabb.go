package core

// minExtent is the thickness given to flat boxes (planes, axis-aligned
// triangles and rectangles) so every slab has non-zero measure
const minExtent = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner

	centroid Vec3
}

// NewAABB creates a new AABB from min and max points.
// Axes thinner than minExtent are padded symmetrically.
func NewAABB(min, max Vec3) AABB {
	min, max = padAxis(min, max)
	return AABB{
		Min:      min,
		Max:      max,
		centroid: min.Add(max).Multiply(0.5),
	}
}

func padAxis(min, max Vec3) (Vec3, Vec3) {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo >= minExtent {
			return lo, hi
		}
		mid := 0.5 * (lo + hi)
		return mid - minExtent/2, mid + minExtent/2
	}
	min.X, max.X = pad(min.X, max.X)
	min.Y, max.Y = pad(min.Y, max.Y)
	min.Z, max.Z = pad(min.Z, max.Z)
	return min, max
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return NewAABB(min, max)
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] using the slab method.
// Non-zero direction components rely on IEEE division (x/0 on floats is ±Inf in Go);
// an exactly zero component is handled explicitly because 0*Inf would yield NaN.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min.Axis(axis)
		hi := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if direction == 0 {
			// Parallel to the slab: inside for every t or never
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		a := (lo - origin) / direction
		b := (hi - origin) / direction
		if a > b {
			a, b = b, a
		}

		if a > tMin {
			tMin = a
		}
		if b < tMax {
			tMax = b
		}
		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Surrounding returns the smallest AABB containing both a and b
func Surrounding(a, b AABB) AABB {
	return NewAABB(a.Min.Min(b.Min), a.Max.Max(b.Max))
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return Surrounding(aabb, other)
}

// Centroid returns the midpoint of the box, computed at construction
func (aabb AABB) Centroid() Vec3 {
	return aabb.centroid
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	return LongestAxis(aabb.Size())
}

// LongestAxis picks x, then y if strictly larger, then z if strictly larger.
// On a tie the earlier axis is kept.
func LongestAxis(extent Vec3) int {
	axis := 0
	longest := extent.X
	if extent.Y > longest {
		axis, longest = 1, extent.Y
	}
	if extent.Z > longest {
		axis = 2
	}
	return axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether p lies inside the box (boundary included)
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return NewAABB(aabb.Min.Subtract(expansion), aabb.Max.Add(expansion))
}
