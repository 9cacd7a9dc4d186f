package geometry

import (
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// bvhNode is one node of the arena. A child reference is a node index when
// non-negative and ^shapeIndex when negative. Leaves reference the same
// shape on both sides.
type bvhNode struct {
	box         core.AABB
	left, right int
}

func (n *bvhNode) isLeaf() bool {
	return n.left < 0 && n.left == n.right
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat slice and reference shapes by index; the tree is
// read-only after construction and safe for concurrent queries.
type BVH struct {
	nodes  []bvhNode
	shapes []Shape
	root   int
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	// Make a copy of the shapes slice to avoid reordering the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	bvh := &BVH{shapes: shapesCopy, root: -1}
	if len(shapesCopy) == 0 {
		return bvh
	}

	bvh.nodes = make([]bvhNode, 0, 2*len(shapesCopy))
	bvh.root = bvh.build(0, len(shapesCopy))
	return bvh
}

// build creates the subtree for shapes[start:end] and returns its node index
func (bvh *BVH) build(start, end int) int {
	n := end - start

	if n == 1 {
		return bvh.addNode(bvhNode{
			box:   bvh.shapes[start].BoundingBox(),
			left:  ^start,
			right: ^start,
		})
	}

	axis := bvh.splitAxis(start, end)

	if n == 2 {
		a, b := bvh.shapes[start], bvh.shapes[start+1]
		if b.BoundingBox().Centroid().Axis(axis) < a.BoundingBox().Centroid().Axis(axis) {
			bvh.shapes[start], bvh.shapes[start+1] = b, a
		}
		return bvh.addNode(bvhNode{
			box:   core.Surrounding(a.BoundingBox(), b.BoundingBox()),
			left:  ^start,
			right: ^(start + 1),
		})
	}

	span := bvh.shapes[start:end]
	sort.SliceStable(span, func(i, j int) bool {
		return span[i].BoundingBox().Centroid().Axis(axis) < span[j].BoundingBox().Centroid().Axis(axis)
	})

	lo := span[0].BoundingBox().Centroid().Axis(axis)
	hi := span[n-1].BoundingBox().Centroid().Axis(axis)
	median := (lo + hi) / 2

	split := start
	for split < end && bvh.shapes[split].BoundingBox().Centroid().Axis(axis) <= median {
		split++
	}

	// Coincident centroids put everything on one side
	if split == start || split == end {
		split = start + n/2
	}

	// Reserve the parent slot so children follow it in the arena
	idx := bvh.addNode(bvhNode{})
	left := bvh.build(start, split)
	right := bvh.build(split, end)

	bvh.nodes[idx] = bvhNode{
		box:   core.Surrounding(bvh.nodes[left].box, bvh.nodes[right].box),
		left:  left,
		right: right,
	}
	return idx
}

// splitAxis picks the axis with the largest centroid extent.
// y replaces x and z replaces the winner only when strictly larger.
func (bvh *BVH) splitAxis(start, end int) int {
	c := bvh.shapes[start].BoundingBox().Centroid()
	lo, hi := c, c
	for _, shape := range bvh.shapes[start+1 : end] {
		c = shape.BoundingBox().Centroid()
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	return core.LongestAxis(hi.Subtract(lo))
}

func (bvh *BVH) addNode(node bvhNode) int {
	bvh.nodes = append(bvh.nodes, node)
	return len(bvh.nodes) - 1
}

// Hit tests if a ray intersects any shape in the BVH and fills hit with the closest one
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if bvh.root < 0 {
		return false
	}
	return bvh.hitNode(bvh.root, ray, tMin, tMax, hit)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(idx int, ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	node := &bvh.nodes[idx]

	// First check if ray hits the bounding box
	if !node.box.Hit(ray, tMin, tMax) {
		return false
	}

	if node.isLeaf() {
		return bvh.shapes[^node.left].Hit(ray, tMin, tMax, hit)
	}

	// Anything right of the left hit cannot be closer
	hitLeft := bvh.hitChild(node.left, ray, tMin, tMax, hit)
	if hitLeft {
		tMax = hit.T
	}
	hitRight := bvh.hitChild(node.right, ray, tMin, tMax, hit)

	return hitLeft || hitRight
}

func (bvh *BVH) hitChild(ref int, ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if ref < 0 {
		return bvh.shapes[^ref].Hit(ray, tMin, tMax, hit)
	}
	return bvh.hitNode(ref, ray, tMin, tMax, hit)
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.root < 0 {
		return core.AABB{}
	}
	return bvh.nodes[bvh.root].box
}

// Len returns the number of shapes in the hierarchy
func (bvh *BVH) Len() int {
	return len(bvh.shapes)
}

// Stats contains statistics about the BVH structure
type Stats struct {
	TotalNodes  int
	LeafNodes   int // single-shape leaves plus shapes referenced directly by a pair node
	MaxDepth    int
	AvgDepth    float64 // mean depth of shape references
	TotalShapes int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() Stats {
	if bvh.root < 0 {
		return Stats{}
	}

	stats := Stats{TotalNodes: len(bvh.nodes), TotalShapes: len(bvh.shapes)}
	bvh.collectStats(bvh.root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats walks the tree accumulating leaf depths
func (bvh *BVH) collectStats(ref, depth int, stats *Stats) {
	if ref < 0 {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth)
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return
	}

	node := &bvh.nodes[ref]
	if node.isLeaf() {
		bvh.collectStats(node.left, depth, stats)
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
