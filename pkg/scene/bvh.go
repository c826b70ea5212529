package scene

import (
	"sort"

	"github.com/df07/go-raycaster/pkg/core"
)

// bvhNode represents a node in the Bounding Volume Hierarchy
type bvhNode struct {
	box     AABB
	left    *bvhNode
	right   *bvhNode
	objects []*Object // Leaf contents, nil for internal nodes
}

// BVH is a Bounding Volume Hierarchy over scene objects
type BVH struct {
	root *bvhNode
}

// Leaf threshold: this many objects or fewer are searched linearly
const leafThreshold = 8

// NewBVH builds a hierarchy over objects. The slice is copied.
func NewBVH(objects []*Object) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}
	own := make([]*Object, len(objects))
	copy(own, objects)
	return &BVH{root: buildBVH(own)}
}

// buildBVH splits at the median along the longest axis
func buildBVH(objects []*Object) *bvhNode {
	box := objects[0].Shape.BoundingBox()
	for _, o := range objects[1:] {
		box = box.Union(o.Shape.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &bvhNode{box: box, objects: objects}
	}

	ax := box.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return axis(objects[i].Shape.BoundingBox().Center(), ax) < axis(objects[j].Shape.BoundingBox().Center(), ax)
	})

	mid := len(objects) / 2
	return &bvhNode{
		box:   box,
		left:  buildBVH(objects[:mid]),
		right: buildBVH(objects[mid:]),
	}
}

// Hit returns the closest hit among all objects
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	if b.root == nil {
		return core.SurfaceHit{}, false
	}
	return b.root.hit(ray, tMin, tMax, wantExit)
}

// Any reports whether any object is hit in [tMin, tMax]
func (b *BVH) Any(ray core.Ray, tMin, tMax float64) bool {
	return b.root != nil && b.root.any(ray, tMin, tMax)
}

// Depth returns the number of levels in the hierarchy
func (b *BVH) Depth() int {
	return b.root.depth()
}

func (n *bvhNode) hit(ray core.Ray, tMin, tMax float64, wantExit bool) (core.SurfaceHit, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return core.SurfaceHit{}, false
	}

	var closest core.SurfaceHit
	found := false
	if n.objects != nil {
		for _, o := range n.objects {
			if h, ok := o.hit(ray, tMin, tMax, wantExit); ok {
				closest, found, tMax = h, true, h.TEnter
			}
		}
		return closest, found
	}

	for _, child := range [2]*bvhNode{n.left, n.right} {
		if h, ok := child.hit(ray, tMin, tMax, wantExit); ok {
			closest, found, tMax = h, true, h.TEnter
		}
	}
	return closest, found
}

func (n *bvhNode) any(ray core.Ray, tMin, tMax float64) bool {
	if !n.box.Hit(ray, tMin, tMax) {
		return false
	}
	if n.objects != nil {
		for _, o := range n.objects {
			if _, ok := o.Shape.Hit(ray, tMin, tMax, false); ok {
				return true
			}
		}
		return false
	}
	return n.left.any(ray, tMin, tMax) || n.right.any(ray, tMin, tMax)
}

func (n *bvhNode) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
