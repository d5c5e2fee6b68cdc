package geometry

import (
	"sort"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Small clusters are stored flat instead of recursing further
const bvhLeafThreshold = 4

// BVHNode is a binary spatial partition over hittables. Interior nodes hold
// two children whose boxes union to the node box; construction guarantees
// both children are always non-nil.
type BVHNode struct {
	left  core.Hittable
	right core.Hittable
	box   core.AABB
}

// NewBVH builds a BVH over the given objects. The input slice is copied so
// concurrent builds over the same scene description stay independent.
func NewBVH(objects []core.Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{left: NewNothing(), right: NewNothing(), box: core.EmptyAABB()}
	}
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)
	return buildBVH(objectsCopy)
}

func buildBVH(objects []core.Hittable) *BVHNode {
	box := core.EmptyAABB()
	for _, object := range objects {
		box = box.Union(object.BoundingBox())
	}
	axis := box.LongestAxis()

	node := &BVHNode{box: box}

	switch {
	case len(objects) == 1:
		// Both children reference the same object; cheaper than a
		// one-element list and traversal handles the double hit test
		node.left = objects[0]
		node.right = objects[0]

	case len(objects) == 2:
		a, b := objects[0], objects[1]
		if a.BoundingBox().AxisMin(axis) > b.BoundingBox().AxisMin(axis) {
			a, b = b, a
		}
		node.left = a
		node.right = b

	case len(objects) <= bvhLeafThreshold:
		node.left = NewHittableList(objects...)
		node.right = NewNothing()

	default:
		sortByAxisMin(objects, axis)
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid])
		node.right = buildBVH(objects[mid:])
	}

	return node
}

// sortByAxisMin sorts objects by their bounding box minimum along the axis
func sortByAxisMin(objects []core.Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisMin(axis) < objects[j].BoundingBox().AxisMin(axis)
	})
}

// Hit tests the node box first, then both children. The right child is
// tested with the interval narrowed to the left hit's t, so a non-nil right
// hit is always the closer one.
func (n *BVHNode) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, t) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, t)
	if hitLeft {
		t.Max = leftHit.T
	}

	rightHit, hitRight := n.right.Hit(ray, t)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.box
}
