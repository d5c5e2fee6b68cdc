package geometry

import "github.com/rtwalk/go-pathtracer/pkg/core"

// HittableList is a flat group of hittables searched linearly
type HittableList struct {
	Objects []core.Hittable
	box     core.AABB
}

// NewHittableList creates a list over the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	box := core.EmptyAABB()
	for _, object := range objects {
		box = box.Union(object.BoundingBox())
	}
	return &HittableList{Objects: objects, box: box}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.box = l.box.Union(object.BoundingBox())
}

// Hit returns the closest hit among all objects, narrowing the interval's
// upper bound as hits are found
func (l *HittableList) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, t); isHit {
			closestHit = hit
			t.Max = hit.T
		}
	}
	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all objects' boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.box
}

// Nothing is a hittable that never intersects anything. It fills the right
// child of shallow BVH leaves so traversal needs no nil checks.
type Nothing struct{}

// NewNothing creates the always-miss hittable
func NewNothing() Nothing {
	return Nothing{}
}

// Hit always misses
func (Nothing) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	return nil, false
}

// BoundingBox returns the empty box, the identity for union
func (Nothing) BoundingBox() core.AABB {
	return core.EmptyAABB()
}
