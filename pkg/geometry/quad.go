package geometry

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (computed from U × V)
	Material core.Material // Material of the quad
	d        float64       // Plane equation constant: normal · point = d
	w        core.Vec3     // Cached vector for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Area returns the surface area of the quad: |u × v|
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad's plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	root := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if !t.Surrounds(root) {
		return nil, false
	}

	hitPoint := ray.At(root)
	hitVector := hitPoint.Subtract(q.Corner)

	// Barycentric coordinates within the parallelogram
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	box := core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	// Pad flat axes so axis-aligned quads keep a usable box
	const pad = 1e-4
	padVec := core.NewVec3(pad, pad, pad)
	return core.NewAABB(box.Min.Subtract(padVec), box.Max.Add(padVec))
}
