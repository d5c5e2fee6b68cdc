package geometry

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	root := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !t.Surrounds(root) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox returns a conservative box for the infinite plane.
// Axis-aligned planes get a thin slab; others a large cube.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001

	abs := core.NewVec3(math.Abs(p.Normal.X), math.Abs(p.Normal.Y), math.Abs(p.Normal.Z))
	switch {
	case abs.X > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(p.Point.X-epsilon, -largeValue, -largeValue),
			core.NewVec3(p.Point.X+epsilon, largeValue, largeValue),
		)
	case abs.Y > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, p.Point.Y-epsilon, -largeValue),
			core.NewVec3(largeValue, p.Point.Y+epsilon, largeValue),
		)
	case abs.Z > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, p.Point.Z-epsilon),
			core.NewVec3(largeValue, largeValue, p.Point.Z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
