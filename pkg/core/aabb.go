package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the empty box, the identity element for Union
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.Min.X = math.Min(box.Min.X, point.X)
		box.Min.Y = math.Min(box.Min.Y, point.Y)
		box.Min.Z = math.Min(box.Min.Z, point.Z)
		box.Max.X = math.Max(box.Max.X, point.X)
		box.Max.Y = math.Max(box.Max.Y, point.Y)
		box.Max.Z = math.Max(box.Max.Z, point.Z)
	}
	return box
}

// Hit tests if a ray intersects this AABB within t using the slab method.
// For each axis the working interval shrinks to the slab's entry/exit
// parameters; the box is missed the instant the interval becomes empty.
func (aabb AABB) Hit(ray Ray, t Interval) bool {
	// An inverted (empty) box would survive the slab swap below
	if !aabb.IsValid() {
		return false
	}

	for axis := 0; axis < 3; axis++ {
		var slabMin, slabMax, origin, direction float64

		switch axis {
		case 0:
			slabMin, slabMax = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			slabMin, slabMax = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			slabMin, slabMax = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Ray parallel to the slab: inside or out, no interval update
		if math.Abs(direction) < 1e-12 {
			if origin < slabMin || origin > slabMax {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slabMin - origin) * invDirection
		t2 := (slabMax - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		t.Min = math.Max(t.Min, t1)
		t.Max = math.Min(t.Max, t2)

		if t.Max <= t.Min {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// AxisMin returns the minimum corner coordinate along the given axis
func (aabb AABB) AxisMin(axis int) float64 {
	switch axis {
	case 0:
		return aabb.Min.X
	case 1:
		return aabb.Min.Y
	default:
		return aabb.Min.Z
	}
}

// IsValid returns true if min <= max on all axes
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
