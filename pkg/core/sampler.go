package core

import (
	"math"
	"math/rand"
)

// Sampler provides random values for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleCone samples a direction uniformly within a cone around direction.
// cosThetaMax is the cosine of the cone's half angle.
func SampleCone(direction Vec3, cosThetaMax float64, sample Vec2) Vec3 {
	w := direction.Normalize()
	u, v := OrthonormalBasis(w)

	cosTheta := 1.0 - sample.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)

	return u.Multiply(x).Add(v.Multiply(y)).Add(w.Multiply(cosTheta))
}

// SamplePointInUnitDisk generates a random point in the unit disk by rejection
func SamplePointInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// SamplePointInUnitSphere generates a random point inside the unit sphere by rejection
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// OrthonormalBasis builds two unit vectors perpendicular to w and each other.
// w is assumed to be unit length.
func OrthonormalBasis(w Vec3) (u, v Vec3) {
	// Pick any axis not parallel to w, then cross twice
	var nt Vec3
	if math.Abs(w.X) > 0.9 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	u = nt.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v
}
