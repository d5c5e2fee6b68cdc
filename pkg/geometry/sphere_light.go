package geometry

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// SphereLight is a sphere usable as an importance-sampled light source.
// Directions are sampled uniformly within the cone the sphere subtends as
// seen from the shading point.
type SphereLight struct {
	*Sphere // Embed sphere for hit testing
}

// NewSphereLight creates a new spherical light
func NewSphereLight(center core.Vec3, radius float64, material core.Material) *SphereLight {
	return &SphereLight{Sphere: NewSphere(center, radius, material)}
}

// PDFValue returns 1/solidAngle for directions that hit the sphere, 0 otherwise
func (sl *SphereLight) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	if _, hit := sl.Sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); !hit {
		return 0
	}

	cosThetaMax, ok := sl.coneCosine(origin)
	if !ok {
		// Origin inside the sphere subtends the full sphere of directions
		return 1.0 / (4.0 * math.Pi)
	}

	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1.0 / solidAngle
}

// RandomDirection samples a unit direction from origin uniformly within the
// cone subtended by the sphere
func (sl *SphereLight) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	toCenter := sl.Center.Subtract(origin)

	cosThetaMax, ok := sl.coneCosine(origin)
	if !ok {
		// Inside the sphere: any direction reaches the surface
		return core.SamplePointInUnitSphere(sampler).Normalize()
	}

	return core.SampleCone(toCenter, cosThetaMax, sampler.Get2D())
}

// coneCosine returns the cosine of the sphere's angular radius as seen from
// origin, and false when origin lies inside the sphere.
func (sl *SphereLight) coneCosine(origin core.Vec3) (float64, bool) {
	distSquared := sl.Center.Subtract(origin).LengthSquared()
	rSquared := sl.Radius * sl.Radius
	if distSquared <= rSquared {
		return 0, false
	}
	return math.Sqrt(1.0 - rSquared/distSquared), true
}
