package material

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the ray depending on the angle of incidence.
// Total internal reflection and the Fresnel term (Schlick approximation)
// both produce reflection; attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	etaRatio := d.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, etaRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, etaRatio)
	}

	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// schlickReflectance approximates the Fresnel reflectance
func schlickReflectance(cosTheta, etaRatio float64) float64 {
	r0 := (1.0 - etaRatio) / (1.0 + etaRatio)
	r0 = r0 * r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosTheta, 5)
}
