package material

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Metal is a specular reflector with optional roughness. Fuzz perturbs the
// mirror direction by a scaled random offset; 0 is a perfect mirror.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a metallic material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the incident ray about the normal and perturbs it by fuzz.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		offset := core.SamplePointInUnitSphere(sampler).Multiply(m.Fuzz)
		reflected = reflected.Add(offset)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   core.NewRay(hit.Point, reflected),
	}, true
}
