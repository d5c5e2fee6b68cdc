package material

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Lambertian is an ideal diffuse material with cosine-weighted scattering
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns the albedo and a cosine-weighted PDF around the surface
// normal; the integrator draws the outgoing direction from the PDF
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: l.Albedo,
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}
