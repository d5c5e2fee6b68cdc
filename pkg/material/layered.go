package material

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Layered places a clear dielectric coating over an inner material, such as
// lacquered wood or wet surfaces. The coating's Fresnel term decides whether
// light reflects off the coating or continues into the inner layer.
type Layered struct {
	Outer *Dielectric
	Inner core.Material
}

// NewLayered creates a coated material with the given outer dielectric and
// inner material
func NewLayered(outer *Dielectric, inner core.Material) *Layered {
	return &Layered{Outer: outer, Inner: inner}
}

// Scatter lets the coating decide reflect versus refract. A reflection off
// the coating is returned directly; a refraction hands the transmitted ray
// to the inner material.
func (l *Layered) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	outerResult, ok := l.Outer.Scatter(rayIn, hit, sampler)
	if !ok {
		return core.ScatterResult{}, false
	}

	// The dielectric reflected when the scattered ray leaves the surface on
	// the incident side
	if outerResult.Scattered.Direction.Dot(hit.Normal) > 0 {
		return outerResult, true
	}

	return l.Inner.Scatter(outerResult.Scattered, hit, sampler)
}

// Emit passes through to the inner material; the clear coating itself never
// emits
func (l *Layered) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if emitter, ok := l.Inner.(core.Emitter); ok {
		return emitter.Emit(rayIn, hit)
	}
	return core.NewVec3(0, 0, 0)
}
