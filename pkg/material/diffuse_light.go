package material

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// DiffuseLight is an emissive material that radiates a constant color and
// never scatters
type DiffuseLight struct {
	Emission core.Vec3
}

// NewDiffuseLight creates an emissive material with the given radiance
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always absorbs; emission is the only contribution
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the light's radiance
func (dl *DiffuseLight) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return dl.Emission
}
