package material

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Mix blends two materials probabilistically. Each scatter call delegates
// entirely to one of the two; Ratio is the probability of choosing First.
type Mix struct {
	First  core.Material
	Second core.Material
	Ratio  float64
}

// NewMix creates a probabilistic blend of two materials. Ratio is clamped
// to [0, 1].
func NewMix(first, second core.Material, ratio float64) *Mix {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return &Mix{First: first, Second: second, Ratio: ratio}
}

// Scatter delegates to one of the two materials chosen by a weighted draw
func (m *Mix) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.First.Scatter(rayIn, hit, sampler)
	}
	return m.Second.Scatter(rayIn, hit, sampler)
}

// Emit returns the weight-blended sum of both materials' emission
func (m *Mix) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	emission := core.NewVec3(0, 0, 0)
	if emitter, ok := m.First.(core.Emitter); ok {
		emission = emission.Add(emitter.Emit(rayIn, hit).Multiply(m.Ratio))
	}
	if emitter, ok := m.Second.(core.Emitter); ok {
		emission = emission.Add(emitter.Emit(rayIn, hit).Multiply(1.0 - m.Ratio))
	}
	return emission
}
