package core

import "math"

// PDF describes both a direction sampling procedure and the density of the
// directions it produces, used for Monte Carlo importance sampling.
// Generate must return directions whose empirical density matches Value.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF samples cosine-weighted directions in the hemisphere around a normal
type CosinePDF struct {
	u, v, w Vec3 // Orthonormal basis, w = normal
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal Vec3) CosinePDF {
	w := normal.Normalize()
	u, v := OrthonormalBasis(w)
	return CosinePDF{u: u, v: v, w: w}
}

// Value returns the cosine-weighted density: max(0, cosθ)/π
func (p CosinePDF) Value(direction Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.w)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Generate samples a cosine-weighted direction in world space
func (p CosinePDF) Generate(sampler Sampler) Vec3 {
	sample := sampler.Get2D()

	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	direction := p.u.Multiply(x).Add(p.v.Multiply(y)).Add(p.w.Multiply(zCoord))
	if direction.NearZero() {
		// Degenerate sample, fall back to the normal
		return p.w
	}
	return direction
}

// LightPDF adapts a Light into a PDF of directions from a fixed origin
type LightPDF struct {
	light  Light
	origin Vec3
}

// NewLightPDF creates a PDF that samples directions toward light from origin
func NewLightPDF(light Light, origin Vec3) LightPDF {
	return LightPDF{light: light, origin: origin}
}

// Value returns the light's solid-angle density for the direction
func (p LightPDF) Value(direction Vec3) float64 {
	return p.light.PDFValue(p.origin, direction)
}

// Generate samples a unit direction toward the light
func (p LightPDF) Generate(sampler Sampler) Vec3 {
	return p.light.RandomDirection(p.origin, sampler)
}

// MixturePDF combines several PDFs with fixed weights. Generate draws one
// component by weighted selection; Value is the weighted average of every
// component's density, which keeps the combined estimator unbiased.
type MixturePDF struct {
	pdfs    []PDF
	weights []float64
}

// NewMixturePDF creates a mixture of the given PDFs with matching weights.
// Weights are expected to sum to 1.
func NewMixturePDF(pdfs []PDF, weights []float64) MixturePDF {
	return MixturePDF{pdfs: pdfs, weights: weights}
}

// Value returns the weighted average density over all components
func (m MixturePDF) Value(direction Vec3) float64 {
	value := 0.0
	for i, p := range m.pdfs {
		value += m.weights[i] * p.Value(direction)
	}
	return value
}

// Generate selects a component by weight and delegates to it
func (m MixturePDF) Generate(sampler Sampler) Vec3 {
	target := sampler.Get1D()
	accum := 0.0
	for i, p := range m.pdfs {
		accum += m.weights[i]
		if target < accum {
			return p.Generate(sampler)
		}
	}
	// Guard against weights summing slightly below 1
	return m.pdfs[len(m.pdfs)-1].Generate(sampler)
}
