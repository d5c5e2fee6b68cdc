package geometry

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// QuadLight is a rectangular area light. Directions are sampled toward
// uniform points on the quad; densities are reported in solid-angle measure.
type QuadLight struct {
	*Quad         // Embed quad for hit testing
	Area  float64 // Cached area for PDF calculations
}

// NewQuadLight creates a new quad light
func NewQuadLight(corner, u, v core.Vec3, material core.Material) *QuadLight {
	quad := NewQuad(corner, u, v, material)
	return &QuadLight{
		Quad: quad,
		Area: quad.Area(),
	}
}

// PDFValue converts the uniform area density to solid-angle measure:
// distance² / (area · cosθ) for directions that hit the quad, 0 otherwise.
func (ql *QuadLight) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hitRecord, hit := ql.Quad.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		return 0
	}

	unitDirection := direction.Normalize()
	cosTheta := math.Abs(ql.Normal.Dot(unitDirection))
	if cosTheta < 1e-8 {
		return 0
	}

	distance := hitRecord.Point.Subtract(origin).Length()
	return distance * distance / (ql.Area * cosTheta)
}

// RandomDirection samples a unit direction from origin toward a uniform
// point on the quad's parallelogram
func (ql *QuadLight) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	samplePoint := ql.Corner.
		Add(ql.U.Multiply(sample.X)).
		Add(ql.V.Multiply(sample.Y))
	return samplePoint.Subtract(origin).Normalize()
}
