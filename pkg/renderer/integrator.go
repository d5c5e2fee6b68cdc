package renderer

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Combined PDF densities at or below this are treated as dead samples
const pdfEpsilon = 1e-8

// Russian roulette never keeps more than this continuation probability
const rouletteMaxProb = 0.95

// Integrator traces light paths through a scene. It is stateless apart from
// the read-only scene references, so one instance may serve many pixels.
type Integrator struct {
	root   core.Hittable
	lights []core.Light
	camera *Camera
	config RenderConfig
}

// NewIntegrator creates an integrator over the given scene root and lights
func NewIntegrator(root core.Hittable, lights []core.Light, camera *Camera, config RenderConfig) *Integrator {
	return &Integrator{
		root:   root,
		lights: lights,
		camera: camera,
		config: config,
	}
}

// RayColor traces a single light path and returns its radiance estimate and
// the number of bounces taken. Paths are followed iteratively with the
// throughput carried along, so deep paths cost no stack.
//
// Scratch vectors come from the pool; the caller chooses when to release.
func (in *Integrator) RayColor(ray core.Ray, sampler core.Sampler, pool *core.VecPool) (core.Vec3, int) {
	throughput := pool.Alloc(1, 1, 1)
	accum := pool.Alloc(0, 0, 0)

	bounces := 0
	for ; bounces < in.config.MaxDepth; bounces++ {
		if !in.config.DisableRoulette && bounces >= in.config.RouletteStartDepth {
			continueProb := math.Min(throughput.MaxComponent(), rouletteMaxProb)
			if sampler.Get1D() > continueProb {
				return *accum, bounces
			}
			*throughput = throughput.Multiply(1.0 / continueProb)
		}

		hit, isHit := in.root.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
		if !isHit {
			background := in.camera.BackgroundColor(ray)
			*accum = accum.Add(background.MultiplyVec(*throughput))
			return *accum, bounces
		}

		if emitter, ok := hit.Material.(core.Emitter); ok {
			*accum = accum.Add(emitter.Emit(ray, *hit).MultiplyVec(*throughput))
		}
		if hit.Material == nil {
			return *accum, bounces
		}

		result, scattered := hit.Material.Scatter(ray, *hit, sampler)
		if !scattered {
			return *accum, bounces
		}

		if result.IsSpecular() {
			*throughput = throughput.MultiplyVec(result.Attenuation)
			ray = result.Scattered
			continue
		}

		// Importance-sample a mixture of the material's own distribution
		// and the registered lights
		samplePDF := in.scatterPDF(result.PDF, hit.Point)
		direction := samplePDF.Generate(sampler)
		combined := samplePDF.Value(direction)
		if combined <= pdfEpsilon {
			// Dead sample; dividing here would blow up the estimate
			return *accum, bounces
		}

		brdf := result.Attenuation.Multiply(result.PDF.Value(direction))
		*throughput = throughput.MultiplyVec(brdf).Multiply(1.0 / combined)
		ray = core.NewRay(hit.Point, direction)
	}

	return *accum, bounces
}

// scatterPDF combines the material's PDF with one PDF per light. The
// material keeps half the total weight and the lights split the other half
// evenly, so the mixture always sums to one.
func (in *Integrator) scatterPDF(materialPDF core.PDF, origin core.Vec3) core.PDF {
	if len(in.lights) == 0 {
		return materialPDF
	}

	pdfs := make([]core.PDF, 0, len(in.lights)+1)
	weights := make([]float64, 0, len(in.lights)+1)

	pdfs = append(pdfs, materialPDF)
	weights = append(weights, 0.5)

	lightWeight := 0.5 / float64(len(in.lights))
	for _, light := range in.lights {
		pdfs = append(pdfs, core.NewLightPDF(light, origin))
		weights = append(weights, lightWeight)
	}

	return core.NewMixturePDF(pdfs, weights)
}
