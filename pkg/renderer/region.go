package renderer

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Region is a horizontal band of rows [RowStart, RowEnd). Regions handed to
// different workers never overlap, so each worker's writes into the shared
// buffer touch disjoint byte ranges.
type Region struct {
	RowStart int
	RowEnd   int
}

// renderRegion renders every pixel of the region into buffer, sampling
// adaptively up to the configured maximum. The pool is released back to the
// sample mark after every sample and to the pixel mark after every pixel.
func renderRegion(region Region, integrator *Integrator, camera *Camera, config RenderConfig,
	buffer []byte, sampler core.Sampler, pool *core.VecPool) RenderStats {

	width := config.Width
	stats := NewRenderStats(config.SamplesPerPixel)

	for j := region.RowStart; j < region.RowEnd; j++ {
		for i := 0; i < width; i++ {
			pixelMark := pool.Mark()

			var ps PixelStats
			for s := 0; s < config.SamplesPerPixel; s++ {
				sampleMark := pool.Mark()
				ray := camera.GetRay(i, j, sampler)
				color, bounces := integrator.RayColor(ray, sampler, pool)
				ps.AddSample(color, bounces)
				pool.Release(sampleMark)

				if config.AdaptiveTolerance > 0 &&
					ps.SampleCount >= 2 &&
					ps.SampleCount%config.AdaptiveBatchSize == 0 &&
					ps.Converged(config.AdaptiveTolerance) {
					break
				}
			}

			writePixel(buffer, i, j, config, &ps)
			stats.RecordPixel(&ps)
			pool.Release(pixelMark)
		}
	}

	return stats
}

// writePixel encodes one pixel into its three bytes of the buffer according
// to the render mode
func writePixel(buffer []byte, i, j int, config RenderConfig, ps *PixelStats) {
	offset := (j*config.Width + i) * 3

	switch config.Mode {
	case ModeBounces:
		frac := ps.AverageBounces() / float64(config.MaxDepth)
		buffer[offset] = 0
		buffer[offset+1] = 0
		buffer[offset+2] = linearByte(frac)

	case ModeSamples:
		frac := float64(ps.SampleCount) / float64(config.SamplesPerPixel)
		buffer[offset] = linearByte(frac)
		buffer[offset+1] = 0
		buffer[offset+2] = 0

	default:
		color := ps.Color()
		buffer[offset] = gammaByte(color.X)
		buffer[offset+1] = gammaByte(color.Y)
		buffer[offset+2] = gammaByte(color.Z)
	}
}

// gammaByte converts a linear color channel to a gamma-2 encoded byte
func gammaByte(channel float64) byte {
	clamped := math.Max(0, math.Min(1, channel))
	return byte(255.999 * math.Sqrt(clamped))
}

// linearByte converts a [0, 1] fraction to a byte without gamma
func linearByte(frac float64) byte {
	clamped := math.Max(0, math.Min(1, frac))
	return byte(255.999 * clamped)
}
