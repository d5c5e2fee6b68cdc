package renderer

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// PixelStats accumulates running statistics for one pixel's samples
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for the final color
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Squared luminance for variance
	SampleCount      int       // Samples taken so far
	BounceAccum      int       // Total bounces across all samples
	MinBounces       int       // Fewest bounces of any sample
	MaxBounces       int       // Most bounces of any sample
}

// AddSample records one sample's color and path length
func (ps *PixelStats) AddSample(color core.Vec3, bounces int) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.BounceAccum += bounces

	if ps.SampleCount == 0 || bounces < ps.MinBounces {
		ps.MinBounces = bounces
	}
	if bounces > ps.MaxBounces {
		ps.MaxBounces = bounces
	}
	ps.SampleCount++
}

// Color returns the average sample color so far
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.NewVec3(0, 0, 0)
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// AverageBounces returns the mean path length across samples
func (ps *PixelStats) AverageBounces() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return float64(ps.BounceAccum) / float64(ps.SampleCount)
}

// Converged reports whether the 95% confidence half-width of the mean
// luminance has dropped below tolerance times the mean. Needs at least two
// samples; a degenerate or invalid variance counts as converged so that
// constant-color pixels stop sampling.
func (ps *PixelStats) Converged(tolerance float64) bool {
	if ps.SampleCount < 2 {
		return false
	}

	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := (ps.LuminanceSqAccum - ps.LuminanceAccum*ps.LuminanceAccum/n) / (n - 1)

	if variance <= 0 || math.IsNaN(variance) {
		return true
	}

	halfWidth := 1.96 * math.Sqrt(variance) / math.Sqrt(n)
	return halfWidth <= tolerance*mean
}

// RenderStats aggregates sampling statistics across pixels and workers
type RenderStats struct {
	TotalPixels     int // Pixels rendered
	TotalSamples    int // Samples across all pixels
	MinSamples      int // Fewest samples any pixel took
	MaxSamplesUsed  int // Most samples any pixel took
	SamplesPerPixel int // Configured maximum samples per pixel
	TotalBounces    int // Bounces across all samples
	MinBounces      int // Fewest bounces of any sample
	MaxBounces      int // Most bounces of any sample
}

// NewRenderStats creates empty statistics for the given sample limit
func NewRenderStats(samplesPerPixel int) RenderStats {
	return RenderStats{SamplesPerPixel: samplesPerPixel}
}

// RecordPixel folds one finished pixel into the aggregate
func (rs *RenderStats) RecordPixel(ps *PixelStats) {
	if rs.TotalPixels == 0 || ps.SampleCount < rs.MinSamples {
		rs.MinSamples = ps.SampleCount
	}
	if ps.SampleCount > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = ps.SampleCount
	}
	if rs.TotalPixels == 0 || ps.MinBounces < rs.MinBounces {
		rs.MinBounces = ps.MinBounces
	}
	if ps.MaxBounces > rs.MaxBounces {
		rs.MaxBounces = ps.MaxBounces
	}

	rs.TotalPixels++
	rs.TotalSamples += ps.SampleCount
	rs.TotalBounces += ps.BounceAccum
}

// Merge folds another aggregate into this one
func (rs *RenderStats) Merge(other RenderStats) {
	if other.TotalPixels == 0 {
		return
	}
	if rs.TotalPixels == 0 || other.MinSamples < rs.MinSamples {
		rs.MinSamples = other.MinSamples
	}
	if other.MaxSamplesUsed > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = other.MaxSamplesUsed
	}
	if rs.TotalPixels == 0 || other.MinBounces < rs.MinBounces {
		rs.MinBounces = other.MinBounces
	}
	if other.MaxBounces > rs.MaxBounces {
		rs.MaxBounces = other.MaxBounces
	}

	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.TotalBounces += other.TotalBounces
}

// AverageSamples returns the mean samples per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// AverageBounces returns the mean bounces per sample
func (rs RenderStats) AverageBounces() float64 {
	if rs.TotalSamples == 0 {
		return 0
	}
	return float64(rs.TotalBounces) / float64(rs.TotalSamples)
}
