package renderer

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// RenderMode selects what the final pixel bytes encode
type RenderMode string

const (
	// ModeColor writes the gamma-encoded average sample color
	ModeColor RenderMode = "color"
	// ModeBounces writes a heat map of average bounces per sample
	ModeBounces RenderMode = "bounces"
	// ModeSamples writes a heat map of samples taken per pixel
	ModeSamples RenderMode = "samples"
)

// RenderConfig controls image size, sampling and path termination
type RenderConfig struct {
	Width              int        // Image width in pixels
	AspectRatio        float64    // Width / height
	SamplesPerPixel    int        // Maximum samples per pixel
	MaxDepth           int        // Maximum path length in bounces
	AdaptiveTolerance  float64    // Relative confidence half-width for early stop
	AdaptiveBatchSize  int        // Samples between convergence checks
	DisableRoulette    bool       // Turns off probabilistic path termination
	RouletteStartDepth int        // First bounce where roulette applies
	Mode               RenderMode // What the output bytes encode
	NumWorkers         int        // Parallel workers; 0 means CPU count - 1
}

// DefaultRenderConfig returns the standard render configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:              400,
		AspectRatio:        16.0 / 9.0,
		SamplesPerPixel:    100,
		MaxDepth:           100,
		AdaptiveTolerance:  0.05,
		AdaptiveBatchSize:  10,
		RouletteStartDepth: 3,
		Mode:               ModeColor,
	}
}

// Merge returns a copy with any zero-valued fields of override left at the
// receiver's values
func (c RenderConfig) Merge(override RenderConfig) RenderConfig {
	merged := c
	if override.Width > 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio > 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel > 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.AdaptiveTolerance > 0 {
		merged.AdaptiveTolerance = override.AdaptiveTolerance
	}
	if override.AdaptiveBatchSize > 0 {
		merged.AdaptiveBatchSize = override.AdaptiveBatchSize
	}
	if override.RouletteStartDepth > 0 {
		merged.RouletteStartDepth = override.RouletteStartDepth
	}
	if override.Mode != "" {
		merged.Mode = override.Mode
	}
	if override.NumWorkers > 0 {
		merged.NumWorkers = override.NumWorkers
	}
	if override.DisableRoulette {
		merged.DisableRoulette = true
	}
	return merged
}

// Height returns the image height derived from width and aspect ratio,
// never below 1
func (c RenderConfig) Height() int {
	height := int(float64(c.Width) / c.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// Background is a vertical gradient evaluated by ray direction
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// CameraConfig describes the viewing geometry and background
type CameraConfig struct {
	Center        core.Vec3  // Camera position
	LookAt        core.Vec3  // Point the camera faces
	Up            core.Vec3  // World up hint
	VFov          float64    // Vertical field of view in degrees
	Aperture      float64    // Lens diameter; 0 disables defocus blur
	FocusDistance float64    // Distance to the focal plane; 0 means |Center - LookAt|
	Background    Background // Miss color gradient
}

// DefaultCameraConfig returns a camera at the origin looking down -Z with
// the classic sky gradient
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90,
		Background: Background{
			Top:    core.NewVec3(0.5, 0.7, 1.0),
			Bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
	}
}

// Merge returns a copy with any zero-valued fields of override left at the
// receiver's values
func (c CameraConfig) Merge(override CameraConfig) CameraConfig {
	merged := c
	zero := core.NewVec3(0, 0, 0)
	if !override.Center.Equals(zero) {
		merged.Center = override.Center
	}
	if !override.LookAt.Equals(zero) {
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(zero) {
		merged.Up = override.Up
	}
	if override.VFov > 0 {
		merged.VFov = override.VFov
	}
	if override.Aperture > 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		merged.FocusDistance = override.FocusDistance
	}
	if !override.Background.Top.Equals(zero) || !override.Background.Bottom.Equals(zero) {
		merged.Background = override.Background
	}
	return merged
}
