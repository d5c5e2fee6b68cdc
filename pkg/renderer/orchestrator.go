package renderer

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Scratch pool sizing per worker. The integrator holds only a handful of
// live vectors per path, so a small pool covers deep recursion comfortably.
const (
	poolBlockSize = 64
	poolMaxVecs   = 4096
)

// Scene supplies everything a worker needs to render: the intersection
// structure, the sampled lights and the camera and render settings.
type Scene interface {
	Root() core.Hittable
	Lights() []core.Light
	CameraConfig() CameraConfig
	RenderConfig() RenderConfig
}

// SceneBuilder constructs a fresh scene instance. Workers call the builder
// themselves instead of sharing one scene, so each worker owns its BVH and
// camera outright.
type SceneBuilder func() Scene

// Renderer orchestrates rendering a scene into a pixel buffer
type Renderer struct {
	buildScene SceneBuilder
	config     RenderConfig
	logger     core.Logger
}

// NewRenderer creates a renderer. The scene's own render config is merged
// with the given overrides at render time.
func NewRenderer(builder SceneBuilder, overrides RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		buildScene: builder,
		config:     overrides,
		logger:     logger,
	}
}

// regionResult carries one worker's outcome back to the orchestrator
type regionResult struct {
	stats RenderStats
	err   error
}

// Render renders the whole image on the calling goroutine and returns the
// RGB byte buffer and aggregate statistics
func (r *Renderer) Render(seed int64) ([]byte, RenderStats, error) {
	scene := r.buildScene()
	config := scene.RenderConfig().Merge(r.config)

	height := config.Height()
	if err := validateDimensions(config.Width, height); err != nil {
		return nil, RenderStats{}, err
	}

	camera := NewCamera(scene.CameraConfig(), config.Width, height)
	integrator := NewIntegrator(scene.Root(), scene.Lights(), camera, config)

	buffer := make([]byte, config.Width*height*3)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	pool := core.NewVecPool(poolBlockSize, poolMaxVecs)

	region := Region{RowStart: 0, RowEnd: height}
	stats := renderRegion(region, integrator, camera, config, buffer, sampler, pool)

	r.logger.Printf("Rendered %dx%d: %d samples, %.1f avg samples/pixel, %.1f avg bounces/sample",
		config.Width, height, stats.TotalSamples, stats.AverageSamples(), stats.AverageBounces())

	return buffer, stats, nil
}

// RenderParallel renders the image with a pool of workers, each owning a
// private scene, sampler and vector pool. All workers write into one shared
// buffer restricted to disjoint row bands.
func (r *Renderer) RenderParallel(seed int64) ([]byte, RenderStats, error) {
	// Probe the merged config once to size the buffer and the bands
	probe := r.buildScene()
	config := probe.RenderConfig().Merge(r.config)

	height := config.Height()
	if err := validateDimensions(config.Width, height); err != nil {
		return nil, RenderStats{}, err
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() - 1
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > height {
		numWorkers = height
	}

	buffer := make([]byte, config.Width*height*3)
	regions := partitionRows(height, numWorkers)
	results := make(chan regionResult, len(regions))

	r.logger.Printf("Rendering %dx%d with %d workers", config.Width, height, numWorkers)

	for workerID, region := range regions {
		go func(workerID int, region Region) {
			defer func() {
				if p := recover(); p != nil {
					results <- regionResult{err: fmt.Errorf("renderer: worker %d failed: %v", workerID, p)}
				}
			}()

			// Each worker rebuilds the scene so nothing but the buffer
			// is shared between goroutines
			scene := r.buildScene()
			workerConfig := scene.RenderConfig().Merge(r.config)
			camera := NewCamera(scene.CameraConfig(), workerConfig.Width, height)
			integrator := NewIntegrator(scene.Root(), scene.Lights(), camera, workerConfig)

			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(workerID))))
			pool := core.NewVecPool(poolBlockSize, poolMaxVecs)

			stats := renderRegion(region, integrator, camera, workerConfig, buffer, sampler, pool)
			results <- regionResult{stats: stats}
		}(workerID, region)
	}

	total := NewRenderStats(config.SamplesPerPixel)
	var firstErr error
	for range regions {
		result := <-results
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		total.Merge(result.stats)
	}
	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	r.logger.Printf("Rendered %dx%d: %d samples, %.1f avg samples/pixel, %.1f avg bounces/sample",
		config.Width, height, total.TotalSamples, total.AverageSamples(), total.AverageBounces())

	return buffer, total, nil
}

// partitionRows splits height rows into count contiguous non-empty bands
func partitionRows(height, count int) []Region {
	regions := make([]Region, 0, count)
	base := height / count
	extra := height % count

	row := 0
	for i := 0; i < count; i++ {
		size := base
		if i < extra {
			size++
		}
		regions = append(regions, Region{RowStart: row, RowEnd: row + size})
		row += size
	}
	return regions
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("renderer: invalid image dimensions %dx%d", width, height)
	}
	return nil
}
