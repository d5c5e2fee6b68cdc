package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/rtwalk/go-pathtracer/pkg/output"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
	"github.com/rtwalk/go-pathtracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: default, cornell or rain")
	width := flag.Int("width", 0, "Image width in pixels (0 uses the scene default)")
	aspect := flag.Float64("aspect", 0, "Aspect ratio (0 uses the scene default)")
	samples := flag.Int("samples", 0, "Max samples per pixel (0 uses the scene default)")
	depth := flag.Int("depth", 0, "Max bounces per path (0 uses the scene default)")
	workers := flag.Int("workers", 0, "Parallel workers (0 uses CPU count - 1)")
	mode := flag.String("mode", "", "Render mode: color, bounces or samples")
	format := flag.String("format", "png", "Output format: png, webp or tga")
	outPath := flag.String("output", "", "Output file (default output/<scene>_<timestamp>.<ext>)")
	seed := flag.Int64("seed", 42, "Random seed")
	bench := flag.Bool("bench", false, "Print host info and render timing")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	imageFormat, err := output.ParseFormat(*format)
	if err != nil {
		fatalf("%v", err)
	}

	builder, ok := scene.Lookup(*sceneName, *seed)
	if !ok {
		fatalf("unknown scene %q; available: %v", *sceneName, scene.Names())
	}

	overrides := renderer.RenderConfig{
		Width:           *width,
		AspectRatio:     *aspect,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Mode:            renderer.RenderMode(*mode),
	}

	if *bench {
		printHostInfo()
	}

	r := renderer.NewRenderer(builder, overrides, renderer.NewDefaultLogger())

	start := time.Now()
	buffer, stats, err := r.RenderParallel(*seed)
	if err != nil {
		fatalf("render failed: %v", err)
	}
	elapsed := time.Since(start)

	merged := builder().RenderConfig().Merge(overrides)
	img, err := output.ToImage(buffer, merged.Width, merged.Height())
	if err != nil {
		fatalf("%v", err)
	}

	path := outputPath(*outPath, *sceneName, imageFormat, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fatalf("creating output directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		fatalf("creating %s: %v", path, err)
	}
	defer file.Close()

	if err := output.Encode(file, img, imageFormat); err != nil {
		fatalf("encoding %s: %v", path, err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", path, merged.Width, merged.Height())
	fmt.Printf("Samples: %d total, %.1f avg/pixel (min %d, max %d)\n",
		stats.TotalSamples, stats.AverageSamples(), stats.MinSamples, stats.MaxSamplesUsed)
	fmt.Printf("Bounces: %.2f avg/sample (min %d, max %d)\n",
		stats.AverageBounces(), stats.MinBounces, stats.MaxBounces)

	if *bench {
		seconds := elapsed.Seconds()
		fmt.Printf("Render time: %.2fs (%.0f samples/s)\n", seconds, float64(stats.TotalSamples)/seconds)
	}
}

// outputPath returns the explicit path when given, otherwise a timestamped
// file under output/
func outputPath(explicit, sceneName string, format output.Format, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join("output",
		fmt.Sprintf("%s_%s.%s", sceneName, now.Format("20060102_150405"), format.Extension()))
}

// printHostInfo reports the CPU and memory the benchmark ran on
func printHostInfo() {
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		fmt.Printf("CPU: %s (%d logical cores)\n", info[0].ModelName, runtime.NumCPU())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Memory: %.1f GB total, %.1f%% used\n",
			float64(vm.Total)/(1<<30), vm.UsedPercent)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pathtracer: "+format+"\n", args...)
	os.Exit(1)
}
