package server

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/image/draw"

	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/output"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
	"github.com/rtwalk/go-pathtracer/pkg/scene"
)

// RenderRequest is the JSON body of a render call. Zero-valued fields fall
// back to the scene's own configuration.
type RenderRequest struct {
	Scene    string `json:"scene"`
	Width    int    `json:"width"`
	Samples  int    `json:"samples"`
	MaxDepth int    `json:"maxDepth"`
	Workers  int    `json:"workers"`
	Mode     string `json:"mode"`
	Format   string `json:"format"`
	Seed     int64  `json:"seed"`
}

// Server exposes rendering over HTTP
type Server struct {
	echo   *echo.Echo
	logger core.Logger
}

// New creates a server with all routes registered
func New(logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{echo: e, logger: logger}
	e.POST("/api/render", s.handleRender)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/healthz", s.handleHealth)
	return s
}

// Start listens on the given address until the server fails
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the route tree for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleRender(c echo.Context) error {
	req := new(RenderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = string(output.FormatPNG)
	}

	format, err := output.ParseFormat(req.Format)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	builder, ok := scene.Lookup(req.Scene, req.Seed)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("unknown scene %q", req.Scene),
		})
	}

	overrides := renderer.RenderConfig{
		Width:           req.Width,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.MaxDepth,
		NumWorkers:      req.Workers,
		Mode:            renderer.RenderMode(req.Mode),
	}

	r := renderer.NewRenderer(builder, overrides, s.logger)
	buffer, stats, err := r.RenderParallel(req.Seed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// Recover the rendered dimensions from the merged config
	merged := builder().RenderConfig().Merge(overrides)
	img, err := output.ToImage(buffer, merged.Width, merged.Height())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if img, err = applyPreview(img, c.QueryParam("preview")); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var encoded bytes.Buffer
	if err := output.Encode(&encoded, img, format); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	s.logger.Printf("Rendered %q (%d samples, %.1f avg/pixel) as %s",
		req.Scene, stats.TotalSamples, stats.AverageSamples(), format)

	return c.Blob(http.StatusOK, contentType(format), encoded.Bytes())
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"scenes": scene.Names()})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// applyPreview downscales the image by an integer factor from the preview
// query parameter; an empty parameter leaves the image untouched
func applyPreview(img *image.NRGBA, param string) (*image.NRGBA, error) {
	if param == "" {
		return img, nil
	}

	factor, err := strconv.Atoi(param)
	if err != nil || factor < 1 {
		return nil, fmt.Errorf("preview must be a positive integer, got %q", param)
	}
	if factor == 1 {
		return img, nil
	}

	bounds := img.Bounds()
	width := bounds.Dx() / factor
	height := bounds.Dy() / factor
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return scaled, nil
}

func contentType(format output.Format) string {
	switch format {
	case output.FormatPNG:
		return "image/png"
	case output.FormatWebP:
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
