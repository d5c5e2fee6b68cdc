package renderer

import (
	"math"

	"github.com/rtwalk/go-pathtracer/pkg/core"
)

// Camera generates primary rays for pixel coordinates. The viewing geometry
// is fixed at construction; GetRay is safe for concurrent use.
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Lens plane basis for defocus sampling
	lensRadius      float64
	background      Background
	width           int
	height          int
}

// NewCamera builds a thin-lens look-at camera for the given image size
func NewCamera(config CameraConfig, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2.0,
		background:      config.Background,
		width:           width,
		height:          height,
	}
}

// GetRay generates a jittered ray through pixel (i, j). Row 0 is the top of
// the image.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	s := (float64(i) + jitter.X) / float64(c.width)
	t := 1.0 - (float64(j)+jitter.Y)/float64(c.height)

	origin := c.center
	if c.lensRadius > 0 {
		disk := core.SamplePointInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(disk.X)).Add(c.v.Multiply(disk.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// BackgroundColor returns the gradient color for a ray that missed the scene
func (c *Camera) BackgroundColor(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return c.background.Bottom.Lerp(c.background.Top, t)
}
