package renderer

import (
	"math"
	"testing"

	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/geometry"
)

// centerSampler always returns 0.5, putting rays through pixel centers
type centerSampler struct{}

func (centerSampler) Get1D() float64   { return 0.5 }
func (centerSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (centerSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

func TestCamera_CenterRay(t *testing.T) {
	config := DefaultCameraConfig()
	camera := NewCamera(config, 101, 101)

	ray := camera.GetRay(50, 50, centerSampler{})
	direction := ray.Direction.Normalize()
	expected := core.NewVec3(0, 0, -1)

	if direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray toward %v, got %v", expected, direction)
	}
	if !ray.Origin.Equals(config.Center) {
		t.Errorf("Expected origin %v, got %v", config.Center, ray.Origin)
	}
}

func TestCamera_CenterRayHitsSphere(t *testing.T) {
	// Sphere of radius 0.5 directly ahead; the center ray must strike its
	// near surface at t = 0.5 on the front face
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)
	camera := NewCamera(DefaultCameraConfig(), 101, 101)

	ray := camera.GetRay(50, 50, centerSampler{})
	hit, isHit := sphere.Hit(core.NewRay(ray.Origin, ray.Direction.Normalize()), core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Center ray should hit the sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t = 0.5, got %f", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Center ray should hit the front face")
	}
}

func TestCamera_TopRowPointsUp(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 100, 100)

	top := camera.GetRay(50, 0, centerSampler{})
	bottom := camera.GetRay(50, 99, centerSampler{})

	if top.Direction.Y <= bottom.Direction.Y {
		t.Errorf("Row 0 should be the top of the image: top y=%f, bottom y=%f",
			top.Direction.Y, bottom.Direction.Y)
	}
}

func TestCamera_BackgroundGradient(t *testing.T) {
	config := DefaultCameraConfig()
	config.Background = Background{
		Top:    core.NewVec3(0, 0, 1),
		Bottom: core.NewVec3(1, 1, 1),
	}
	camera := NewCamera(config, 100, 100)

	up := camera.BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))
	if !up.Equals(config.Background.Top) {
		t.Errorf("Straight up should return the top color, got %v", up)
	}

	down := camera.BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)))
	if !down.Equals(config.Background.Bottom) {
		t.Errorf("Straight down should return the bottom color, got %v", down)
	}

	level := camera.BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)))
	expected := config.Background.Bottom.Lerp(config.Background.Top, 0.5)
	if level.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Horizontal ray should return the midpoint, got %v", level)
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	config := DefaultCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 1.0
	camera := NewCamera(config, 100, 100)

	// With a lens, ray origins spread around the camera center
	ray := camera.GetRay(50, 50, centerSampler{})
	if math.IsNaN(ray.Origin.X) || math.IsNaN(ray.Direction.X) {
		t.Fatal("Defocus ray should be finite")
	}

	pinhole := NewCamera(DefaultCameraConfig(), 100, 100)
	if !pinhole.GetRay(50, 50, centerSampler{}).Origin.Equals(core.NewVec3(0, 0, 0)) {
		t.Error("Pinhole camera should fire all rays from the center")
	}
}
