package scene

import (
	"math/rand"

	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/geometry"
	"github.com/rtwalk/go-pathtracer/pkg/material"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
)

// NewRainScene creates a field of small glass droplets suspended over a wet
// ground plane, lit by a bright overhead quad
func NewRainScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	// Wet asphalt: dark diffuse base under a thin clear coat
	ground := material.NewLayered(
		material.NewDielectric(1.33),
		material.NewLambertian(core.NewVec3(0.1, 0.1, 0.12)),
	)

	objects := []core.Hittable{
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
	}

	droplet := material.NewDielectric(1.33)
	for i := 0; i < 400; i++ {
		center := core.NewVec3(
			20*random.Float64()-10,
			0.2+8*random.Float64(),
			20*random.Float64()-14,
		)
		radius := 0.02 + 0.04*random.Float64()
		objects = append(objects, geometry.NewSphere(center, radius, droplet))
	}

	light := geometry.NewQuadLight(
		core.NewVec3(-4, 12, -12),
		core.NewVec3(8, 0, 0),
		core.NewVec3(0, 0, 8),
		material.NewDiffuseLight(core.NewVec3(8, 8, 9)),
	)
	objects = append(objects, light)

	render := renderer.DefaultRenderConfig()
	render.Width = 400
	render.AspectRatio = 16.0 / 9.0
	render.SamplesPerPixel = 150
	render.MaxDepth = 50

	camera := renderer.DefaultCameraConfig()
	camera.Center = core.NewVec3(0, 2, 4)
	camera.LookAt = core.NewVec3(0, 2, -6)
	camera.VFov = 50
	camera.Background = renderer.Background{
		Top:    core.NewVec3(0.05, 0.06, 0.1),
		Bottom: core.NewVec3(0.12, 0.12, 0.15),
	}

	return &Scene{
		root:   geometry.NewBVH(objects),
		lights: []core.Light{light},
		camera: camera,
		render: render,
	}
}
