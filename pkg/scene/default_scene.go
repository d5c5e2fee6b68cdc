package scene

import (
	"math/rand"

	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/geometry"
	"github.com/rtwalk/go-pathtracer/pkg/material"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the showcase scene: three large spheres over a
// diffuse ground with a field of small random spheres, lit by the sky and
// one spherical lamp
func NewDefaultScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	objects := make([]core.Hittable, 0, 512)
	lights := make([]core.Light, 0, 1)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Hero spheres
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	lamp := geometry.NewSphereLight(core.NewVec3(0, 7, 0), 1.5,
		material.NewDiffuseLight(core.NewVec3(6, 6, 6)))
	objects = append(objects, lamp)
	lights = append(lights, lamp)

	// Field of small random spheres, skipping the hero positions
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 ||
				center.Subtract(core.NewVec3(-4, 0.2, 0)).Length() <= 0.9 ||
				center.Subtract(core.NewVec3(0, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			choice := random.Float64()
			var mat core.Material
			switch {
			case choice < 0.8:
				albedo := core.NewVec3(random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64())
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := core.NewVec3(0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64())
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, geometry.NewSphere(center, 0.2, mat))
		}
	}

	render := renderer.DefaultRenderConfig()
	render.Width = 400
	render.AspectRatio = 16.0 / 9.0
	render.SamplesPerPixel = 100
	render.MaxDepth = 50

	camera := renderer.DefaultCameraConfig()
	camera.Center = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.VFov = 20
	camera.Aperture = 0.1
	camera.FocusDistance = 10.0

	return &Scene{
		root:   geometry.NewBVH(objects),
		lights: lights,
		camera: camera,
		render: render,
	}
}
