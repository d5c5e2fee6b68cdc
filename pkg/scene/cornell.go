package scene

import (
	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/geometry"
	"github.com/rtwalk/go-pathtracer/pkg/material"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates the classic Cornell box: white floor, ceiling and
// back wall, red left wall, green right wall, a ceiling area light and two
// spheres standing in for the boxes
func NewCornellScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	objects := []core.Hittable{
		// Left wall (red), right wall (green)
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		// Floor, ceiling, back wall
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	}

	// Ceiling light, slightly below the ceiling plane
	light := geometry.NewQuadLight(
		core.NewVec3(213, 554, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)),
	)
	objects = append(objects, light)

	// A glass sphere and a fuzzy metal sphere on the floor
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(380, 120, 370), 120,
			material.NewLayered(material.NewDielectric(1.5),
				material.NewLambertian(core.NewVec3(0.7, 0.6, 0.5)))),
	)

	render := renderer.DefaultRenderConfig()
	render.Width = 400
	render.AspectRatio = 1.0
	render.SamplesPerPixel = 200
	render.MaxDepth = 50

	camera := renderer.DefaultCameraConfig()
	camera.Center = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VFov = 40
	// The box is fully enclosed; rays should never escape to a sky
	camera.Background = renderer.Background{
		Top:    core.NewVec3(0, 0, 0),
		Bottom: core.NewVec3(0, 0, 0),
	}

	return &Scene{
		root:   geometry.NewBVH(objects),
		lights: []core.Light{light},
		camera: camera,
		render: render,
	}
}
