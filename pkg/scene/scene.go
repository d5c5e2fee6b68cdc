package scene

import (
	"sort"

	"github.com/rtwalk/go-pathtracer/pkg/core"
	"github.com/rtwalk/go-pathtracer/pkg/renderer"
)

// Scene bundles a built intersection structure with its lights and camera
// and render settings. It satisfies renderer.Scene.
type Scene struct {
	root   core.Hittable
	lights []core.Light
	camera renderer.CameraConfig
	render renderer.RenderConfig
}

// Root returns the scene's intersection structure
func (s *Scene) Root() core.Hittable { return s.root }

// Lights returns the importance-sampled light sources
func (s *Scene) Lights() []core.Light { return s.lights }

// CameraConfig returns the scene's viewing setup
func (s *Scene) CameraConfig() renderer.CameraConfig { return s.camera }

// RenderConfig returns the scene's preferred render settings
func (s *Scene) RenderConfig() renderer.RenderConfig { return s.render }

// builders maps scene names to seeded constructors
var builders = map[string]func(seed int64) *Scene{
	"default": func(seed int64) *Scene { return NewDefaultScene(seed) },
	"cornell": func(seed int64) *Scene { return NewCornellScene() },
	"rain":    func(seed int64) *Scene { return NewRainScene(seed) },
}

// Lookup returns a renderer.SceneBuilder for the named scene. The seed
// controls procedural placement; scenes without randomness ignore it.
func Lookup(name string, seed int64) (renderer.SceneBuilder, bool) {
	build, ok := builders[name]
	if !ok {
		return nil, false
	}
	return func() renderer.Scene { return build(seed) }, true
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
