package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.World
	CameraConfig renderer.CameraConfig
}

// Builder creates a scene, drawing any randomness from sampler
type Builder func(sampler core.Sampler) *Scene

var builders = map[string]Builder{
	"default":       NewRandomSpheresScene,
	"random":        NewRandomSpheresScene,
	"three-spheres": func(core.Sampler) *Scene { return NewThreeSpheresScene() },
	"ground":        func(core.Sampler) *Scene { return NewGroundScene() },
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

// Create builds the scene registered under name
func Create(name string, sampler core.Sampler) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(sampler), nil
}
