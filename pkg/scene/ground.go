package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewGroundScene creates the ground sphere alone, seen from straight above.
// Useful for checking the diffuse falloff against the sky.
func NewGroundScene() *Scene {
	return &Scene{
		Name:  "ground",
		World: geometry.NewWorld(groundSphere()),
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 5, 0),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 0, -1),
			VFov:          60,
			AspectRatio:   3.0 / 2.0,
			Aperture:      0,
			FocusDistance: 5,
		},
	}
}
