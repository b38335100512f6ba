package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

const (
	largeSphereRadius = 1.0
	smallSphereRadius = 0.2
	gridExtent        = 11
)

// NewRandomSpheresScene creates the cover scene: a gray ground, three large
// spheres and a jittered grid of small random spheres
func NewRandomSpheresScene(sampler core.Sampler) *Scene {
	world := geometry.NewWorld(largeSpheres()...)

	metalCenter := core.NewVec3(4, largeSphereRadius, 0)
	for i := -gridExtent; i < gridExtent; i++ {
		for j := -gridExtent; j < gridExtent; j++ {
			center := core.NewVec3(
				float64(i)+sampler.Get1D()*(largeSphereRadius+smallSphereRadius),
				smallSphereRadius,
				float64(j)+sampler.Get1D()*(largeSphereRadius+smallSphereRadius),
			)

			// Keep small spheres clear of the metal sphere
			if center.Subtract(metalCenter).Length() > largeSphereRadius+smallSphereRadius {
				world.Add(geometry.NewSphere(center, smallSphereRadius, randomMaterial(sampler)))
			}
		}
	}

	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// NewThreeSpheresScene creates the ground and the three large spheres only
func NewThreeSpheresScene() *Scene {
	return &Scene{
		Name:         "three-spheres",
		World:        geometry.NewWorld(largeSpheres()...),
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

func groundSphere() geometry.Shape {
	return geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

func largeSpheres() []geometry.Shape {
	return []geometry.Shape{
		groundSphere(),
		geometry.NewSphere(core.NewVec3(-4, largeSphereRadius, 0), largeSphereRadius, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(0, largeSphereRadius, 0), largeSphereRadius, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(4, largeSphereRadius, 0), largeSphereRadius, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	}
}

// randomMaterial picks matte 80%, metal 15%, glass 5%
func randomMaterial(sampler core.Sampler) material.Material {
	choice := sampler.Get1D()
	switch {
	case choice < 0.8:
		albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
		return material.NewLambertian(albedo)
	case choice < 0.95:
		albedo := core.RandomVec3InRange(sampler, 0.5, 1.0)
		fuzz := core.RandomInRange(sampler, 0.0, 0.5)
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}
