package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for scattered rays
const ShadowAcneEpsilon = 0.001

// DefaultMaxDepth is the default ray bounce limit
const DefaultMaxDepth = 50

// PathTracingIntegrator implements recursive path tracing against a sky
type PathTracingIntegrator struct {
	MaxDepth int
	Sky      Sky
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: maxDepth,
		Sky:      DefaultSky(),
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.trace(ray, world, sampler, pt.MaxDepth)
}

func (pt *PathTracingIntegrator) trace(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.Sky.Color(ray)
	}

	scatter := hit.Material.Scatter(ray, *hit, sampler)

	// Attenuation applies to the light gathered by the deeper bounce
	return pt.trace(scatter.Scattered, world, sampler, depth-1).MultiplyVec(scatter.Attenuation)
}
