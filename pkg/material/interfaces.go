package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter produces the continuation of rayIn after it strikes the surface
	// described by hit. Every material scatters; absorption is expressed
	// through attenuation and the integrator's depth limit.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NewScatterResult creates a scattered ray leaving origin in direction
func NewScatterResult(origin, direction, attenuation core.Vec3) ScatterResult {
	return ScatterResult{
		Scattered:   core.NewRay(origin, direction),
		Attenuation: attenuation,
	}
}

// HitRecord contains information about a ray-object intersection.
// It only lives for a single trace step.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// NewHitRecord builds a hit record and orients the normal against the ray
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3, material Material) *HitRecord {
	hit := &HitRecord{
		Point:    ray.At(t),
		T:        t,
		Material: material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
