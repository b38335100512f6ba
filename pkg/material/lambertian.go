package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	// Normal plus a point on the unit sphere is cosine-weighted around the normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))
	return NewScatterResult(hit.Point, scatterDirection, l.Albedo)
}
