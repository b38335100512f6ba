package integrator

import "github.com/df07/go-sphere-raytracer/pkg/core"

// Sky is a vertical gradient used as the only light source
type Sky struct {
	TopColor    core.Vec3 // Color for rays pointing straight up
	BottomColor core.Vec3 // Color for rays pointing straight down
}

// DefaultSky returns the white-to-blue sky
func DefaultSky() Sky {
	return Sky{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the sky color seen along the ray's direction
func (s Sky) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BottomColor.Lerp(s.TopColor, t)
}

// BackgroundGradient returns the default sky color for a ray that hit nothing
func BackgroundGradient(ray core.Ray) core.Vec3 {
	return DefaultSky().Color(ray)
}
