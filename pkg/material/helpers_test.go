package material

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// constantSampler always returns the same value
type constantSampler float64

func (c constantSampler) Get1D() float64 { return float64(c) }
func (c constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(c), float64(c))
}
func (c constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(c), float64(c), float64(c))
}

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
