package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
