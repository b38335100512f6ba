package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInRange returns a value uniformly distributed in [min, max)
func RandomInRange(sampler Sampler, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*sampler.Get1D()
}

// RandomVec3 returns a vector with each component in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3InRange returns a vector with each component in [min, max)
func RandomVec3InRange(sampler Sampler, minVal, maxVal float64) Vec3 {
	return NewVec3(
		RandomInRange(sampler, minVal, maxVal),
		RandomInRange(sampler, minVal, maxVal),
		RandomInRange(sampler, minVal, maxVal),
	)
}

// RandomInUnitSphere generates a random point strictly inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube, accept if inside unit sphere
		p := RandomVec3InRange(sampler, -1, 1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(RandomInRange(sampler, -1, 1), RandomInRange(sampler, -1, 1), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a point uniformly distributed on the unit sphere.
// Adding it to a surface normal gives a cosine-weighted (Lambertian) direction.
func RandomUnitVector(sampler Sampler) Vec3 {
	sample := sampler.Get2D()
	a := 2.0 * math.Pi * sample.X
	z := 2.0*sample.Y - 1.0
	r := math.Sqrt(1.0 - z*z)
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}
