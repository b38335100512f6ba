package material

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    normal,
		FrontFace: true,
		Material:  lambertian,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 500; i++ {
		scatter := lambertian.Scatter(ray, hit, sampler)

		if scatter.Attenuation != albedo {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at hit point %v, got %v", hit.Point, scatter.Scattered.Origin)
		}

		// normal + unit vector lies on a unit sphere centered at the normal tip
		offset := scatter.Scattered.Direction.Subtract(normal)
		if math.Abs(offset.Length()-1) > 1e-9 {
			t.Fatalf("Scatter offset should have unit length, got %f", offset.Length())
		}
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Fatalf("Lambertian direction must not point below the surface: %v", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_CosineWeighted(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewSeededSampler(7)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// For a cosine-weighted distribution E[cos θ] = 2/3
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		direction := lambertian.Scatter(ray, hit, sampler).Scattered.Direction
		if direction.LengthSquared() < 1e-12 {
			continue
		}
		sum += direction.Normalize().Dot(normal)
	}

	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}
