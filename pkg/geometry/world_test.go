package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

func TestWorld_Hit_ReturnsNearest(t *testing.T) {
	nearMat := material.NewLambertian(core.NewVec3(1, 0, 0))
	farMat := material.NewLambertian(core.NewVec3(0, 0, 1))
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, nearMat)
	far := NewSphere(core.NewVec3(0, 0, -10), 1.0, farMat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name   string
		shapes []Shape
	}{
		{"near first", []Shape{near, far}},
		{"far first", []Shape{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld(tt.shapes...)
			hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.Material != nearMat {
				t.Errorf("Expected the nearer sphere's material")
			}
			if math.Abs(hit.T-2.0) > 1e-9 {
				t.Errorf("Expected t=2, got %f", hit.T)
			}
		})
	}
}

func TestWorld_Hit_Empty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit || hit != nil {
		t.Errorf("Expected no hit from an empty world, got %v", hit)
	}
}

func TestWorld_Hit_RespectsWindow(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, -3), 1.0, nil),
		NewSphere(core.NewVec3(0, 0, -10), 1.0, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, 0.001, 1.5); isHit {
		t.Errorf("Expected miss inside (0.001, 1.5), got t=%f", hit.T)
	}

	// Skip past the first sphere entirely
	hit, isHit := world.Hit(ray, 4.5, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on far sphere")
	}
	if math.Abs(hit.T-9.0) > 1e-9 {
		t.Errorf("Expected t=9, got %f", hit.T)
	}
}

func TestWorld_Hit_OrderIndependent(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	shapes := make([]Shape, 0, 30)
	for i := 0; i < 30; i++ {
		center := core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, -5-random.Float64()*20)
		shapes = append(shapes, NewSphere(center, 0.5+random.Float64(), nil))
	}

	reversed := make([]Shape, len(shapes))
	for i, s := range shapes {
		reversed[len(shapes)-1-i] = s
	}

	forward := NewWorld(shapes...)
	backward := NewWorld(reversed...)

	for i := 0; i < 200; i++ {
		direction := core.NewVec3(random.Float64()*0.4-0.2, random.Float64()*0.4-0.2, -1)
		ray := core.NewRay(core.NewVec3(0, 0, 0), direction)

		hitA, okA := forward.Hit(ray, 0.001, math.Inf(1))
		hitB, okB := backward.Hit(ray, 0.001, math.Inf(1))
		if okA != okB {
			t.Fatalf("Hit status depends on order: %t vs %t", okA, okB)
		}
		if okA && hitA.T != hitB.T {
			t.Fatalf("Nearest hit depends on order: %f vs %f", hitA.T, hitB.T)
		}
	}
}

func TestWorld_Hit_ZeroDirectionMisses(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, -5), 1.0, nil),
		NewSphere(core.NewVec3(0, 0, -10), 2.0, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for a zero direction, got hit at t=%f", hit.T)
	}
}
