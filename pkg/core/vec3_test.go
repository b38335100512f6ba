package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(-3, 2.5, 5)},
		{"Subtract", a.Subtract(b), NewVec3(5, 1.5, 1)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(-4, 1, 6)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Scale", Scale(2, a), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Lerp midpoint", NewVec3(1, 1, 1).Lerp(NewVec3(0.5, 0.7, 1.0), 0.5), NewVec3(0.75, 0.85, 1.0)},
		{"Sqrt", NewVec3(4, 0.25, 0).Sqrt(), NewVec3(2, 0.5, 0)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 0.999), NewVec3(0, 0.5, 0.999)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.result, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); math.Abs(got-3) > tolerance {
		t.Errorf("Expected dot 3, got %f", got)
	}
	if got := NewVec3(2, 3, 6).Length(); math.Abs(got-7) > tolerance {
		t.Errorf("Expected length 7, got %f", got)
	}
	if got := NewVec3(2, 3, 6).LengthSquared(); math.Abs(got-49) > tolerance {
		t.Errorf("Expected squared length 49, got %f", got)
	}
}

func TestVec3_AlgebraicProperties(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomVec := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}

	for i := 0; i < 200; i++ {
		a := randomVec()
		b := randomVec()
		s := random.Float64()*10 - 5

		if a.Add(b) != b.Add(a) {
			t.Fatalf("Addition is not commutative for %v and %v", a, b)
		}
		if a.Multiply(s) != Scale(s, a) {
			t.Fatalf("Scalar multiplication is not commutative for %v and %f", a, s)
		}

		cross := a.Cross(b)
		if d := cross.Dot(a); math.Abs(d) > 1e-9*a.LengthSquared()*b.Length() {
			t.Errorf("Cross product not orthogonal to a: %g", d)
		}
		if d := cross.Dot(b); math.Abs(d) > 1e-9*b.LengthSquared()*a.Length() {
			t.Errorf("Cross product not orthogonal to b: %g", d)
		}

		if l := a.Normalize().Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Expected unit length after normalize, got %f", l)
		}
	}
}

func TestVec3_MatchesMathGL(t *testing.T) {
	random := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		a := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		b := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())

		if got, want := a.Cross(b), fromMgl(toMgl(a).Cross(toMgl(b))); !vecNear(got, want, tolerance) {
			t.Errorf("Cross mismatch: expected %v, got %v", want, got)
		}
		if got, want := a.Dot(b), toMgl(a).Dot(toMgl(b)); math.Abs(got-want) > tolerance {
			t.Errorf("Dot mismatch: expected %f, got %f", want, got)
		}
		if got, want := a.Normalize(), fromMgl(toMgl(a).Normalize()); !vecNear(got, want, tolerance) {
			t.Errorf("Normalize mismatch: expected %v, got %v", want, got)
		}
		if got, want := a.Length(), toMgl(a).Len(); math.Abs(got-want) > tolerance {
			t.Errorf("Length mismatch: expected %f, got %f", want, got)
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	expected := NewVec3(1, 2, -1)
	if got := ray.At(2); !vecNear(got, expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := ray.At(0); got != ray.Origin {
		t.Errorf("Expected origin %v at t=0, got %v", ray.Origin, got)
	}
}
