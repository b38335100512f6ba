package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// World is an ordered collection of shapes that behaves as a single shape
type World struct {
	Shapes []Shape
}

// NewWorld creates a world from the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends a shape to the world. Only call before rendering starts.
func (w *World) Add(shape Shape) {
	w.Shapes = append(w.Shapes, shape)
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.Shapes)
}

// Hit returns the closest intersection among all shapes
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
