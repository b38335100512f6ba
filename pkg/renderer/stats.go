package renderer

import (
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for each pixel
	Duration        time.Duration // Wall time spent rendering
}

// SamplesPerSecond returns the sampling throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Unnormalized RGB sum over all samples
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Frame holds the accumulated pixels of a render in row-major order
// with row 0 at the top of the image
type Frame struct {
	Width  int
	Height int
	Pixels []PixelStats
}

// NewFrame allocates an empty frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]PixelStats, width*height),
	}
}

// At returns the pixel at column x and row y, counted from the top
func (f *Frame) At(x, y int) *PixelStats {
	return &f.Pixels[y*f.Width+x]
}
