package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// Validate checks that the sampling configuration can produce an image
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// ErrImageTooSmall is returned when the image cannot be sampled edge to edge
var ErrImageTooSmall = errors.New("image must be at least 2x2 pixels")

// Raytracer handles the rendering process. It is single threaded and owns
// its sampler; the world and camera are only read.
type Raytracer struct {
	world       geometry.Shape
	camera      *Camera
	width       int
	height      int
	config      SamplingConfig
	integrator  integrator.Integrator
	sampler     core.Sampler
	logger      core.Logger
	rowCallback func(rowsRemaining int)
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Shape, camera *Camera, width, height int, config SamplingConfig, sampler core.Sampler, logger core.Logger) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		sampler:    sampler,
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetRowCallback registers fn to be called after each completed scanline
func (rt *Raytracer) SetRowCallback(fn func(rowsRemaining int)) {
	rt.rowCallback = fn
}

// Render traces every pixel and returns the accumulated, unnormalized sums.
// Rows are rendered from the top of the image down. The context is checked
// between rows.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}
	if rt.width < 2 || rt.height < 2 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %dx%d", ErrImageTooSmall, rt.width, rt.height)
	}

	startTime := time.Now()
	frame := NewFrame(rt.width, rt.height)

	// j counts image-plane rows from the bottom, frame rows count from the top
	for j := rt.height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("render cancelled with %d scanlines remaining: %w", j+1, err)
		}
		rt.logger.Printf("Scanlines remaining: %d\n", j)

		row := rt.height - 1 - j
		for i := 0; i < rt.width; i++ {
			rt.samplePixel(i, j, frame.At(i, row))
		}

		if rt.rowCallback != nil {
			rt.rowCallback(j)
		}
	}

	totalPixels := rt.width * rt.height
	stats := RenderStats{
		TotalPixels:     totalPixels,
		TotalSamples:    totalPixels * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Duration:        time.Since(startTime),
	}
	return frame, stats, nil
}

// samplePixel accumulates jittered samples for the pixel at column i, image-plane row j
func (rt *Raytracer) samplePixel(i, j int, ps *PixelStats) {
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + rt.sampler.Get1D()) / float64(rt.width-1)
		t := (float64(j) + rt.sampler.Get1D()) / float64(rt.height-1)

		ray := rt.camera.GetRay(s, t, rt.sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler))
	}
}
