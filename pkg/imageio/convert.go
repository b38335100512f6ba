package imageio

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// maxChannel keeps 8-bit scaling below 256
const maxChannel = 0.999

// ToRGB converts an unnormalized sample sum to an 8-bit color:
// average over samples, gamma 2.0, clamp to [0, 0.999], scale by 256.
func ToRGB(sum core.Vec3, samples int) color.RGBA {
	if samples <= 0 {
		return color.RGBA{A: 255}
	}

	// Negative sums are clamped before the square root
	c := sum.Multiply(1.0 / float64(samples)).Clamp(0.0, 1.0).Sqrt().Clamp(0.0, maxChannel)
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

// toByte scales a channel in [0, maxChannel] to 8 bits. NaN maps to 0.
func toByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(256 * c)
}

// ToImage converts a rendered frame into an RGBA image, top row first
func ToImage(frame *renderer.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			ps := frame.At(x, y)
			img.SetRGBA(x, y, ToRGB(ps.ColorAccum, ps.SampleCount))
		}
	}
	return img
}
