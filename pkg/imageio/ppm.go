package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// rgbMaximumValue is the maximum channel value declared in the PPM header
const rgbMaximumValue = 255

// WritePPM writes img as a plain-text pixel map (P3): a header with the
// dimensions and maximum value, then one "R G B" triple per line,
// rows top to bottom and pixels left to right.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), rgbMaximumValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
