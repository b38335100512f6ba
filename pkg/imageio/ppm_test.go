package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{12, 34, 56, 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePPM_PropagatesErrors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := WritePPM(failingWriter{}, img); err == nil {
		t.Error("Expected write error to be returned")
	}
}
