package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Format identifies an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// FormatFromPath picks the output format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (use .ppm, .png or .jpg)", filepath.Ext(path))
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "image/x-portable-pixmap"
	}
}

// Encode serializes img in the given format
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case FormatPPM:
		err = WritePPM(&buf, img)
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(95))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Save writes img to path, creating parent directories as needed.
// It returns the format used.
func Save(path string, img image.Image) (Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if format == FormatPPM {
		if err := writeFile(path, func(w io.Writer) error { return WritePPM(w, img) }); err != nil {
			return "", err
		}
		return format, nil
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return format, nil
}

// writeFile creates path and fills it with write. The file is removed if
// writing or closing fails.
func writeFile(path string, write func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Thumbnail downscales img to the given width, keeping the aspect ratio
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	// A zero height preserves the aspect ratio
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

// ThumbnailPath derives the preview file name, e.g. render.png → render_thumb.png
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
