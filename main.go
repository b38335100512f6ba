package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/publish"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	logger := renderer.NewWriterLogger(os.Stderr)

	rootDir := getEnv("RAYTRACER_ROOT_DIR", ".")
	cfg, err := config.Load(rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Command line flags override the environment
	sceneName := flag.String("scene", cfg.Scene, "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", cfg.ImageWidth, "Image width in pixels")
	aspect := flag.String("aspect", "", "Aspect ratio as W/H or a decimal (default 3/2)")
	samples := flag.Int("samples", cfg.SamplesPerPixel, "Samples per pixel")
	depth := flag.Int("depth", cfg.MaxDepth, "Maximum ray bounce depth")
	seed := flag.Int64("seed", cfg.Seed, "Random seed, 0 picks one from the clock")
	output := flag.String("out", cfg.Output, "Output file (.ppm, .png, .jpg); empty writes PPM to stdout")
	thumb := flag.Int("thumb", cfg.Thumbnail, "Also write a thumbnail of this width, 0 disables")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options] > image.ppm")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Settings are also read from .env and RAYTRACER_* variables.")
		fmt.Println("Set S3_BUCKET (and S3_ENDPOINT, S3_REGION, S3_ACCESS_KEY, S3_SECRET_KEY) to upload renders.")
		return
	}

	cfg.Scene = *sceneName
	cfg.ImageWidth = *width
	cfg.SamplesPerPixel = *samples
	cfg.MaxDepth = *depth
	cfg.Seed = *seed
	cfg.Output = *output
	cfg.Thumbnail = *thumb
	if *aspect != "" {
		ratio, err := config.ParseAspectRatio(*aspect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid aspect ratio %q: %v\n", *aspect, err)
			os.Exit(2)
		}
		cfg.AspectRatio = ratio
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene builds the named scene
func createScene(name string, sampler core.Sampler) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("no scene given (available: %s)", strings.Join(scene.Names(), ", "))
	}
	return scene.Create(name, sampler)
}

// run renders cfg and writes the result to cfg.Output, or as PPM to stdout
func run(ctx context.Context, cfg config.Config, stdout io.Writer, logger core.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	sampler := core.NewSeededSampler(cfg.Seed)

	selectedScene, err := createScene(cfg.Scene, sampler)
	if err != nil {
		return err
	}

	cameraConfig := selectedScene.CameraConfig
	if cfg.CameraOverride {
		cameraConfig = cfg.Camera
	}
	cameraConfig.AspectRatio = cfg.AspectRatio
	if err := config.ValidateCameraBasis(cameraConfig); err != nil {
		return fmt.Errorf("invalid camera for scene %s: %w", selectedScene.Name, err)
	}
	camera := renderer.NewCamera(cameraConfig)

	width, height := cfg.ImageWidth, cfg.ImageHeight()
	logger.Printf("Rendering %s: %dx%d, %d samples, depth %d, %d objects, seed %d\n",
		selectedScene.Name, width, height, cfg.SamplesPerPixel, cfg.MaxDepth, selectedScene.World.Len(), cfg.Seed)

	raytracer := renderer.NewRaytracer(selectedScene.World, camera, width, height, renderer.SamplingConfig{
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
	}, sampler, logger)

	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%.0f samples/sec)\n", stats.Duration, stats.SamplesPerSecond())

	img := imageio.ToImage(frame)

	format := imageio.FormatPNG
	if cfg.Output == "" {
		if err := imageio.WritePPM(stdout, img); err != nil {
			return err
		}
		logger.Printf("Done.\n")
	} else {
		format, err = imageio.Save(cfg.Output, img)
		if err != nil {
			return err
		}
		logger.Printf("Render saved as %s\n", cfg.Output)

		if cfg.Thumbnail > 0 {
			thumbPath := imageio.ThumbnailPath(cfg.Output)
			if _, err := imageio.Save(thumbPath, imageio.Thumbnail(img, cfg.Thumbnail)); err != nil {
				return err
			}
			logger.Printf("Thumbnail saved as %s\n", thumbPath)
		}
	}

	if !cfg.S3.Enabled() {
		return nil
	}

	publisher, err := publish.NewS3Publisher(cfg.S3, logger)
	if err != nil {
		return err
	}
	data, err := imageio.Encode(img, format)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s/render_%s.%s", selectedScene.Name, time.Now().Format("20060102_150405"), format)
	if _, err := publisher.Publish(ctx, name, data, format.ContentType()); err != nil {
		return err
	}
	return nil
}
