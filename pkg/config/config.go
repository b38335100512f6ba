package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// S3Config holds the optional upload target for finished renders
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string // Key prefix for uploaded objects
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Config holds everything needed for a render run
type Config struct {
	ImageWidth      int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64 // 0 picks a time based seed

	Camera         renderer.CameraConfig
	CameraOverride bool // Camera was set through the environment and replaces the scene's camera

	Scene     string
	Output    string // Empty writes PPM to stdout
	Thumbnail int    // Thumbnail width in pixels, 0 disables

	S3 S3Config
}

// Default returns the configuration for the random spheres cover image
func Default() Config {
	return Config{
		ImageWidth:      1200,
		AspectRatio:     3.0 / 2.0,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		Camera:          renderer.DefaultCameraConfig(),
		Scene:           "default",
	}
}

// Load reads <rootDir>/.env, if present, then applies RAYTRACER_* and S3_*
// environment overrides on top of Default.
func Load(rootDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(rootDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.ImageWidth, err = envInt("RAYTRACER_WIDTH", c.ImageWidth); err != nil {
		return err
	}
	if c.AspectRatio, err = envAspect("RAYTRACER_ASPECT_RATIO", c.AspectRatio); err != nil {
		return err
	}
	if c.SamplesPerPixel, err = envInt("RAYTRACER_SAMPLES", c.SamplesPerPixel); err != nil {
		return err
	}
	if c.MaxDepth, err = envInt("RAYTRACER_MAX_DEPTH", c.MaxDepth); err != nil {
		return err
	}
	seed, err := envInt("RAYTRACER_SEED", int(c.Seed))
	if err != nil {
		return err
	}
	c.Seed = int64(seed)
	if c.Thumbnail, err = envInt("RAYTRACER_THUMBNAIL_WIDTH", c.Thumbnail); err != nil {
		return err
	}
	c.Scene = envString("RAYTRACER_SCENE", c.Scene)
	c.Output = envString("RAYTRACER_OUTPUT", c.Output)

	if err := c.applyCameraEnv(); err != nil {
		return err
	}

	c.S3 = S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    envString("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    envString("S3_PREFIX", "renders/"),
	}
	return nil
}

func (c *Config) applyCameraEnv() error {
	cam := c.Camera
	var err error
	if cam.LookFrom, err = envVec3("RAYTRACER_LOOK_FROM", cam.LookFrom); err != nil {
		return err
	}
	if cam.LookAt, err = envVec3("RAYTRACER_LOOK_AT", cam.LookAt); err != nil {
		return err
	}
	if cam.Up, err = envVec3("RAYTRACER_UP", cam.Up); err != nil {
		return err
	}
	if cam.VFov, err = envFloat("RAYTRACER_VFOV", cam.VFov); err != nil {
		return err
	}
	if cam.Aperture, err = envFloat("RAYTRACER_APERTURE", cam.Aperture); err != nil {
		return err
	}
	if cam.FocusDistance, err = envFloat("RAYTRACER_FOCUS_DISTANCE", cam.FocusDistance); err != nil {
		return err
	}

	for _, key := range []string{"RAYTRACER_LOOK_FROM", "RAYTRACER_LOOK_AT", "RAYTRACER_UP", "RAYTRACER_VFOV", "RAYTRACER_APERTURE", "RAYTRACER_FOCUS_DISTANCE"} {
		if _, ok := os.LookupEnv(key); ok {
			c.CameraOverride = true
		}
	}
	c.Camera = cam
	return nil
}

// ImageHeight derives the image height from width and aspect ratio
func (c Config) ImageHeight() int {
	return int(float64(c.ImageWidth) / c.AspectRatio)
}

// Validate rejects configurations that cannot render
func (c Config) Validate() error {
	if c.ImageWidth < 2 {
		return fmt.Errorf("image width must be at least 2, got %d", c.ImageWidth)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if h := c.ImageHeight(); h < 2 {
		return fmt.Errorf("image height must be at least 2, got %d", h)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("thumbnail width must not be negative, got %d", c.Thumbnail)
	}
	if c.Camera.LookFrom == c.Camera.LookAt {
		return fmt.Errorf("camera look from and look at must differ, both are %v", c.Camera.LookFrom)
	}
	if err := ValidateCameraBasis(c.Camera); err != nil {
		return err
	}
	if c.Camera.VFov <= 0 || c.Camera.VFov >= 180 {
		return fmt.Errorf("vertical field of view must be in (0, 180), got %g", c.Camera.VFov)
	}
	if c.Camera.Aperture < 0 {
		return fmt.Errorf("aperture must not be negative, got %g", c.Camera.Aperture)
	}
	if c.Camera.FocusDistance <= 0 {
		return fmt.Errorf("focus distance must be positive, got %g", c.Camera.FocusDistance)
	}
	return nil
}

// ValidateCameraBasis rejects an up vector parallel to the view direction,
// which leaves the camera without a horizontal axis. A zero Up means (0,1,0).
func ValidateCameraBasis(cam renderer.CameraConfig) error {
	up := cam.Up
	if up == (core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}
	view := cam.LookFrom.Subtract(cam.LookAt)
	if up.Cross(view).Length() <= 1e-9*up.Length()*view.Length() {
		return fmt.Errorf("camera up %v is parallel to the view direction from %v to %v", up, cam.LookFrom, cam.LookAt)
	}
	return nil
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

// envAspect accepts either a ratio such as "16/9" or a plain number
func envAspect(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	ratio, err := ParseAspectRatio(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return ratio, nil
}

// ParseAspectRatio parses "W/H" or a decimal ratio
func ParseAspectRatio(value string) (float64, error) {
	num, den, isRatio := strings.Cut(strings.TrimSpace(value), "/")
	w, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, err
	}
	if !isRatio {
		return w, nil
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, fmt.Errorf("zero denominator in %q", value)
	}
	return w / h, nil
}

// envVec3 parses "x,y,z"
func envVec3(key string, fallback core.Vec3) (core.Vec3, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("invalid %s: expected x,y,z, got %q", key, value)
	}
	var xyz [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		xyz[i] = f
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}
