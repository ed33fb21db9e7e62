// Package config loads viewer settings from YAML. Every field is optional in the file; anything
// left out keeps its value from Default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "OXY_ORBIT_CONFIG"

// Present modes accepted in RenderConfig.PresentMode.
const (
	PresentModeVSync    = "vsync"
	PresentModeUncapped = "uncapped"
)

// Config is the complete viewer configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig holds the orbit controller tuning and the lens.
type CameraConfig struct {
	Sensitivity float32 `yaml:"sensitivity"` // degrees per pixel of drag
	ZoomStep    float32 `yaml:"zoom_step"`
	MinZoom     float32 `yaml:"min_zoom"`
	MaxZoom     float32 `yaml:"max_zoom"`
	MinPitch    float32 `yaml:"min_pitch"`
	MaxPitch    float32 `yaml:"max_pitch"`
	Distance    float32 `yaml:"distance"` // eye distance at zoom 1
	FovY        float32 `yaml:"fov"`      // degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// RenderConfig controls when and how frames are produced.
type RenderConfig struct {
	Policy        string     `yaml:"policy"`      // "on-demand" or "always"
	FrameLimit    float64    `yaml:"frame_limit"` // fps cap, 0 = uncapped
	Profiling     bool       `yaml:"profiling"`
	PresentMode   string     `yaml:"present_mode"` // "vsync" or "uncapped"
	MSAA          int        `yaml:"msaa"`         // 1 or 4
	ForceSoftware bool       `yaml:"force_software"`
	ClearColor    [4]float64 `yaml:"clear_color"`
}

// Default returns the built-in configuration: an 800x600 window, the standard orbit tuning and
// on-demand rendering with vsync and 4x MSAA.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  common.DefaultWindowTitle,
			Width:  common.DefaultWindowWidth,
			Height: common.DefaultWindowHeight,
		},
		Camera: CameraConfig{
			Sensitivity: camera.DefaultSensitivity,
			ZoomStep:    camera.DefaultZoomStep,
			MinZoom:     camera.DefaultMinZoom,
			MaxZoom:     camera.DefaultMaxZoom,
			MinPitch:    camera.DefaultMinPitch,
			MaxPitch:    camera.DefaultMaxPitch,
			Distance:    camera.DefaultDistance,
			FovY:        camera.DefaultFovY,
			Near:        camera.DefaultNear,
			Far:         camera.DefaultFar,
		},
		Render: RenderConfig{
			Policy:      engine.RenderPolicyOnDemand.String(),
			PresentMode: PresentModeVSync,
			MSAA:        4,
			ClearColor:  [4]float64{0.1, 0.1, 0.1, 1.0},
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// Unknown keys are rejected.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: an error if the file cannot be read, parsed or fails validation
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over Default and validates the result. An empty document yields the defaults.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - Config: the merged configuration
//   - error: an error if the document cannot be parsed or fails validation
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the file named by EnvPath, or returns Default when the variable is unset.
//
// Returns:
//   - Config: the configuration
//   - error: an error if the named file cannot be loaded
func FromEnv() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports every invalid setting.
//
// Returns:
//   - error: nil, or the joined list of problems
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.Sensitivity <= 0 {
		fail("camera.sensitivity must be positive, got %v", cam.Sensitivity)
	}
	if cam.ZoomStep <= 1 {
		fail("camera.zoom_step must be greater than 1, got %v", cam.ZoomStep)
	}
	if cam.MinZoom <= 0 || cam.MinZoom > cam.MaxZoom {
		fail("camera zoom bounds must satisfy 0 < min <= max, got [%v, %v]", cam.MinZoom, cam.MaxZoom)
	}
	if cam.MinPitch > cam.MaxPitch {
		fail("camera pitch bounds must satisfy min <= max, got [%v, %v]", cam.MinPitch, cam.MaxPitch)
	}
	if cam.Distance <= 0 {
		fail("camera.distance must be positive, got %v", cam.Distance)
	}
	if cam.FovY <= 0 || cam.FovY >= 180 {
		fail("camera.fov must be in (0, 180), got %v", cam.FovY)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		fail("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", cam.Near, cam.Far)
	}

	r := c.Render
	if _, err := engine.ParseRenderPolicy(r.Policy); err != nil {
		fail("render.policy: %w", err)
	}
	if r.FrameLimit < 0 {
		fail("render.frame_limit must not be negative, got %v", r.FrameLimit)
	}
	if r.PresentMode != PresentModeVSync && r.PresentMode != PresentModeUncapped {
		fail("render.present_mode must be %q or %q, got %q", PresentModeVSync, PresentModeUncapped, r.PresentMode)
	}
	if r.MSAA != 1 && r.MSAA != 4 {
		fail("render.msaa must be 1 or 4, got %d", r.MSAA)
	}
	for i, v := range r.ClearColor {
		if v < 0 || v > 1 {
			fail("render.clear_color[%d] must be in [0, 1], got %v", i, v)
		}
	}

	return errors.Join(errs...)
}

// RenderPolicy returns the parsed render policy. The value is valid after Validate succeeds.
func (c Config) RenderPolicy() engine.RenderPolicy {
	p, _ := engine.ParseRenderPolicy(c.Render.Policy)
	return p
}

// ControllerOptions translates the camera settings into orbit controller options.
func (c Config) ControllerOptions() []camera.OrbitControllerOption {
	return []camera.OrbitControllerOption{
		camera.WithSensitivity(c.Camera.Sensitivity),
		camera.WithZoomStep(c.Camera.ZoomStep),
		camera.WithZoomBounds(c.Camera.MinZoom, c.Camera.MaxZoom),
		camera.WithPitchBounds(c.Camera.MinPitch, c.Camera.MaxPitch),
	}
}

// CameraOptions translates the lens settings into camera options for a window of the configured size.
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(c.Camera.FovY),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithDistance(c.Camera.Distance),
		camera.WithAspect(float32(c.Window.Width) / float32(c.Window.Height)),
	}
}
