package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != common.DefaultWindowWidth || cfg.Window.Height != common.DefaultWindowHeight {
		t.Fatalf("default window %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height,
			common.DefaultWindowWidth, common.DefaultWindowHeight)
	}
	if cfg.Window.Title != common.DefaultWindowTitle {
		t.Fatalf("default title %q", cfg.Window.Title)
	}
	if cfg.RenderPolicy() != engine.RenderPolicyOnDemand {
		t.Fatalf("default policy %v", cfg.RenderPolicy())
	}
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	src := `
window:
  width: 1024
camera:
  sensitivity: 0.25
render:
  policy: always
  frame_limit: 60
`
	cfg, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Fatalf("window %dx%d, want 1024x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.Sensitivity != 0.25 || cfg.Camera.ZoomStep != camera.DefaultZoomStep {
		t.Fatalf("camera config not merged: %+v", cfg.Camera)
	}
	if cfg.RenderPolicy() != engine.RenderPolicyAlways || cfg.Render.FrameLimit != 60 {
		t.Fatalf("render config not merged: %+v", cfg.Render)
	}
	if cfg.Render.MSAA != 4 {
		t.Fatalf("msaa = %d, want default 4", cfg.Render.MSAA)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("empty document should yield defaults, got %+v", cfg)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode(strings.NewReader("window:\n  colour: red\n")); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = 0
	cfg.Camera.ZoomStep = 1
	cfg.Camera.MinZoom = 6
	cfg.Camera.Near = 200
	cfg.Render.Policy = "sometimes"
	cfg.Render.MSAA = 2
	cfg.Render.ClearColor[3] = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"window size", "zoom_step", "zoom bounds", "clip planes", "render.policy", "render.msaa", "clear_color[3]"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  max_zoom: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Camera.MaxZoom != 3 {
		t.Fatalf("max_zoom = %v, want 3", cfg.Camera.MaxZoom)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := FromEnv()
	if err != nil || cfg != Default() {
		t.Fatalf("unset env should yield defaults: %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPath, path)
	cfg, err = FromEnv()
	if err != nil || cfg.Window.Title != "custom" {
		t.Fatalf("FromEnv = %+v, %v", cfg, err)
	}
}

func TestControllerOptionsApply(t *testing.T) {
	cfg := Default()
	cfg.Camera.Sensitivity = 1
	cfg.Camera.MinZoom, cfg.Camera.MaxZoom = 0.5, 2

	oc := camera.NewOrbitController(cfg.ControllerOptions()...)
	if oc.Sensitivity() != 1 {
		t.Fatalf("sensitivity = %v", oc.Sensitivity())
	}
	if lo, hi := oc.ZoomBounds(); lo != 0.5 || hi != 2 {
		t.Fatalf("zoom bounds = [%v, %v]", lo, hi)
	}

	cam := camera.NewCamera(cfg.CameraOptions()...)
	if cam.Fov() != 60 || cam.Near() != cfg.Camera.Near || cam.Far() != 100 {
		t.Fatalf("camera lens not applied: fov=%v near=%v far=%v", cam.Fov(), cam.Near(), cam.Far())
	}
}
