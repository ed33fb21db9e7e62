// Command oxy-orbit opens a GLFW window and renders the orbit viewer with WebGPU.
//
// Drag with the left mouse button to orbit, scroll to zoom, R resets the camera and Esc quits.
// Settings are read from the YAML file named by OXY_ORBIT_CONFIG, if set.
package main

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/wgpu_context"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────────
	windowOptions := []window.WindowBuilderOption{
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	}
	if cfg.RenderPolicy() == engine.RenderPolicyOnDemand {
		// Nothing changes without input, so block on events instead of spinning.
		windowOptions = append(windowOptions, window.WithEventWait(250*time.Millisecond))
	}
	win, err := window.TryNewWindow(windowOptions...)
	if err != nil {
		log.Fatalf("failed to open window: %v", err)
	}

	// ── Graphics context ────────────────────────────────────────────────
	ctx, err := wgpu_context.New(win.SurfaceDescriptor(), win.Width(), win.Height(), contextOptions(cfg)...)
	if err != nil {
		_ = win.Close()
		log.Fatalf("failed to initialize WebGPU: %v", err)
	}

	// ── Camera + Renderer ───────────────────────────────────────────────
	cam := camera.NewCamera(cfg.CameraOptions()...)
	cam.SetViewport(win.Width(), win.Height())
	r := renderer.NewRenderer(ctx, renderer.WithCamera(cam))

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithController(camera.NewOrbitController(cfg.ControllerOptions()...)),
		engine.WithRenderPolicy(cfg.RenderPolicy()),
		engine.WithRenderFrameLimit(cfg.Render.FrameLimit),
		engine.WithProfiling(cfg.Render.Profiling),
		// The surface must be released while its window still exists.
		engine.WithShutdown(ctx.Release),
	)

	log.Printf("[Engine] rendering %s with %s policy", cfg.Window.Title, eng.RenderPolicy())
	eng.Run()
}

// contextOptions translates the render settings into WebGPU context options.
func contextOptions(cfg config.Config) []wgpu_context.ContextOption {
	presentMode := wgpu_context.PresentModeVSync
	if cfg.Render.PresentMode == config.PresentModeUncapped {
		presentMode = wgpu_context.PresentModeUncapped
	}
	msaa := wgpu_context.MSAA4x
	if cfg.Render.MSAA == 1 {
		msaa = wgpu_context.MSAAOff
	}
	cc := cfg.Render.ClearColor
	return []wgpu_context.ContextOption{
		wgpu_context.WithPresentMode(presentMode),
		wgpu_context.WithMSAA(msaa),
		wgpu_context.WithForceSoftwareRenderer(cfg.Render.ForceSoftware),
		wgpu_context.WithClearColor(cc[0], cc[1], cc[2], cc[3]),
	}
}
