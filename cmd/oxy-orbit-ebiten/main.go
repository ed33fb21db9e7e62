// Command oxy-orbit-ebiten runs the orbit viewer on ebiten, projecting the triangle on the CPU.
//
// Controls and configuration match oxy-orbit.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/config"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/ebiten_host"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/ebiten_context"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// ── Graphics context ────────────────────────────────────────────────
	cc := cfg.Render.ClearColor
	ctx := ebiten_context.New(cfg.Window.Width, cfg.Window.Height,
		ebiten_context.WithClearColor(color.RGBA{
			R: uint8(cc[0] * 255),
			G: uint8(cc[1] * 255),
			B: uint8(cc[2] * 255),
			A: uint8(cc[3] * 255),
		}),
		ebiten_context.WithAntiAlias(cfg.Render.MSAA > 1),
	)

	// ── Camera + Renderer ───────────────────────────────────────────────
	controller := camera.NewOrbitController(cfg.ControllerOptions()...)
	r := renderer.NewRenderer(ctx, renderer.WithCamera(camera.NewCamera(cfg.CameraOptions()...)))

	// ── Host ────────────────────────────────────────────────────────────
	host := ebiten_host.NewHost(ctx,
		ebiten_host.WithTitle(cfg.Window.Title),
		ebiten_host.WithSize(cfg.Window.Width, cfg.Window.Height),
		ebiten_host.WithHUD(func() string {
			s := controller.State()
			return fmt.Sprintf("pitch %6.1f  yaw %7.1f  zoom %.2f\nLMB drag: orbit  wheel: zoom  R: reset  Esc: quit", s.Pitch, s.Yaw, s.Zoom)
		}),
	)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(host),
		engine.WithRenderer(r),
		engine.WithController(controller),
		engine.WithRenderPolicy(cfg.RenderPolicy()),
		engine.WithRenderFrameLimit(cfg.Render.FrameLimit),
		engine.WithProfiling(cfg.Render.Profiling),
	)
	eng.Run()
}
