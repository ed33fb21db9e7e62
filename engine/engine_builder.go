package engine

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, e.g. to change its interval or logger.
//
// Parameters:
//   - p: the profiler to tick each iteration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		if p != nil {
			e.profiler = p
		}
	}
}

// WithWindow sets the host whose events drive the engine. Required.
//
// Parameters:
//   - w: a spawned window (see window.NewWindow) or any other Host
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Host) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are drawn with. Required.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithController sets the orbit controller that receives pointer input.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(c camera.OrbitController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = c
	}
}

// WithRenderPolicy sets when frames are drawn. Defaults to RenderPolicyOnDemand.
//
// Parameters:
//   - policy: the render policy
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderPolicy(policy RenderPolicy) EngineBuilderOption {
	return func(e *engine) {
		e.policy = policy
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithShutdown registers a function run by Quit before the window is closed.
// Use it for resources bound to the window surface. Hooks run in registration order.
//
// Parameters:
//   - hook: the function to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithShutdown(hook func()) EngineBuilderOption {
	return func(e *engine) {
		if hook != nil {
			e.shutdownHooks = append(e.shutdownHooks, hook)
		}
	}
}
