package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
)

// RenderPolicy decides when the host loop draws a frame.
type RenderPolicy int

const (
	// RenderPolicyOnDemand draws only after something changed the picture: the first iteration,
	// a resize, a camera drag or zoom, or an explicit RequestRedraw.
	RenderPolicyOnDemand RenderPolicy = iota

	// RenderPolicyAlways draws on every loop iteration, optionally capped by the render frame limit.
	RenderPolicyAlways
)

// String returns the configuration name of the policy.
func (p RenderPolicy) String() string {
	switch p {
	case RenderPolicyAlways:
		return "always"
	default:
		return "on-demand"
	}
}

// ParseRenderPolicy converts a configuration name ("on-demand" or "always") into a RenderPolicy.
// The empty string selects the default.
//
// Parameters:
//   - name: the policy name
//
// Returns:
//   - RenderPolicy: the parsed policy
//   - error: an error if the name is unknown
func ParseRenderPolicy(name string) (RenderPolicy, error) {
	switch name {
	case "", "on-demand", "ondemand":
		return RenderPolicyOnDemand, nil
	case "always":
		return RenderPolicyAlways, nil
	default:
		return RenderPolicyOnDemand, fmt.Errorf("unknown render policy %q", name)
	}
}

// Host is the windowing side of the engine: it delivers input and resize events through
// callbacks and drives the loop by calling the update callback once per iteration.
// All callbacks are invoked on the goroutine running ProcessMessages.
type Host interface {
	SetUpdateCallback(callback func())
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(direction float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetMouseButtonDownCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseButtonUpCallback(callback func(button common.MouseButton))
	SetMouseMoveCallback(callback func(x, y float32))

	IsRunning() bool
	Close() error
	ProcessMessages()
	Width() int
	Height() int
}

// engine implements the Engine interface.
// Everything runs on the host's goroutine; nothing here is locked.
type engine struct {
	window     Host
	renderer   renderer.Renderer
	controller camera.OrbitController

	policy           RenderPolicy
	dirty            bool
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback func(deltaTime float32)
	lastRender     time.Time

	shutdownHooks []func() // run in order before the window closes
	quitOnce      sync.Once
}

// Engine is the main entry point for the viewer.
// It connects host events to the orbit controller and draws frames through the renderer.
type Engine interface {
	// Window returns the host driving the loop.
	//
	// Returns:
	//   - Host: the host instance
	Window() Host

	// Renderer returns the renderer frames are drawn with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Controller returns the orbit controller receiving pointer input.
	//
	// Returns:
	//   - camera.OrbitController: the controller instance
	Controller() camera.OrbitController

	// RenderPolicy returns the active render policy.
	//
	// Returns:
	//   - RenderPolicy: the policy
	RenderPolicy() RenderPolicy

	// RequestRedraw marks the picture as stale so the next iteration draws a frame.
	// Multiple requests before the next iteration coalesce into one frame.
	RequestRedraw()

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called after each rendered frame.
	//
	// Parameters:
	//   - callback: function receiving the time since the previous rendered frame in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run drives the host loop until the window closes, then shuts the engine down.
	Run()

	// Quit runs the shutdown hooks, then closes the window and ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine and registers its callbacks on the window.
// A window and a renderer are required; the controller defaults to camera.NewOrbitController().
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		policy:   RenderPolicyOnDemand,
		dirty:    true,
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: a window is required (use WithWindow)")
	}
	if e.renderer == nil {
		panic("engine: a renderer is required (use WithRenderer)")
	}
	if e.controller == nil {
		e.controller = camera.NewOrbitController()
	}

	e.bind()
	return e
}

// bind registers the engine's handlers on the window.
func (e *engine) bind() {
	e.window.SetMouseButtonDownCallback(func(button common.MouseButton, x, y float32) {
		e.controller.OnButtonDown(button, x, y)
	})
	e.window.SetMouseButtonUpCallback(func(button common.MouseButton) {
		e.controller.OnButtonUp(button)
	})
	e.window.SetMouseMoveCallback(func(x, y float32) {
		if e.controller.OnPointerMove(x, y) {
			e.RequestRedraw()
		}
	})
	e.window.SetScrollCallback(func(direction float32) {
		if e.controller.OnWheel(direction) {
			e.RequestRedraw()
		}
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyR && e.controller.Reset() {
			e.RequestRedraw()
		}
	})
	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		e.RequestRedraw()
	})
	e.window.SetUpdateCallback(e.update)
}

func (e *engine) Window() Host {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Controller() camera.OrbitController {
	return e.controller
}

func (e *engine) RenderPolicy() RenderPolicy {
	return e.policy
}

func (e *engine) RequestRedraw() {
	e.dirty = true
}

func (e *engine) Run() {
	e.lastRender = time.Now()
	e.window.ProcessMessages()
	e.Quit()
}

// Quit releases resources and closes the window once, whether or not the host already stopped running.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		for _, hook := range e.shutdownHooks {
			hook()
		}
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
	})
}

// update runs one loop iteration: draw if the policy asks for it, then account for the tick.
func (e *engine) update() {
	rendered := false
	if e.policy == RenderPolicyAlways || e.dirty {
		rendered = e.renderFrame()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(rendered)
	}

	if rendered && e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(e.lastRender); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// renderFrame draws the current camera state. A zero-sized (minimized) window is skipped and the
// redraw stays pending. A failed frame is logged and dropped.
//
// Returns:
//   - bool: true if a frame was presented
func (e *engine) renderFrame() bool {
	if e.window.Width() <= 0 || e.window.Height() <= 0 {
		return false
	}

	e.dirty = false
	now := time.Now()
	dt := float32(now.Sub(e.lastRender).Seconds())
	e.lastRender = now

	if err := e.renderer.RenderFrame(e.controller.State(), e.renderer.Camera().Aspect()); err != nil {
		log.Printf("[Engine] frame skipped: %v", err)
		return false
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}
	return true
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderCallback registers the function called after each rendered frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frames-per-second cap into a minimum frame duration; 0 = uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
