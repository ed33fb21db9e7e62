package wgpu_context

import "github.com/cogentcore/webgpu/wgpu"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// ContextOption is a functional option applied to a Context before any GPU objects are created.
type ContextOption func(*Context)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - ContextOption: a function that applies the present mode option
func WithPresentMode(mode PresentMode) ContextOption {
	return func(c *Context) {
		switch mode {
		case PresentModeUncapped:
			c.presentMode = wgpu.PresentModeImmediate
		default:
			c.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithMSAA sets the multisample anti-aliasing sample count. Use MSAAOff to disable MSAA.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - ContextOption: a function that applies the MSAA option
func WithMSAA(count MSAASampleCount) ContextOption {
	return func(c *Context) {
		c.sampleCount = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD (e.g. lavapipe or SwiftShader).
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - ContextOption: a function that applies the force software renderer option
func WithForceSoftwareRenderer(force bool) ContextOption {
	return func(c *Context) {
		c.forceFallbackAdapter = force
	}
}

// WithClearColor sets the color the frame is cleared to.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - ContextOption: a function that applies the clear color option
func WithClearColor(r, g, b, a float64) ContextOption {
	return func(c *Context) {
		c.clearColor = wgpu.Color{R: r, G: g, B: b, A: a}
	}
}
