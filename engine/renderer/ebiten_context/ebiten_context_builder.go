package ebiten_context

import "image/color"

// ContextOption is a functional option for configuring a Context.
type ContextOption func(*Context)

// WithClearColor sets the color each frame is cleared to.
//
// Parameters:
//   - clr: the clear color
//
// Returns:
//   - ContextOption: option function to apply
func WithClearColor(clr color.Color) ContextOption {
	return func(c *Context) {
		if clr != nil {
			c.clearColor = clr
		}
	}
}

// WithAntiAlias enables or disables edge anti-aliasing of the triangle. Enabled by default.
//
// Parameters:
//   - enabled: whether DrawTriangles anti-aliases edges
//
// Returns:
//   - ContextOption: option function to apply
func WithAntiAlias(enabled bool) ContextOption {
	return func(c *Context) {
		c.antiAlias = enabled
	}
}
