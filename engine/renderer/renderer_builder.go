package renderer

import "github.com/Carmen-Shannon/oxy-orbit/engine/camera"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithCamera sets the camera supplying the lens and orbit placement.
//
// Parameters:
//   - c: the Camera to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the camera option to a renderer
func WithCamera(c camera.Camera) RendererBuilderOption {
	return func(r *renderer) {
		r.camera = c
	}
}

// WithTriangle replaces the triangle drawn each frame.
//
// Parameters:
//   - t: the Triangle to draw
//
// Returns:
//   - RendererBuilderOption: a function that applies the triangle option to a renderer
func WithTriangle(t Triangle) RendererBuilderOption {
	return func(r *renderer) {
		r.triangle = t
	}
}
