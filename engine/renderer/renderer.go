package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// GraphicsContext is the drawing surface the Renderer drives. Its calls mirror a fixed-function
// pipeline: the projection and view are set, rotations are appended to the model-view transform,
// and the triangle is drawn with whatever transform is current.
type GraphicsContext interface {
	// SetViewport resizes the drawable area to the given framebuffer size in pixels.
	SetViewport(width, height int)

	// Clear starts a frame and clears the color and depth buffers.
	Clear() error

	// SetProjection replaces the projection transform.
	SetProjection(p camera.Projection)

	// SetView replaces the model-view transform with a look-at transform.
	SetView(eye, target, up mgl32.Vec3)

	// Rotate appends a rotation of angle degrees about axis to the model-view transform.
	Rotate(angle float32, axis mgl32.Vec3)

	// DrawTriangle draws t with smooth color interpolation using the current transforms.
	DrawTriangle(t Triangle)

	// Present finishes the frame and hands it to the display.
	Present() error
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	ctx      GraphicsContext
	camera   camera.Camera
	triangle Triangle
}

// Renderer produces frames of the triangle from a camera state.
//
// Renderer holds no per-frame state, so rendering the same state twice issues the same calls.
// It is not safe for concurrent use.
type Renderer interface {
	// RenderFrame draws one frame: clear, projection, look-at view, pitch rotation about +X, yaw
	// rotation about +Y, the triangle, and present. The state is only read.
	//
	// Parameters:
	//   - state: the camera state to render
	//   - aspect: the viewport aspect ratio; a non-positive value falls back to the camera's aspect
	//
	// Returns:
	//   - error: an error if the context could not start or present the frame
	RenderFrame(state camera.State, aspect float32) error

	// Resize forwards a framebuffer size change to the context and recomputes the camera aspect ratio.
	//
	// Parameters:
	//   - width: the new width of the framebuffer in pixels
	//   - height: the new height of the framebuffer in pixels
	Resize(width, height int)

	// Camera returns the camera providing the lens and view placement.
	Camera() camera.Camera

	// Context returns the graphics context frames are issued to.
	Context() GraphicsContext

	// Triangle returns the triangle drawn each frame.
	Triangle() Triangle
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into ctx. Without options it uses a default Camera and
// DefaultTriangle.
//
// Parameters:
//   - ctx: the graphics context to draw into (must not be nil)
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(ctx GraphicsContext, options ...RendererBuilderOption) Renderer {
	if ctx == nil {
		panic("renderer: graphics context must not be nil")
	}
	r := &renderer{
		ctx:      ctx,
		triangle: DefaultTriangle(),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.camera == nil {
		r.camera = camera.NewCamera()
	}
	return r
}

func (r *renderer) RenderFrame(state camera.State, aspect float32) error {
	if err := r.ctx.Clear(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}

	projection := r.camera.Projection()
	projection.Aspect = common.Coalesce(max(aspect, 0), projection.Aspect)
	r.ctx.SetProjection(projection)

	r.ctx.SetView(r.camera.Eye(state), r.camera.Target(), r.camera.Up())
	r.ctx.Rotate(state.Pitch, camera.AxisX)
	r.ctx.Rotate(state.Yaw, camera.AxisY)

	r.ctx.DrawTriangle(r.triangle)

	if err := r.ctx.Present(); err != nil {
		return fmt.Errorf("failed to present frame: %w", err)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.ctx.SetViewport(width, height)
	r.camera.SetViewport(width, height)
}

func (r *renderer) Camera() camera.Camera {
	return r.camera
}

func (r *renderer) Context() GraphicsContext {
	return r.ctx
}

func (r *renderer) Triangle() Triangle {
	return r.triangle
}
