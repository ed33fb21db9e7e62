package ebiten_context

import (
	"errors"
	"image"
	"image/color"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNoTarget is returned by Clear when no target image has been set.
	ErrNoTarget = errors.New("no target image")

	// ErrNoFrame is returned by Present when no frame was started by Clear.
	ErrNoFrame = errors.New("no frame in progress")
)

// Context is a renderer.GraphicsContext that projects the triangle on the CPU and rasterizes it with
// ebiten's DrawTriangles, interpolating the vertex colors across the face.
//
// There is no depth buffer: a single triangle cannot occlude itself, so Clear only fills color.
// The target image is set each frame with SetTarget, normally the screen passed to ebiten's Draw.
type Context struct {
	renderer.Transform

	target     *ebiten.Image
	white      *ebiten.Image
	width      int
	height     int
	clearColor color.Color
	antiAlias  bool

	inFrame   bool
	presented uint64

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ renderer.GraphicsContext = &Context{}

// New creates an ebiten context for a width x height viewport.
//
// Parameters:
//   - width, height: initial viewport size in pixels
//   - options: functional options to configure the context
//
// Returns:
//   - *Context: the new context
func New(width, height int, options ...ContextOption) *Context {
	c := &Context{
		Transform:  renderer.NewTransform(),
		width:      width,
		height:     height,
		clearColor: color.RGBA{R: 26, G: 26, B: 26, A: 255},
		antiAlias:  true,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// SetTarget sets the image the next frame is drawn into.
//
// Parameters:
//   - target: the destination image, usually ebiten's screen
func (c *Context) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Presented returns the number of frames presented so far.
func (c *Context) Presented() uint64 {
	return c.presented
}

func (c *Context) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

func (c *Context) Clear() error {
	if c.target == nil {
		return ErrNoTarget
	}
	c.target.Fill(c.clearColor)
	c.inFrame = true
	return nil
}

func (c *Context) SetProjection(p camera.Projection) {
	c.Transform.SetProjection(p)
}

func (c *Context) SetView(eye, target, up mgl32.Vec3) {
	c.Transform.SetView(eye, target, up)
}

func (c *Context) Rotate(angle float32, axis mgl32.Vec3) {
	c.Transform.Rotate(angle, axis)
}

func (c *Context) DrawTriangle(t renderer.Triangle) {
	if !c.inFrame {
		return
	}
	poly := renderer.ProjectTriangle(c.ModelViewProjection(), t, c.width, c.height)
	if poly == nil {
		return
	}

	c.vertices, c.indices = appendPolygon(c.vertices[:0], c.indices[:0], poly)
	c.target.DrawTriangles(c.vertices, c.indices, c.whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: c.antiAlias,
	})
}

func (c *Context) Present() error {
	if !c.inFrame {
		return ErrNoFrame
	}
	c.inFrame = false
	c.presented++
	return nil
}

// whiteImage returns the inner pixel of a 3x3 white image. Sampling the inner pixel keeps the
// source color constant, so each fragment gets exactly the interpolated vertex color.
func (c *Context) whiteImage() *ebiten.Image {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}

// appendPolygon converts a convex screen-space polygon into a triangle fan.
func appendPolygon(vertices []ebiten.Vertex, indices []uint16, poly []renderer.ScreenVertex) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vertices))
	for _, v := range poly {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: v.Color.X(),
			ColorG: v.Color.Y(),
			ColorB: v.Color.Z(),
			ColorA: v.Color.W(),
		})
	}
	for i := 1; i+1 < len(poly); i++ {
		indices = append(indices, base, base+uint16(i), base+uint16(i+1))
	}
	return vertices, indices
}
