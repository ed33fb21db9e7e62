package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform tracks the projection and model-view matrices that a GraphicsContext accumulates
// between Clear and DrawTriangle. Contexts embed it to share the fixed-function semantics.
type Transform struct {
	projection mgl32.Mat4
	modelView  mgl32.Mat4
}

// NewTransform returns a Transform with identity projection and model-view matrices.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{
		projection: mgl32.Ident4(),
		modelView:  mgl32.Ident4(),
	}
}

// SetProjection replaces the projection matrix.
//
// Parameters:
//   - p: the perspective parameters
func (t *Transform) SetProjection(p camera.Projection) {
	t.projection = p.Matrix()
}

// SetView replaces the model-view matrix with a look-at matrix.
//
// Parameters:
//   - eye: camera position
//   - target: point looked at
//   - up: up direction
func (t *Transform) SetView(eye, target, up mgl32.Vec3) {
	common.LookAt(t.modelView[:],
		eye[0], eye[1], eye[2],
		target[0], target[1], target[2],
		up[0], up[1], up[2],
	)
}

// Rotate post-multiplies the model-view matrix by a rotation of angle degrees about axis.
// A zero axis is ignored.
//
// Parameters:
//   - angle: rotation in degrees
//   - axis: rotation axis (need not be normalized)
func (t *Transform) Rotate(angle float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	t.modelView = t.modelView.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
}

// Projection returns the current projection matrix.
func (t *Transform) Projection() mgl32.Mat4 {
	return t.projection
}

// ModelView returns the current model-view matrix.
func (t *Transform) ModelView() mgl32.Mat4 {
	return t.modelView
}

// ModelViewProjection returns projection * model-view.
func (t *Transform) ModelViewProjection() mgl32.Mat4 {
	return t.projection.Mul4(t.modelView)
}

// ScreenVertex is a projected vertex in window pixels, origin top-left, Y down.
type ScreenVertex struct {
	X, Y  float32
	Color mgl32.Vec4
}

type clipVertex struct {
	pos   mgl32.Vec4
	color mgl32.Vec4
}

// ProjectTriangle transforms t by mvp, clips it against the near plane and maps the result to
// window pixels. Clipping can turn the triangle into a quad, so the result is a convex polygon with
// 3 or 4 vertices in the original winding, or nil when the triangle is entirely behind the near plane.
//
// Parameters:
//   - mvp: the model-view-projection matrix (WebGPU depth range)
//   - t: the triangle to project
//   - width, height: viewport size in pixels
//
// Returns:
//   - []ScreenVertex: the projected polygon, or nil if nothing is visible
func ProjectTriangle(mvp mgl32.Mat4, t Triangle, width, height int) []ScreenVertex {
	in := make([]clipVertex, 0, 3)
	for _, v := range t {
		in = append(in, clipVertex{
			pos:   mvp.Mul4x1(v.Position.Vec4(1)),
			color: v.Color,
		})
	}

	poly := clipNear(in)
	if len(poly) < 3 {
		return nil
	}

	w := float32(width)
	h := float32(height)
	out := make([]ScreenVertex, len(poly))
	for i, v := range poly {
		ndcX := v.pos.X() / v.pos.W()
		ndcY := v.pos.Y() / v.pos.W()
		out[i] = ScreenVertex{
			X:     (ndcX + 1) * 0.5 * w,
			Y:     (1 - ndcY) * 0.5 * h,
			Color: v.color,
		}
	}
	return out
}

// clipNear clips a polygon against the near plane z >= 0 (Sutherland-Hodgman). In the [0, 1]
// depth range every vertex that survives has w >= near > 0.
func clipNear(poly []clipVertex) []clipVertex {
	out := make([]clipVertex, 0, len(poly)+1)
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		curIn := cur.pos.Z() >= 0
		nextIn := next.pos.Z() >= 0

		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			f := cur.pos.Z() / (cur.pos.Z() - next.pos.Z())
			out = append(out, clipVertex{
				pos:   cur.pos.Add(next.pos.Sub(cur.pos).Mul(f)),
				color: cur.color.Add(next.color.Sub(cur.color).Mul(f)),
			})
		}
	}
	return out
}
