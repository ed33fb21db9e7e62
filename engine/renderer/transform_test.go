package renderer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-3
}

// matNear compares element-wise by absolute difference.
func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func frameTransform(s camera.State, aspect float32) Transform {
	cam := camera.NewCamera()
	tr := NewTransform()
	p := cam.Projection()
	p.Aspect = aspect
	tr.SetProjection(p)
	tr.SetView(cam.Eye(s), cam.Target(), cam.Up())
	tr.Rotate(s.Pitch, camera.AxisX)
	tr.Rotate(s.Yaw, camera.AxisY)
	return tr
}

func TestRotateIgnoresZeroAxis(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(45, mgl32.Vec3{})
	if tr.ModelView() != mgl32.Ident4() {
		t.Fatal("a zero axis should leave the model-view untouched")
	}
}

func TestSetViewResetsRotation(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(30, camera.AxisX)
	tr.SetView(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, camera.AxisY)
	if !matNear(tr.ModelView(), mgl32.Translate3D(0, 0, -5), 1e-6) {
		t.Fatalf("SetView should discard earlier rotations, got %v", tr.ModelView())
	}
}

func TestProjectTriangleAtRest(t *testing.T) {
	tr := frameTransform(camera.InitialState(), 1)
	poly := ProjectTriangle(tr.ModelViewProjection(), DefaultTriangle(), 100, 100)
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(poly))
	}

	// f = 1/tan(30deg); the top vertex sits at y = f/5 in NDC.
	f := float32(1 / math.Tan(math.Pi/6))
	if !near(poly[0].X, 50) || !near(poly[0].Y, (1-f/5)*50) {
		t.Fatalf("unexpected top vertex position (%v, %v)", poly[0].X, poly[0].Y)
	}
	if !near(poly[1].X, (1-f/5)*50) || !near(poly[1].Y, (1+f/5)*50) {
		t.Fatalf("unexpected bottom-left vertex position (%v, %v)", poly[1].X, poly[1].Y)
	}
	if poly[2].Color != (mgl32.Vec4{0, 0, 1, 1}) {
		t.Fatalf("colors should pass through unclipped vertices, got %v", poly[2].Color)
	}
}

func TestProjectTriangleClipsAgainstNearPlane(t *testing.T) {
	// At zoom 0.1 the eye is at z = 0.5; pitching 90 degrees swings the top vertex behind it.
	tr := frameTransform(camera.State{Pitch: 90, Zoom: 0.1}, 1)
	poly := ProjectTriangle(tr.ModelViewProjection(), DefaultTriangle(), 100, 100)
	if len(poly) != 4 {
		t.Fatalf("expected the clipped triangle to become a quad, got %d vertices", len(poly))
	}
	for i, v := range poly {
		if math.IsNaN(float64(v.X)) || math.IsInf(float64(v.Y), 0) {
			t.Fatalf("vertex %d is not finite: %+v", i, v)
		}
	}
}

func TestProjectTriangleBehindCamera(t *testing.T) {
	tr := frameTransform(camera.State{Yaw: 0, Zoom: 1}, 1)
	// Move the triangle behind the eye.
	mvp := tr.ModelViewProjection().Mul4(mgl32.Translate3D(0, 0, 20))
	if poly := ProjectTriangle(mvp, DefaultTriangle(), 100, 100); poly != nil {
		t.Fatalf("expected nothing visible, got %d vertices", len(poly))
	}
}
