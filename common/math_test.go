package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPerspectiveDepthRange(t *testing.T) {
	var m mgl32.Mat4
	Perspective(m[:], float32(math.Pi/3), 4.0/3.0, 0.1, 100)

	for _, tc := range []struct {
		viewZ float32
		want  float32
	}{
		{-0.1, 0},
		{-100, 1},
	} {
		clip := m.Mul4x1(mgl32.Vec4{0, 0, tc.viewZ, 1})
		if got := clip.Z() / clip.W(); math.Abs(float64(got-tc.want)) > 1e-5 {
			t.Fatalf("depth at z=%v is %v, want %v", tc.viewZ, got, tc.want)
		}
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	var m mgl32.Mat4
	LookAt(m[:], 1, 2, 5, 0, 0, 0, 0, 1, 0)
	want := mgl32.LookAtV(mgl32.Vec3{1, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if !matNear(m, want, 1e-5) {
		t.Fatalf("LookAt = %v, want %v", m, want)
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)
	if mgl32.Mat4(m) != mgl32.Ident4() {
		t.Fatalf("Identity = %v", m)
	}
}

func TestBytesViews(t *testing.T) {
	type pair struct{ A, B float32 }
	if got := len(SliceToBytes([]pair{{1, 2}, {3, 4}})); got != 16 {
		t.Fatalf("SliceToBytes length = %d, want 16", got)
	}
	if SliceToBytes([]pair(nil)) != nil {
		t.Fatal("empty slice should map to nil")
	}
	p := pair{1, 2}
	if got := len(StructToBytes(&p)); got != 8 {
		t.Fatalf("StructToBytes length = %d, want 8", got)
	}
}

func TestClampAndCoalesce(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp out of range")
	}
	if Coalesce(float32(0), 1.5, 2) != 1.5 {
		t.Fatal("Coalesce should return the first non-zero value")
	}
	if Coalesce(0, 0) != 0 {
		t.Fatal("Coalesce of zeros should be zero")
	}
}

// matNear compares element-wise by absolute difference.
func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}
