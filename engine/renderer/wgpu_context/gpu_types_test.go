package wgpu_context

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

func readFloat(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUVertexLayout(t *testing.T) {
	var v GPUVertex
	if v.Size() != 28 {
		t.Fatalf("GPUVertex size = %d, want 28", v.Size())
	}
	var u GPUTransformUniform
	if u.Size() != 64 {
		t.Fatalf("GPUTransformUniform size = %d, want 64", u.Size())
	}
}

func TestMarshalTriangle(t *testing.T) {
	tri := renderer.DefaultTriangle()
	buf := marshalTriangle(tri)
	if len(buf) != 3*28 {
		t.Fatalf("payload length = %d, want %d", len(buf), 3*28)
	}
	for i, vtx := range tri {
		base := i * 28
		for j := range 3 {
			if got := readFloat(buf, base+j*4); got != vtx.Position[j] {
				t.Fatalf("vertex %d position[%d] = %v, want %v", i, j, got, vtx.Position[j])
			}
		}
		for j := range 4 {
			if got := readFloat(buf, base+12+j*4); got != vtx.Color[j] {
				t.Fatalf("vertex %d color[%d] = %v, want %v", i, j, got, vtx.Color[j])
			}
		}
	}
}

func TestTransformUniformIsColumnMajor(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	u := newTransformUniform(m)
	buf := u.Marshal()
	// Translation lives in the fourth column.
	if readFloat(buf, 12*4) != 1 || readFloat(buf, 13*4) != 2 || readFloat(buf, 14*4) != 3 {
		t.Fatalf("translation not in column 3: %v", u.MVP)
	}
}
