package wgpu_context

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleShaderSource holds the WGSL vertex and fragment entry points for the triangle pipeline.
// The vertex input matches GPUVertex and the uniform matches GPUTransformUniform.
//
//go:embed assets/triangle.wgsl
var TriangleShaderSource string

const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// GPUVertex is the GPU-aligned representation of a triangle vertex.
// Size: 28 bytes (position vec3<f32> followed by color vec4<f32>, tightly packed in the vertex buffer).
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position
	Color    [4]float32 // offset 12: RGBA color
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (28)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal returns the raw bytes of the GPUVertex for GPU upload. The slice aliases g.
//
// Returns:
//   - []byte: the 28-byte buffer
func (g *GPUVertex) Marshal() []byte {
	return common.StructToBytes(g)
}

// GPUTransformUniform is the GPU-aligned representation of the transform uniform buffer.
// Size: 64 bytes (one mat4x4<f32>).
type GPUTransformUniform struct {
	MVP [16]float32 // offset 0: model-view-projection matrix, column-major
}

// Size returns the size of the GPUTransformUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUTransformUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal returns the raw bytes of the GPUTransformUniform for GPU upload. The slice aliases g.
//
// Returns:
//   - []byte: the 64-byte buffer
func (g *GPUTransformUniform) Marshal() []byte {
	return common.StructToBytes(g)
}

// marshalTriangle packs the three vertices of t into a vertex buffer payload.
func marshalTriangle(t renderer.Triangle) []byte {
	vertices := make([]GPUVertex, len(t))
	for i, v := range t {
		vertices[i] = GPUVertex{
			Position: [3]float32(v.Position),
			Color:    [4]float32(v.Color),
		}
	}
	return common.SliceToBytes(vertices)
}

// newTransformUniform wraps an MVP matrix for upload.
func newTransformUniform(mvp mgl32.Mat4) GPUTransformUniform {
	return GPUTransformUniform{MVP: [16]float32(mvp)}
}
