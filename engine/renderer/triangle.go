package renderer

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single colored triangle corner in model space.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4 // RGBA, interpolated across the face
}

// Triangle is the three corners of the drawn face, in counter-clockwise order.
type Triangle [3]Vertex

// DefaultTriangle returns the viewer's triangle: a red top vertex, a green bottom-left vertex and a
// blue bottom-right vertex in the Z = 0 plane.
//
// Returns:
//   - Triangle: the default triangle
func DefaultTriangle() Triangle {
	return Triangle{
		{Position: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec4{1, 0, 0, 1}},
		{Position: mgl32.Vec3{-1, -1, 0}, Color: mgl32.Vec4{0, 1, 0, 1}},
		{Position: mgl32.Vec3{1, -1, 0}, Color: mgl32.Vec4{0, 0, 1, 1}},
	}
}
