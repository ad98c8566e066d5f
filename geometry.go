package spincube

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved record uploaded to the vertex buffer.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

const (
	vertexStride   = int32(unsafe.Sizeof(Vertex{}))
	normalOffset   = unsafe.Offsetof(Vertex{}.Normal)
	uvOffset       = unsafe.Offsetof(Vertex{}.UV)
	cubeVertexSize = 36
)

// DrawRange is one glDrawArrays call over a mesh.
type DrawRange struct {
	First int32
	Count int32
}

// Cube corners, as seen from the front:
//
//	      0        3
//	   7        4 <-- top-right-near
//	bottom
//	left
//	far ---> 1        2
//	   6        5
var cubeCorners = [8][3]bool{
	{false, true, false}, // 0
	{false, false, false},
	{true, false, false},
	{true, true, false},
	{true, true, true},
	{true, false, true},
	{false, false, true},
	{false, true, true}, // 7
}

type cubeCorner struct {
	corner int
	uv     [2]float32
}

type cubeFace struct {
	normal  [3]float32
	corners [6]cubeCorner
}

// Triangles wind counter-clockwise when viewed from outside the cube.
var cubeFaces = [6]cubeFace{
	{normal: [3]float32{0, 0, -1}, corners: [6]cubeCorner{
		{1, [2]float32{0, 1}}, {0, [2]float32{0, 0}}, {2, [2]float32{1, 1}},
		{3, [2]float32{1, 0}}, {2, [2]float32{1, 1}}, {0, [2]float32{0, 0}},
	}},
	{normal: [3]float32{1, 0, 0}, corners: [6]cubeCorner{
		{2, [2]float32{1, 1}}, {3, [2]float32{1, 0}}, {5, [2]float32{0, 1}},
		{4, [2]float32{0, 0}}, {5, [2]float32{0, 1}}, {3, [2]float32{1, 0}},
	}},
	{normal: [3]float32{0, 0, 1}, corners: [6]cubeCorner{
		{5, [2]float32{0, 1}}, {4, [2]float32{0, 0}}, {6, [2]float32{1, 1}},
		{7, [2]float32{1, 0}}, {6, [2]float32{1, 1}}, {4, [2]float32{0, 0}},
	}},
	{normal: [3]float32{-1, 0, 0}, corners: [6]cubeCorner{
		{6, [2]float32{1, 1}}, {7, [2]float32{1, 0}}, {1, [2]float32{0, 1}},
		{0, [2]float32{0, 0}}, {1, [2]float32{0, 1}}, {7, [2]float32{1, 0}},
	}},
	{normal: [3]float32{0, -1, 0}, corners: [6]cubeCorner{
		{2, [2]float32{0, 0}}, {5, [2]float32{0, 1}}, {1, [2]float32{1, 0}},
		{6, [2]float32{1, 1}}, {1, [2]float32{1, 0}}, {5, [2]float32{0, 1}},
	}},
	{normal: [3]float32{0, 1, 0}, corners: [6]cubeCorner{
		{4, [2]float32{0, 1}}, {3, [2]float32{0, 0}}, {7, [2]float32{1, 1}},
		{0, [2]float32{1, 0}}, {7, [2]float32{1, 1}}, {3, [2]float32{0, 0}},
	}},
}

// NewCube returns the 36 vertices of the axis-aligned box spanning lo..hi.
func NewCube(lo, hi mgl32.Vec3) []Vertex {
	vertices := make([]Vertex, 0, cubeVertexSize)
	for _, face := range cubeFaces {
		for _, c := range face.corners {
			var pos [3]float32
			for axis, high := range cubeCorners[c.corner] {
				if high {
					pos[axis] = hi[axis]
				} else {
					pos[axis] = lo[axis]
				}
			}
			vertices = append(vertices, Vertex{Position: pos, Normal: face.normal, UV: c.uv})
		}
	}
	return vertices
}

// SceneMesh returns the vertex data for the spinning cube followed by the
// static one, and one draw range per cube.
func SceneMesh() ([]Vertex, []DrawRange) {
	vertices := NewCube(mgl32.Vec3{-0.25, -0.25, -0.25}, mgl32.Vec3{0.25, 0.25, 0.25})
	vertices = append(vertices, NewCube(mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{2.5, 2.5, 2.5})...)

	return vertices, []DrawRange{
		{First: 0, Count: cubeVertexSize},
		{First: cubeVertexSize, Count: cubeVertexSize},
	}
}
