package spincube

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, int32(8*4), vertexStride)
	assert.Equal(t, uintptr(0), unsafe.Offsetof(Vertex{}.Position))
	assert.Equal(t, uintptr(3*4), normalOffset)
	assert.Equal(t, uintptr(6*4), uvOffset)
}

func TestNewCube_Bounds(t *testing.T) {
	lo, hi := mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{2.5, 2.5, 2.5}
	cube := NewCube(lo, hi)
	require.Len(t, cube, 36)

	corners := map[[3]float32]int{}
	for _, v := range cube {
		for axis, c := range v.Position {
			assert.True(t, c == lo[axis] || c == hi[axis], "coordinate %v off the box", c)
		}
		corners[v.Position]++
		for _, c := range v.UV {
			assert.True(t, c == 0 || c == 1)
		}
	}
	assert.Len(t, corners, 8)
}

func TestNewCube_WindingMatchesNormals(t *testing.T) {
	cube := NewCube(mgl32.Vec3{-0.25, -0.25, -0.25}, mgl32.Vec3{0.25, 0.25, 0.25})

	for i := 0; i < len(cube); i += 3 {
		a := mgl32.Vec3(cube[i].Position)
		b := mgl32.Vec3(cube[i+1].Position)
		c := mgl32.Vec3(cube[i+2].Position)
		faceNormal := b.Sub(a).Cross(c.Sub(a)).Normalize()

		for j := i; j < i+3; j++ {
			assert.True(t, faceNormal.ApproxEqual(mgl32.Vec3(cube[j].Normal)),
				"triangle %d: winding normal %v, vertex normal %v", i/3, faceNormal, cube[j].Normal)
		}
	}
}

func TestNewCube_NormalsPointOutwards(t *testing.T) {
	cube := NewCube(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	for _, v := range cube {
		n := mgl32.Vec3(v.Normal)
		assert.InDelta(t, 1.0, n.Len(), 1e-6)
		assert.Greater(t, mgl32.Vec3(v.Position).Dot(n), float32(0))
	}
}

func TestSceneMesh(t *testing.T) {
	vertices, draws := SceneMesh()

	require.Len(t, vertices, 72)
	assert.Equal(t, []DrawRange{{First: 0, Count: 36}, {First: 36, Count: 36}}, draws)

	for _, v := range vertices[:36] {
		for _, c := range v.Position {
			assert.Contains(t, []float32{-0.25, 0.25}, c)
		}
	}
	for _, v := range vertices[36:] {
		for _, c := range v.Position {
			assert.Contains(t, []float32{1.5, 2.5}, c)
		}
	}
	// Both cubes share the same face order and texture mapping.
	for i := 0; i < 36; i++ {
		assert.Equal(t, vertices[i].Normal, vertices[36+i].Normal)
		assert.Equal(t, vertices[i].UV, vertices[36+i].UV)
	}
}
