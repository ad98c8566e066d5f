package spincube

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	attribPosition uint32 = 0
	attribNormal   uint32 = 1
	attribUV       uint32 = 2
)

// uploadMesh creates a VAO and a static VBO holding vertices, with the
// position, normal and UV attributes laid out to match Vertex.
func uploadMesh(vertices []Vertex) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(attribPosition)

	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, vertexStride, normalOffset)
	gl.EnableVertexAttribArray(attribNormal)

	gl.VertexAttribPointerWithOffset(attribUV, 2, gl.FLOAT, false, vertexStride, uvOffset)
	gl.EnableVertexAttribArray(attribUV)

	// The VAO keeps the buffer binding captured by the attribute pointers.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return vao, vbo
}
