package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Interleaved layout shared by every mesh: position, normal, texture coords.
const (
	floatsPerPosition = 3
	floatsPerNormal   = 3
	floatsPerUV       = 2
	floatsPerVertex   = floatsPerPosition + floatsPerNormal + floatsPerUV
)

var meshAttribs = []vertexAttrib{
	{location: 0, size: floatsPerPosition, offset: 0},
	{location: 1, size: floatsPerNormal, offset: floatsPerPosition},
	{location: 2, size: floatsPerUV, offset: floatsPerPosition + floatsPerNormal},
}

// drawCall is one glDraw* invocation against a mesh. For indexed meshes first
// and count address the index buffer, otherwise the vertex buffer.
type drawCall struct {
	mode  uint32
	first int32
	count int32
}

// Mesh is GPU-resident vertex (and optional index) data. Its buffers are never
// written after newMesh returns.
type Mesh struct {
	vao         uint32
	buffers     []uint32
	vertexCount int32
	indexCount  int32
	draws       []drawCall
}

// newMesh uploads vertices (and indices, if any) and records how the mesh is
// drawn. Without explicit draws the whole mesh is drawn as triangles.
func newMesh(b backend, vertices []float32, indices []uint32, draws ...drawCall) *Mesh {
	mesh := &Mesh{
		vertexCount: int32(len(vertices) / floatsPerVertex),
		indexCount:  int32(len(indices)),
	}
	if len(draws) == 0 {
		count := mesh.vertexCount
		if mesh.indexed() {
			count = mesh.indexCount
		}
		draws = []drawCall{{mode: gl.TRIANGLES, first: 0, count: count}}
	}
	mesh.draws = draws
	mesh.vao, mesh.buffers = b.newVertexArray(vertices, indices, meshAttribs)

	return mesh
}

func (mesh *Mesh) indexed() bool {
	return mesh.indexCount > 0
}

// Draw issues every draw call of the mesh. The caller binds program and textures.
func (mesh *Mesh) Draw(b backend) {
	for _, call := range mesh.draws {
		b.draw(mesh.vao, mesh.indexed(), call)
	}
}

func (mesh *Mesh) destroy(b backend) {
	if mesh.vao == 0 {
		return
	}
	b.deleteVertexArray(mesh.vao, mesh.buffers)
	mesh.vao = 0
	mesh.buffers = nil
}
