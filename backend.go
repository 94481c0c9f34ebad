package main

import "github.com/go-gl/mathgl/mgl32"

// backend is everything the viewer needs from the graphics API. glBackend is
// the OpenGL implementation; tests substitute a recorder.
type backend interface {
	// Resource lifetime. Called only during startup and shutdown.
	newVertexArray(vertices []float32, indices []uint32, attribs []vertexAttrib) (vao uint32, buffers []uint32)
	deleteVertexArray(vao uint32, buffers []uint32)
	newTexture2D(img *textureImage, wrap int32) uint32
	deleteTexture(id uint32)
	newProgram(vertexSource, fragmentSource string) (uint32, error)
	deleteProgram(id uint32)

	// Per-frame state and commands.
	clear(color mgl32.Vec4)
	useProgram(id uint32)
	setInt(program uint32, name string, value int32)
	setVec2(program uint32, name string, value mgl32.Vec2)
	setVec3(program uint32, name string, value mgl32.Vec3)
	setMat4(program uint32, name string, value mgl32.Mat4)
	bindTexture(unit uint32, id uint32)
	draw(vao uint32, indexed bool, call drawCall)
}

// vertexAttrib describes one attribute of an interleaved float32 vertex.
// size and offset are counted in floats.
type vertexAttrib struct {
	location uint32
	size     int32
	offset   int
}

// swapper presents the back buffer. *glfw.Window satisfies it.
type swapper interface {
	SwapBuffers()
}
