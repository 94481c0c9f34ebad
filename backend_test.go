package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeBackend records every call instead of talking to OpenGL.
type fakeBackend struct {
	nextID uint32
	calls  []string

	vertexArrays map[uint32][]float32
	textures     map[uint32]*textureImage
	wraps        map[uint32]int32
	programs     map[uint32]bool

	// uniforms holds the last value set per program and name
	uniforms map[uint32]map[string]any
	// failProgram makes newProgram return this error
	failProgram error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		vertexArrays: make(map[uint32][]float32),
		textures:     make(map[uint32]*textureImage),
		wraps:        make(map[uint32]int32),
		programs:     make(map[uint32]bool),
		uniforms:     make(map[uint32]map[string]any),
	}
}

func (f *fakeBackend) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) newVertexArray(vertices []float32, indices []uint32, attribs []vertexAttrib) (uint32, []uint32) {
	vao := f.id()
	buffers := []uint32{f.id()}
	if len(indices) > 0 {
		buffers = append(buffers, f.id())
	}
	f.vertexArrays[vao] = vertices
	f.record("newVertexArray %d", vao)
	return vao, buffers
}

func (f *fakeBackend) deleteVertexArray(vao uint32, buffers []uint32) {
	delete(f.vertexArrays, vao)
	f.record("deleteVertexArray %d", vao)
}

func (f *fakeBackend) newTexture2D(img *textureImage, wrap int32) uint32 {
	id := f.id()
	f.textures[id] = img
	f.wraps[id] = wrap
	f.record("newTexture2D %d", id)
	return id
}

func (f *fakeBackend) deleteTexture(id uint32) {
	delete(f.textures, id)
	f.record("deleteTexture %d", id)
}

func (f *fakeBackend) newProgram(vertexSource, fragmentSource string) (uint32, error) {
	if f.failProgram != nil {
		return 0, f.failProgram
	}
	id := f.id()
	f.programs[id] = true
	f.record("newProgram %d", id)
	return id, nil
}

func (f *fakeBackend) deleteProgram(id uint32) {
	delete(f.programs, id)
	f.record("deleteProgram %d", id)
}

func (f *fakeBackend) clear(color mgl32.Vec4) {
	f.record("clear")
}

func (f *fakeBackend) useProgram(id uint32) {
	f.record("useProgram %d", id)
}

func (f *fakeBackend) setUniform(program uint32, name string, value any) {
	if f.uniforms[program] == nil {
		f.uniforms[program] = make(map[string]any)
	}
	f.uniforms[program][name] = value
	f.record("set %d %s", program, name)
}

func (f *fakeBackend) setInt(program uint32, name string, value int32) {
	f.setUniform(program, name, value)
}

func (f *fakeBackend) setVec2(program uint32, name string, value mgl32.Vec2) {
	f.setUniform(program, name, value)
}

func (f *fakeBackend) setVec3(program uint32, name string, value mgl32.Vec3) {
	f.setUniform(program, name, value)
}

func (f *fakeBackend) setMat4(program uint32, name string, value mgl32.Mat4) {
	f.setUniform(program, name, value)
}

func (f *fakeBackend) bindTexture(unit uint32, id uint32) {
	f.record("bindTexture %d %d", unit, id)
}

func (f *fakeBackend) draw(vao uint32, indexed bool, call drawCall) {
	f.record("draw %d %t %d %d %d", vao, indexed, call.mode, call.first, call.count)
}

// count counts recorded calls equal to call.
func (f *fakeBackend) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// countPrefix counts recorded calls starting with prefix.
func (f *fakeBackend) countPrefix(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type fakeSwapper struct {
	swaps int
}

func (s *fakeSwapper) SwapBuffers() {
	s.swaps++
}

var errLinkFailed = errors.New("failed to link shader program: boom")
