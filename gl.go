package main

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const sizeOfFloat = int32(unsafe.Sizeof(float32(0)))

// glBackend talks to the OpenGL context current on the calling thread.
type glBackend struct {
	// uniform locations per program, looked up once
	uniforms map[uint32]map[string]int32
}

func newGLBackend() *glBackend {
	return &glBackend{uniforms: make(map[uint32]map[string]int32)}
}

func (g *glBackend) newVertexArray(vertices []float32, indices []uint32, attribs []vertexAttrib) (uint32, []uint32) {
	var VAO, VBO uint32
	gl.GenVertexArrays(1, &VAO)
	gl.GenBuffers(1, &VBO)
	buffers := []uint32{VBO}

	gl.BindVertexArray(VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(sizeOfFloat), gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		var EBO uint32
		gl.GenBuffers(1, &EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(indices), gl.STATIC_DRAW)
		buffers = append(buffers, EBO)
	}

	stride := int32(floatsPerVertex) * sizeOfFloat
	for _, attrib := range attribs {
		gl.VertexAttribPointerWithOffset(attrib.location, attrib.size, gl.FLOAT, false, stride, uintptr(attrib.offset)*uintptr(sizeOfFloat))
		gl.EnableVertexAttribArray(attrib.location)
	}

	gl.BindVertexArray(0)
	return VAO, buffers
}

func (g *glBackend) deleteVertexArray(vao uint32, buffers []uint32) {
	gl.DeleteVertexArrays(1, &vao)
	if len(buffers) > 0 {
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	}
}

func (g *glBackend) newTexture2D(img *textureImage, wrap int32) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat, format := int32(gl.RGBA8), uint32(gl.RGBA)
	if img.channels == 3 {
		internalFormat, format = gl.RGB8, gl.RGB
	}
	// rows are tightly packed, RGB widths are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(img.width), int32(img.height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

func (g *glBackend) deleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (g *glBackend) newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("failed to compile vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("failed to compile fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link shader program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (g *glBackend) deleteProgram(id uint32) {
	gl.DeleteProgram(id)
	delete(g.uniforms, id)
}

func (g *glBackend) clear(color mgl32.Vec4) {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (g *glBackend) useProgram(id uint32) {
	gl.UseProgram(id)
}

func (g *glBackend) uniformLocation(program uint32, name string) int32 {
	locations, ok := g.uniforms[program]
	if !ok {
		locations = make(map[string]int32)
		g.uniforms[program] = locations
	}
	location, ok := locations[name]
	if !ok {
		location = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		locations[name] = location
	}
	return location
}

func (g *glBackend) setInt(program uint32, name string, value int32) {
	gl.Uniform1i(g.uniformLocation(program, name), value)
}

func (g *glBackend) setVec2(program uint32, name string, value mgl32.Vec2) {
	gl.Uniform2fv(g.uniformLocation(program, name), 1, &value[0])
}

func (g *glBackend) setVec3(program uint32, name string, value mgl32.Vec3) {
	gl.Uniform3fv(g.uniformLocation(program, name), 1, &value[0])
}

func (g *glBackend) setMat4(program uint32, name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(g.uniformLocation(program, name), 1, false, &value[0])
}

func (g *glBackend) bindTexture(unit uint32, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (g *glBackend) draw(vao uint32, indexed bool, call drawCall) {
	gl.BindVertexArray(vao)
	if indexed {
		gl.DrawElementsWithOffset(call.mode, call.count, gl.UNSIGNED_INT, uintptr(call.first)*unsafe.Sizeof(uint32(0)))
	} else {
		gl.DrawArrays(call.mode, call.first, call.count)
	}
	gl.BindVertexArray(0)
}

// viewport sets the GL viewport to the framebuffer size.
func (g *glBackend) viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func glVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
