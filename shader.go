package main

import (
	"embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/*
var shaderFiles embed.FS

// Shader is a linked vertex+fragment program.
type Shader struct {
	id uint32
	b  backend
}

// newShaderProgram compiles both stages and links them. Compile and link logs
// are returned in the error; nothing is left allocated on failure.
func newShaderProgram(b backend, vertexSource, fragmentSource string) (*Shader, error) {
	id, err := b.newProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Shader{id: id, b: b}, nil
}

// loadShaderSources reads an embedded vertex/fragment pair.
func loadShaderSources(vertexPath, fragmentPath string) (string, string, error) {
	vBytes, err := shaderFiles.ReadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fBytes, err := shaderFiles.ReadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return string(vBytes), string(fBytes), nil
}

func (s *Shader) use() *Shader {
	s.b.useProgram(s.id)
	return s
}

func (s *Shader) setInt(name string, value int32) {
	s.b.setInt(s.id, name, value)
}

func (s *Shader) setVec2(name string, value mgl32.Vec2) {
	s.b.setVec2(s.id, name, value)
}

func (s *Shader) setVec3(name string, value mgl32.Vec3) {
	s.b.setVec3(s.id, name, value)
}

func (s *Shader) setMat4(name string, value mgl32.Mat4) {
	s.b.setMat4(s.id, name, value)
}

func (s *Shader) destroy() {
	if s.id == 0 {
		return
	}
	s.b.deleteProgram(s.id)
	s.id = 0
}
