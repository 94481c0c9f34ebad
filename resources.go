package main

import "fmt"

// resources owns every GPU object the viewer creates, keyed by name, and
// releases them together at shutdown.
type resources struct {
	b        backend
	shaders  map[string]*Shader
	textures map[string]*Texture
	meshes   map[string]*Mesh
}

func newResources(b backend) *resources {
	return &resources{
		b:        b,
		shaders:  make(map[string]*Shader),
		textures: make(map[string]*Texture),
		meshes:   make(map[string]*Mesh),
	}
}

// loadShader compiles an embedded vertex/fragment pair under name.
func (r *resources) loadShader(name, vShaderFile, fShaderFile string) (*Shader, error) {
	vertexCode, fragmentCode, err := loadShaderSources(vShaderFile, fShaderFile)
	if err != nil {
		return nil, err
	}
	shader, err := newShaderProgram(r.b, vertexCode, fragmentCode)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	r.shaders[name] = shader
	return shader, nil
}

func (r *resources) shader(name string) *Shader {
	return r.shaders[name]
}

// loadTexture decodes file and registers it under name.
func (r *resources) loadTexture(name, file string, wrap int32) (*Texture, error) {
	texture, err := newTexture(r.b, file, wrap)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", file, err)
	}
	r.textures[name] = texture
	return texture, nil
}

func (r *resources) texture(name string) *Texture {
	return r.textures[name]
}

func (r *resources) addMesh(name string, vertices []float32, indices []uint32, draws ...drawCall) *Mesh {
	mesh := newMesh(r.b, vertices, indices, draws...)
	r.meshes[name] = mesh
	return mesh
}

func (r *resources) mesh(name string) *Mesh {
	return r.meshes[name]
}

// release destroys everything that was created. Safe to call more than once.
func (r *resources) release() {
	for name, mesh := range r.meshes {
		mesh.destroy(r.b)
		delete(r.meshes, name)
	}
	for name, texture := range r.textures {
		texture.destroy(r.b)
		delete(r.textures, name)
	}
	for name, shader := range r.shaders {
		shader.destroy()
		delete(r.shaders, name)
	}
}
