package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

type projectionMode int

const (
	perspective projectionMode = iota
	orthographic
)

func (m projectionMode) toggle() projectionMode {
	if m == perspective {
		return orthographic
	}
	return perspective
}

func (m projectionMode) String() string {
	if m == orthographic {
		return "orthographic"
	}
	return "perspective"
}

// projectionMatrix builds the projection for mode. zoom is the vertical field
// of view in degrees and only matters for perspective.
func projectionMatrix(mode projectionMode, zoom, aspect float32) mgl32.Mat4 {
	if mode == orthographic {
		return mgl32.Ortho(-orthoHalfExtent, orthoHalfExtent, -orthoHalfExtent, orthoHalfExtent, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(zoom), aspect, nearPlane, farPlane)
}

// frameRenderer draws the scene once per frame with the lit and lamp programs.
type frameRenderer struct {
	b      backend
	lit    *Shader
	lamp   *Shader
	scene  *Scene
	screen swapper
}

func newFrameRenderer(b backend, lit, lamp *Shader, scene *Scene, screen swapper) *frameRenderer {
	return &frameRenderer{
		b:      b,
		lit:    lit,
		lamp:   lamp,
		scene:  scene,
		screen: screen,
	}
}

func (r *frameRenderer) render(camera *Camera, mode projectionMode, aspect float32) {
	r.b.clear(clearColor)

	view := camera.getViewMatrix()
	projection := projectionMatrix(mode, camera.Zoom(), aspect)

	lit := r.lit.use()
	lit.setMat4("view", view)
	lit.setMat4("projection", projection)
	lit.setVec3("objectColor", objectColor)
	lit.setVec3("lightColor", r.scene.light.color)
	lit.setVec3("lightPos", r.scene.light.position)
	lit.setVec3("viewPosition", camera.Position())

	for _, object := range r.scene.objects {
		lit.setMat4("model", object.model)
		r.b.bindTexture(object.unit, object.texture.ID)
		lit.setInt("uTexture", int32(object.unit))
		lit.setVec2("uvScale", object.uvScale)
		object.mesh.Draw(r.b)
	}

	lamp := r.lamp.use()
	for _, model := range r.scene.lamps {
		lamp.setMat4("model", model)
		lamp.setMat4("view", view)
		lamp.setMat4("projection", projection)
		r.scene.lamp.Draw(r.b)
	}

	r.screen.SwapBuffers()
}
