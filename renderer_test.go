package main

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestRenderer(t *testing.T) (*frameRenderer, *fakeBackend, *fakeSwapper) {
	t.Helper()
	dir := t.TempDir()
	writeSceneTextures(t, dir)

	b := newFakeBackend()
	res := newResources(b)
	lit, err := res.loadShader("lit", "shaders/lit.vs", "shaders/lit.fs")
	if err != nil {
		t.Fatal(err)
	}
	lamp, err := res.loadShader("lamp", "shaders/lamp.vs", "shaders/lamp.fs")
	if err != nil {
		t.Fatal(err)
	}
	if err := loadSceneResources(res, dir); err != nil {
		t.Fatal(err)
	}
	scene, err := buildScene(res, sceneEntries)
	if err != nil {
		t.Fatal(err)
	}
	screen := &fakeSwapper{}
	return newFrameRenderer(b, lit, lamp, scene, screen), b, screen
}

func TestProjectionModeToggle(t *testing.T) {
	mode := perspective
	mode = mode.toggle()
	if mode != orthographic {
		t.Fatalf("Expected orthographic, got %s", mode)
	}
	if mode = mode.toggle(); mode != perspective {
		t.Fatalf("Expected perspective, got %s", mode)
	}
}

func TestProjectionMatrix(t *testing.T) {
	persp := projectionMatrix(perspective, 45, 4.0/3.0)
	if want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100); persp != want {
		t.Errorf("Expected %v, got %v", want, persp)
	}

	ortho := projectionMatrix(orthographic, 45, 4.0/3.0)
	if want := mgl32.Ortho(-5, 5, -5, 5, 0.1, 100); ortho != want {
		t.Errorf("Expected %v, got %v", want, ortho)
	}
	// zoom does not affect the orthographic volume
	if projectionMatrix(orthographic, 10, 2) != ortho {
		t.Errorf("Expected orthographic projection to ignore zoom and aspect")
	}
}

func TestRenderCallOrder(t *testing.T) {
	r, b, screen := newTestRenderer(t)
	b.calls = nil

	camera := NewDefaultCameraAtPosition(initialCameraPosition)
	r.render(camera, perspective, 4.0/3.0)

	if screen.swaps != 1 {
		t.Fatalf("Expected 1 swap, got %d", screen.swaps)
	}
	if b.calls[0] != "clear" {
		t.Errorf("Expected clear first, got %s", b.calls[0])
	}

	litUse := fmt.Sprintf("useProgram %d", r.lit.id)
	lampUse := fmt.Sprintf("useProgram %d", r.lamp.id)
	litAt := slices.Index(b.calls, litUse)
	lampAt := slices.Index(b.calls, lampUse)
	if litAt < 0 || lampAt < 0 || litAt > lampAt {
		t.Fatalf("Expected the lit program before the lamp program, got %d and %d", litAt, lampAt)
	}
	if got := b.countPrefix("useProgram"); got != 2 {
		t.Errorf("Expected each program bound once, got %d binds", got)
	}

	// hoisted uniforms are uploaded once per frame
	for _, name := range []string{"view", "projection", "objectColor", "lightColor", "lightPos", "viewPosition"} {
		if got := b.count(fmt.Sprintf("set %d %s", r.lit.id, name)); got != 1 {
			t.Errorf("Expected %s set once on the lit program, got %d", name, got)
		}
	}
	if got := b.count(fmt.Sprintf("set %d model", r.lit.id)); got != len(sceneEntries) {
		t.Errorf("Expected one model upload per entry, got %d", got)
	}
	if got := b.count(fmt.Sprintf("set %d model", r.lamp.id)); got != 2 {
		t.Errorf("Expected one model upload per lamp, got %d", got)
	}

	// entries are bound in table order on their own units
	var binds []string
	for _, c := range b.calls {
		if strings.HasPrefix(c, "bindTexture") {
			binds = append(binds, c)
		}
	}
	if len(binds) != len(sceneEntries) {
		t.Fatalf("Expected %d texture binds, got %d", len(sceneEntries), len(binds))
	}
	for i, object := range r.scene.objects {
		if want := fmt.Sprintf("bindTexture %d %d", i, object.texture.ID); binds[i] != want {
			t.Errorf("Expected %q, got %q", want, binds[i])
		}
	}

	// 5 plane/cube draws, 2 cylinders with 3 draws each, 2 lamps
	if got := b.countPrefix("draw"); got != 5*1+2*3+2 {
		t.Errorf("Expected 13 draws, got %d", got)
	}
	if last := b.calls[len(b.calls)-1]; !strings.HasPrefix(last, "draw") {
		t.Errorf("Expected a lamp draw last, got %s", last)
	}
}

func TestRenderUploadsSceneState(t *testing.T) {
	r, b, _ := newTestRenderer(t)

	camera := NewDefaultCameraAtPosition(mgl32.Vec3{1, 2, 3})
	r.render(camera, orthographic, 2)

	lit := b.uniforms[r.lit.id]
	if got := lit["lightPos"]; got != (mgl32.Vec3{3, 8, 8}) {
		t.Errorf("Expected lightPos {3,8,8}, got %v", got)
	}
	if got := lit["viewPosition"]; got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected viewPosition {1,2,3}, got %v", got)
	}
	if got := lit["projection"]; got != mgl32.Ortho(-5, 5, -5, 5, 0.1, 100) {
		t.Errorf("Expected the orthographic projection, got %v", got)
	}
	// last entry drawn leaves its own state behind
	last := sceneEntries[len(sceneEntries)-1]
	if got := lit["uTexture"]; got != int32(last.unit) {
		t.Errorf("Expected uTexture %d, got %v", last.unit, got)
	}
	if got := lit["uvScale"]; got != last.uvScale {
		t.Errorf("Expected uvScale %v, got %v", last.uvScale, got)
	}

	lamp := b.uniforms[r.lamp.id]
	if got := lamp["view"]; got != camera.getViewMatrix() {
		t.Errorf("Expected the camera view on the lamp program, got %v", got)
	}
	if got := lamp["model"]; got != mgl32.Translate3D(-3, 8, 8) {
		t.Errorf("Expected the mirrored lamp drawn last, got %v", got)
	}
}
