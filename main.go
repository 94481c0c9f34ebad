package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const toggleCue = "toggle"

// app owns the window and everything created against its GL context.
type app struct {
	window   *glfw.Window
	gl       *glBackend
	res      *resources
	viewer   *viewer
	renderer *frameRenderer
	sound    *soundPlayer
	// last valid framebuffer aspect ratio
	aspect float32
}

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Initialize GLFW, which is used to manage windows, user input, opengl contexts, and related
	// events.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	// Free resources used by GLFW when the program exits.
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// required on macOS for a core profile
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(initialWindowWidth, initialWindowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	// Load OS-specific OpenGL function pointers
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL: %w", err)
	}
	fmt.Printf("INFO: OpenGL version: %s\n", glVersion())

	a := &app{
		window: window,
		gl:     newGLBackend(),
		viewer: newViewer(NewDefaultCameraAtPosition(initialCameraPosition)),
		aspect: float32(initialWindowWidth) / float32(initialWindowHeight),
	}
	a.res = newResources(a.gl)
	defer a.res.release()

	if err := a.setup(); err != nil {
		return err
	}
	a.loop()
	return nil
}

// setup wires callbacks and creates every GPU object the scene needs.
func (a *app) setup() error {
	a.window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	a.window.SetKeyCallback(a.keyCallback)
	a.window.SetCursorPosCallback(a.cursorPosCallback)
	a.window.SetScrollCallback(a.scrollCallback)
	// tell GLFW to capture our mouse
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	width, height := a.window.GetFramebufferSize()
	a.framebufferSizeCallback(a.window, width, height)

	lit, err := a.res.loadShader("lit", "shaders/lit.vs", "shaders/lit.fs")
	if err != nil {
		return err
	}
	lamp, err := a.res.loadShader("lamp", "shaders/lamp.vs", "shaders/lamp.fs")
	if err != nil {
		return err
	}

	if err := loadSceneResources(a.res, textureDir); err != nil {
		return err
	}
	scene, err := buildScene(a.res, sceneEntries)
	if err != nil {
		return err
	}
	a.renderer = newFrameRenderer(a.gl, lit, lamp, scene, a.window)

	a.sound = loadSounds()
	a.viewer.onToggle = func(projectionMode) {
		a.sound.play(toggleCue)
	}
	return nil
}

// loadSounds returns nil when audio is unavailable; the viewer runs silent.
func loadSounds() *soundPlayer {
	sound, err := newSoundPlayer()
	if err != nil {
		log.Printf("audio disabled: %v", err)
		return nil
	}
	if err := sound.load(toggleCue, toggleSoundFx); err != nil {
		log.Printf("audio cue unavailable: %v", err)
	}
	return sound
}

func (a *app) loop() {
	var lastFrame float64
	for !a.window.ShouldClose() {
		currentFrame := glfw.GetTime()
		deltaTime := float32(currentFrame - lastFrame)
		lastFrame = currentFrame

		if a.viewer.update(a.window, deltaTime) {
			a.window.SetShouldClose(true)
		}

		a.renderer.render(a.viewer.camera, a.viewer.projection, a.aspect)
		// Check if events are triggered, update window state, and invoke any registered callbacks.
		glfw.PollEvents()
	}
}

// framebufferSizeCallback is called when the gl viewport is resized.
func (a *app) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	a.gl.viewport(width, height)
	// a minimised window reports zero height
	if height > 0 {
		a.aspect = float32(width) / float32(height)
	}
}

// keyCallback latches presses so taps shorter than a frame are not lost.
func (a *app) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.viewer.input.keyEvent(key, action)
}

func (a *app) cursorPosCallback(w *glfw.Window, xPos float64, yPos float64) {
	a.viewer.mouse.cursorMoved(xPos, yPos)
}

func (a *app) scrollCallback(w *glfw.Window, xOffset float64, yOffset float64) {
	a.viewer.mouse.scrolled(yOffset)
}
