package main

import "github.com/go-gl/glfw/v3.3/glfw"

// action is a logical viewer command, independent of the physical key.
type action int

const (
	actionMoveForward action = iota
	actionMoveBackward
	actionMoveLeft
	actionMoveRight
	actionMoveUp
	actionMoveDown
	actionToggleProjection
	actionQuit
	actionCount
)

var defaultKeyBindings = map[glfw.Key]action{
	glfw.KeyW:      actionMoveForward,
	glfw.KeyS:      actionMoveBackward,
	glfw.KeyA:      actionMoveLeft,
	glfw.KeyD:      actionMoveRight,
	glfw.KeyE:      actionMoveUp,
	glfw.KeyQ:      actionMoveDown,
	glfw.KeyP:      actionToggleProjection,
	glfw.KeyEscape: actionQuit,
}

// keyPoller reports the last known state of a key. *glfw.Window satisfies it.
type keyPoller interface {
	GetKey(key glfw.Key) glfw.Action
}

// inputState polls bound keys once per frame and keeps the previous frame
// around for edge detection. Press events delivered between polls are latched
// so a tap shorter than a frame still counts.
type inputState struct {
	bindings     map[glfw.Key]action
	currentState [actionCount]bool
	prevState    [actionCount]bool
	// presses reported by keyEvent since the last poll
	pendingPress [actionCount]bool
	// pendingPress as of the last poll
	latched [actionCount]bool
}

func newInputState() *inputState {
	return &inputState{bindings: defaultKeyBindings}
}

// poll samples every bound key. Call once per frame before querying.
func (in *inputState) poll(keys keyPoller) {
	in.prevState = in.currentState
	in.currentState = [actionCount]bool{}
	in.latched = in.pendingPress
	in.pendingPress = [actionCount]bool{}
	for key, a := range in.bindings {
		if keys.GetKey(key) == glfw.Press {
			in.currentState[a] = true
		}
	}
}

// held reports whether the action's key is down this frame.
func (in *inputState) held(a action) bool {
	return in.currentState[a]
}

// pressed reports a released-to-pressed transition since the previous poll.
func (in *inputState) pressed(a action) bool {
	return in.currentState[a] && !in.prevState[a] || in.latched[a]
}

// keyEvent records a key press reported by the window's key callback.
func (in *inputState) keyEvent(key glfw.Key, act glfw.Action) {
	if act != glfw.Press {
		return
	}
	if a, ok := in.bindings[key]; ok {
		in.pendingPress[a] = true
	}
}

// mouseTracker turns absolute cursor positions into look offsets. The first
// reported position only seeds the tracker so the view does not jump.
type mouseTracker struct {
	firstMouse   bool
	lastX, lastY float64
	pendingX     float64
	pendingY     float64
	pendingZoom  float64
}

func newMouseTracker() *mouseTracker {
	return &mouseTracker{firstMouse: true}
}

func (m *mouseTracker) cursorMoved(xPos, yPos float64) {
	if m.firstMouse {
		m.lastX, m.lastY = xPos, yPos
		m.firstMouse = false
		return
	}
	m.pendingX += xPos - m.lastX
	// reversed since y-coordinates go from bottom to top
	m.pendingY += m.lastY - yPos
	m.lastX, m.lastY = xPos, yPos
}

func (m *mouseTracker) scrolled(yOffset float64) {
	m.pendingZoom += yOffset
}

// take returns and resets the offsets accumulated since the last call.
func (m *mouseTracker) take() (xOffset, yOffset, scroll float32) {
	xOffset, yOffset, scroll = float32(m.pendingX), float32(m.pendingY), float32(m.pendingZoom)
	m.pendingX, m.pendingY, m.pendingZoom = 0, 0, 0
	return xOffset, yOffset, scroll
}
