package main

// viewer is the per-frame state the loop mutates: camera, input edges and
// the active projection.
type viewer struct {
	camera     *Camera
	input      *inputState
	mouse      *mouseTracker
	projection projectionMode
	// called after every projection change, may be nil
	onToggle func(projectionMode)
}

func newViewer(camera *Camera) *viewer {
	return &viewer{
		camera:     camera,
		input:      newInputState(),
		mouse:      newMouseTracker(),
		projection: perspective,
	}
}

var movementActions = []struct {
	action    action
	direction CameraMovement
}{
	{actionMoveForward, FORWARD},
	{actionMoveBackward, BACKWARD},
	{actionMoveLeft, LEFT},
	{actionMoveRight, RIGHT},
	{actionMoveUp, UP},
	{actionMoveDown, DOWN},
}

// update applies one frame of input. It returns true when the viewer should close.
func (v *viewer) update(keys keyPoller, deltaTime float32) bool {
	v.input.poll(keys)
	if v.input.held(actionQuit) || v.input.pressed(actionQuit) {
		return true
	}

	for _, m := range movementActions {
		if v.input.held(m.action) {
			v.camera.processKeyboard(m.direction, deltaTime)
		}
	}

	if v.input.pressed(actionToggleProjection) {
		v.projection = v.projection.toggle()
		if v.onToggle != nil {
			v.onToggle(v.projection)
		}
	}

	xOffset, yOffset, scroll := v.mouse.take()
	if xOffset != 0 || yOffset != 0 {
		v.camera.processMouseMovement(xOffset, yOffset)
	}
	if scroll != 0 {
		v.camera.processMouseScroll(scroll)
	}
	return false
}
