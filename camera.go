package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraMovement int

const (
	FORWARD CameraMovement = iota
	BACKWARD
	LEFT
	RIGHT
	UP
	DOWN
)

// Camera provides a fly camera to navigate the desk scene
type Camera struct {
	// camera attributes
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3
	// euler angles, in degrees
	yaw, pitch float32
	// camera options
	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

func newCamera() *Camera {
	c := Camera{
		position:         mgl32.Vec3{0.0, 0.0, 0.0},
		worldUp:          mgl32.Vec3{0.0, 1.0, 0.0},
		up:               mgl32.Vec3{0.0, 1.0, 0.0},
		yaw:              defaultYaw,
		pitch:            defaultPitch,
		zoom:             defaultZoom,
		mouseSensitivity: defaultSensitivity,
		movementSpeed:    defaultSpeed,
	}
	return &c
}

func NewDefaultCameraAtPosition(position mgl32.Vec3) *Camera {
	c := newCamera()

	c.position = position

	c.updateVectors()
	return c
}

func NewCamera(position mgl32.Vec3, yaw float32, pitch float32) *Camera {
	c := newCamera()

	c.position = position
	c.yaw = yaw
	c.pitch = clampPitch(pitch)

	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Zoom is the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

func (c *Camera) processKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case FORWARD:
		c.position = c.position.Add(c.front.Mul(velocity))
	case BACKWARD:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case LEFT:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case RIGHT:
		c.position = c.position.Add(c.right.Mul(velocity))
	case UP:
		c.position = c.position.Add(c.up.Mul(velocity))
	case DOWN:
		c.position = c.position.Sub(c.up.Mul(velocity))
	}
}

func (c *Camera) processMouseMovement(xOffset, yOffset float32) {
	xOffset *= c.mouseSensitivity
	yOffset *= c.mouseSensitivity

	c.yaw += xOffset
	// looking straight up or down makes front parallel to worldUp and the cross products collapse
	c.pitch = clampPitch(c.pitch + yOffset)

	c.updateVectors()
}

func (c *Camera) processMouseScroll(yOffset float32) {
	c.zoom -= yOffset
	if c.zoom < minZoom {
		c.zoom = minZoom
	}
	if c.zoom > maxZoom {
		c.zoom = maxZoom
	}
}

func (c *Camera) getViewMatrix() mgl32.Mat4 {
	// The lookAt matrix makes the camera viewpoint look at the given target
	target := c.position.Add(c.front)

	return lookAt(
		c.position,
		target,
		c.up,
	)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	// calculate new front vector
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	// re-calc right and up too
	// normalize the vectors, because their length gets closer to 0 the more you look up or down which results in slower movement.
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(pitch float32) float32 {
	if pitch > maxPitch {
		return maxPitch
	}
	if pitch < -maxPitch {
		return -maxPitch
	}
	return pitch
}

func lookAt(cameraPosition, target, cameraUp mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(cameraPosition).Normalize()
	right := forward.Cross(cameraUp.Normalize()).Normalize()
	up := right.Cross(forward)
	rotation := mgl32.Mat4{
		right.X(), up.X(), -forward.X(), 0,
		right.Y(), up.Y(), -forward.Y(), 0,
		right.Z(), up.Z(), -forward.Z(), 0,
		0, 0, 0, 1,
	}
	translation := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		-cameraPosition.X(), -cameraPosition.Y(), -cameraPosition.Z(), 1,
	}

	return rotation.Mul4(translation)
}
