package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// vec3Near compares component-wise against an absolute tolerance, so a
// zero component accepts float32 rounding noise.
func vec3Near(got, want mgl32.Vec3, eps float32) bool {
	diff := got.Sub(want)
	for i := range diff {
		if math.Abs(float64(diff[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func mat4Near(got, want mgl32.Mat4, eps float32) bool {
	diff := got.Sub(want)
	for i := range diff {
		if math.Abs(float64(diff[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func TestCameraDefaults(t *testing.T) {
	c := NewDefaultCameraAtPosition(initialCameraPosition)

	if c.Position() != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Expected position {0,0,5}, got %v", c.Position())
	}
	if c.Zoom() != 45 {
		t.Errorf("Expected zoom 45, got %f", c.Zoom())
	}
	// yaw -90 looks down -z
	if !vec3Near(c.front, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Expected front {0,0,-1}, got %v", c.front)
	}
	if !vec3Near(c.right, mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Expected right {1,0,0}, got %v", c.right)
	}
}

func TestCameraPitchStaysClamped(t *testing.T) {
	c := NewDefaultCameraAtPosition(initialCameraPosition)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		c.processMouseMovement(rng.Float32()*2000-1000, rng.Float32()*2000-1000)
		if c.pitch < -89 || c.pitch > 89 {
			t.Fatalf("step %d: pitch %f outside [-89, 89]", i, c.pitch)
		}
	}

	c.processMouseMovement(0, 1e6)
	if c.pitch != 89 {
		t.Errorf("Expected pitch 89 after a huge upward delta, got %f", c.pitch)
	}
	c.processMouseMovement(0, -1e6)
	if c.pitch != -89 {
		t.Errorf("Expected pitch -89 after a huge downward delta, got %f", c.pitch)
	}
}

func TestNewCameraClampsPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, -90, 120)
	if c.pitch != 89 {
		t.Errorf("Expected pitch 89, got %f", c.pitch)
	}
}

func TestCameraZoomStaysClamped(t *testing.T) {
	tests := []struct {
		name    string
		offsets []float32
		want    float32
	}{
		{"no scroll", nil, 45},
		{"zoom in", []float32{10}, 35},
		{"zoom past min", []float32{10, 30, 50}, 1},
		{"zoom out past max", []float32{-100}, 45},
		{"in then out", []float32{44, -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefaultCameraAtPosition(initialCameraPosition)
			for _, y := range tt.offsets {
				c.processMouseScroll(y)
				if c.Zoom() < 1 || c.Zoom() > 45 {
					t.Fatalf("zoom %f outside [1, 45]", c.Zoom())
				}
			}
			if c.Zoom() != tt.want {
				t.Errorf("Expected zoom %f, got %f", tt.want, c.Zoom())
			}
		})
	}
}

func TestCameraKeyboardMovement(t *testing.T) {
	tests := []struct {
		direction CameraMovement
		want      mgl32.Vec3
	}{
		{FORWARD, mgl32.Vec3{0, 0, 4.75}},
		{BACKWARD, mgl32.Vec3{0, 0, 5.25}},
		{LEFT, mgl32.Vec3{-0.25, 0, 5}},
		{RIGHT, mgl32.Vec3{0.25, 0, 5}},
		{UP, mgl32.Vec3{0, 0.25, 5}},
		{DOWN, mgl32.Vec3{0, -0.25, 5}},
	}

	for _, tt := range tests {
		c := NewDefaultCameraAtPosition(initialCameraPosition)
		// speed 2.5 for a tenth of a second
		c.processKeyboard(tt.direction, 0.1)
		if !vec3Near(c.Position(), tt.want, 1e-5) {
			t.Errorf("direction %d: expected %v, got %v", tt.direction, tt.want, c.Position())
		}
	}
}

func TestCameraViewMatrixIsPure(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3}, -60, 15)

	first := c.getViewMatrix()
	for i := 0; i < 100; i++ {
		if got := c.getViewMatrix(); got != first {
			t.Fatalf("call %d: view matrix changed without a state change", i)
		}
	}
}

func TestCameraViewMatrixMatchesLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3}, -60, 15)

	target := c.position.Add(c.front)
	want := mgl32.LookAtV(c.position, target, c.up)
	if got := c.getViewMatrix(); !mat4Near(got, want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
