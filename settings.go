package main

import "github.com/go-gl/mathgl/mgl32"

// Window
const (
	windowTitle         = "Retro Desk"
	initialWindowWidth  = 800
	initialWindowHeight = 600
)

// Projection volume shared by both projection modes.
const (
	nearPlane       = 0.1
	farPlane        = 100.0
	orthoHalfExtent = 5.0
)

// Camera defaults
const (
	defaultYaw         = -90.0
	defaultPitch       = 0.0
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	defaultZoom        = 45.0
	minZoom            = 1.0
	maxZoom            = 45.0
	maxPitch           = 89.0
)

// Resource locations, relative to the working directory.
const (
	textureDir    = "resources/textures"
	toggleSoundFx = "resources/sounds/toggle.qoa"
)

var (
	clearColor            = mgl32.Vec4{0.0, 0.0, 0.0, 1.0}
	initialCameraPosition = mgl32.Vec3{0.0, 0.0, 5.0}
)
