package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh names
const (
	planeMesh    = "plane"
	cubeMesh     = "cube"
	cylinderMesh = "cylinder"
	lampMesh     = "lamp"
)

// rotation is an angle in degrees about an axis; the axis need not be normalized.
type rotation struct {
	degrees float32
	axis    mgl32.Vec3
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// transform places a mesh in the world. Rotations compose left to right,
// so the last one listed is applied to the mesh first.
type transform struct {
	scale       mgl32.Vec3
	rotations   []rotation
	translation mgl32.Vec3
}

// model returns T·R·S: scale in local space, then rotate, then translate.
func (t transform) model() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.translation.X(), t.translation.Y(), t.translation.Z())
	scale := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
	return translation.Mul4(t.rotation()).Mul4(scale)
}

func (t transform) rotation() mgl32.Mat4 {
	rotation := mgl32.Ident4()
	for _, r := range t.rotations {
		if r.degrees == 0 {
			continue
		}
		rotation = rotation.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.degrees), r.axis.Normalize()))
	}
	return rotation
}

type textureSpec struct {
	name string
	file string
	wrap int32
}

// drawEntry is one static object of the desk scene.
type drawEntry struct {
	name      string
	mesh      string
	texture   string
	unit      uint32
	transform transform
	uvScale   mgl32.Vec2
}

var sceneTextures = []textureSpec{
	{name: "wood", file: "wood.jpg", wrap: gl.REPEAT},
	{name: "ps1", file: "ps1.png", wrap: gl.REPEAT},
	{name: "ps1Logo", file: "logo.jpg", wrap: gl.MIRRORED_REPEAT},
	{name: "gameBoy", file: "gb5.png", wrap: gl.REPEAT},
	{name: "donkeyKong", file: "dk.jpg", wrap: gl.REPEAT},
	{name: "redAlert", file: "ra.png", wrap: gl.REPEAT},
	{name: "spiderman", file: "spiderman2.png", wrap: gl.REPEAT},
}

var sceneEntries = []drawEntry{
	{
		name: "floor", mesh: planeMesh, texture: "wood", unit: 0,
		transform: transform{
			scale:       mgl32.Vec3{20, 20, 20},
			translation: mgl32.Vec3{0, -0.5, 0},
		},
		uvScale: mgl32.Vec2{4.24305, 4.24305},
	},
	{
		name: "console", mesh: cubeMesh, texture: "ps1", unit: 1,
		transform: transform{
			scale:       mgl32.Vec3{2.8, 2.0, 0.4},
			rotations:   []rotation{{-90, axisX}, {10, axisZ}},
			translation: mgl32.Vec3{0, -0.3, 0},
		},
		uvScale: mgl32.Vec2{0.986171, 0.986171},
	},
	{
		name: "consoleLid", mesh: cylinderMesh, texture: "ps1Logo", unit: 2,
		transform: transform{
			scale:       mgl32.Vec3{0.9, 0.05, 0.9},
			rotations:   []rotation{{12, axisY}},
			translation: mgl32.Vec3{0, -0.1, 0},
		},
		uvScale: mgl32.Vec2{1.00998, 1.00998},
	},
	{
		name: "gameBoy", mesh: cubeMesh, texture: "gameBoy", unit: 3,
		transform: transform{
			scale:       mgl32.Vec3{0.95, 1.5, 0.2},
			rotations:   []rotation{{-90, axisX}, {40, axisZ}},
			translation: mgl32.Vec3{-1.4, -0.4, 2.1},
		},
		uvScale: mgl32.Vec2{1.02017, 1.02017},
	},
	{
		name: "donkeyKong", mesh: cubeMesh, texture: "donkeyKong", unit: 4,
		transform: transform{
			scale:       mgl32.Vec3{0.51, 0.05, 0.61},
			rotations:   []rotation{{20, axisY}},
			translation: mgl32.Vec3{-0.25, -0.46, 1.65},
		},
		uvScale: mgl32.Vec2{0.97998, 0.97998},
	},
	{
		name: "redAlert", mesh: cubeMesh, texture: "redAlert", unit: 5,
		transform: transform{
			scale:       mgl32.Vec3{1.50, 0.15, 1.37},
			rotations:   []rotation{{355, axisY}},
			translation: mgl32.Vec3{1.7, -0.42, 1.65},
		},
		uvScale: mgl32.Vec2{0.987171, 0.987171},
	},
	{
		name: "spiderman", mesh: cylinderMesh, texture: "spiderman", unit: 6,
		transform: transform{
			scale:       mgl32.Vec3{0.58, 0.01, 0.58},
			rotations:   []rotation{{93, axisY}},
			translation: mgl32.Vec3{0.13, -0.5, 2.7},
		},
		uvScale: mgl32.Vec2{0.989171, 0.989171},
	},
}

var (
	objectColor = mgl32.Vec3{1, 1, 1}
	sceneLight  = pointLight{
		position: mgl32.Vec3{3, 8, 8},
		color:    mgl32.Vec3{1, 1, 1},
	}
	lampScale = mgl32.Vec3{1, 1, 1}
)

// lightMarkers are the positions of the lamp cubes: the scene light and its
// mirror image across x=0. Only the first one lights the scene.
func lightMarkers() []mgl32.Vec3 {
	p := sceneLight.position
	return []mgl32.Vec3{p, {-p.X(), p.Y(), p.Z()}}
}

// pointLight is the single light that shades the lit program.
type pointLight struct {
	position mgl32.Vec3
	color    mgl32.Vec3
}

// sceneObject is a drawEntry resolved against loaded resources.
type sceneObject struct {
	drawEntry
	mesh    *Mesh
	texture *Texture
	model   mgl32.Mat4
}

// Scene is the immutable, ordered list of objects drawn every frame.
type Scene struct {
	objects []sceneObject
	light   pointLight
	lamps   []mgl32.Mat4
	lamp    *Mesh
}

// loadSceneResources builds the meshes and loads every texture the scene table names.
func loadSceneResources(res *resources, dir string) error {
	res.addMesh(planeMesh, planeVertices, planeIndices)
	res.addMesh(cubeMesh, cubeVertices, cubeIndices)
	cylinderVertices, cylinderDraws := cylinderGeometry()
	res.addMesh(cylinderMesh, cylinderVertices, nil, cylinderDraws...)
	res.addMesh(lampMesh, cubeVertices, cubeIndices)

	for _, spec := range sceneTextures {
		if _, err := res.loadTexture(spec.name, filepath.Join(dir, spec.file), spec.wrap); err != nil {
			return err
		}
	}
	return nil
}

// buildScene resolves entries against res and precomputes their model matrices.
func buildScene(res *resources, entries []drawEntry) (*Scene, error) {
	scene := &Scene{
		light: sceneLight,
		lamp:  res.mesh(lampMesh),
	}
	if scene.lamp == nil {
		return nil, fmt.Errorf("scene: missing mesh %q", lampMesh)
	}

	for _, entry := range entries {
		mesh := res.mesh(entry.mesh)
		if mesh == nil {
			return nil, fmt.Errorf("scene: %s: missing mesh %q", entry.name, entry.mesh)
		}
		texture := res.texture(entry.texture)
		if texture == nil {
			return nil, fmt.Errorf("scene: %s: missing texture %q", entry.name, entry.texture)
		}
		scene.objects = append(scene.objects, sceneObject{
			drawEntry: entry,
			mesh:      mesh,
			texture:   texture,
			model:     entry.transform.model(),
		})
	}

	for _, position := range lightMarkers() {
		model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
			Mul4(mgl32.Scale3D(lampScale.X(), lampScale.Y(), lampScale.Z()))
		scene.lamps = append(scene.lamps, model)
	}
	return scene, nil
}
