package main

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	planeVertices = []float32{
		// positions      // normals     // texture coords
		-1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0,
		1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0,
		1.0, 0.0, -1.0, 0.0, 1.0, 0.0, 1.0, 1.0,
		-1.0, 0.0, -1.0, 0.0, 1.0, 0.0, 0.0, 1.0,
	}
	planeIndices = []uint32{
		0, 1, 2,
		0, 3, 2,
	}

	// unit cube centred on the origin, four vertices per face so each face has its own normal
	cubeVertices = []float32{
		// back face
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
		// bottom face
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
		// left face
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
		// right face
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
		// top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
		// front face
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	}
	cubeIndices = []uint32{
		0, 1, 2, 0, 3, 2,
		4, 5, 6, 4, 7, 6,
		8, 9, 10, 8, 11, 10,
		12, 13, 14, 12, 15, 14,
		16, 17, 18, 16, 19, 18,
		20, 21, 22, 20, 23, 22,
	}
)

const cylinderSegments = 36

// cylinderGeometry builds a unit-radius cylinder of height 1 standing on y=0.
// The vertex buffer holds the bottom cap ring, the top cap ring, then the side
// wall as a strip; the returned draws address those three ranges.
func cylinderGeometry() ([]float32, []drawCall) {
	vertices := make([]float32, 0, (4*cylinderSegments+2)*floatsPerVertex)

	ring := func(y, normalY float32) {
		for i := 0; i < cylinderSegments; i++ {
			x, z := cylinderPoint(i)
			u := 0.5 + 0.5*z
			v := 0.5 + 0.5*x
			vertices = append(vertices, x, y, z, 0, normalY, 0, u, v)
		}
	}
	ring(0, -1)
	ring(1, 1)

	for i := 0; i <= cylinderSegments; i++ {
		x, z := cylinderPoint(i % cylinderSegments)
		u := float32(i) / cylinderSegments
		vertices = append(vertices,
			x, 1, z, x, 0, z, u, 1,
			x, 0, z, x, 0, z, u, 0,
		)
	}

	draws := []drawCall{
		{mode: gl.TRIANGLE_FAN, first: 0, count: cylinderSegments},
		{mode: gl.TRIANGLE_FAN, first: cylinderSegments, count: cylinderSegments},
		{mode: gl.TRIANGLE_STRIP, first: 2 * cylinderSegments, count: 2 * (cylinderSegments + 1)},
	}
	return vertices, draws
}

// cylinderPoint returns the x/z coordinates of ring point i, walking from +x towards -z.
func cylinderPoint(i int) (float32, float32) {
	theta := 2 * math.Pi * float64(i) / cylinderSegments
	return float32(math.Cos(theta)), float32(-math.Sin(theta))
}
