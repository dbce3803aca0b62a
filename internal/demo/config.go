package demo

// Window defaults. Same width and height keeps the window square, so the
// triangle is not stretched.
const (
	WindowWidth  = 600
	WindowHeight = 600
)

// Requested OpenGL context (core profile).
const (
	GLVersionMajor = 3
	GLVersionMinor = 3
)

// SimStep is the amount of simulated time (seconds) advanced every frame.
// It is constant and not derived from the wall clock.
const SimStep = 0.02

// ClearColor is the fixed background (opaque blue).
var ClearColor = [4]float32{0.0, 0.0, 1.0, 1.0}

// Geometry: one triangle, 2 floats per position and 3 per color.
const (
	VertexCount  = 3
	PositionSize = 2
	ColorSize    = 3
	floatSize    = 4
)

var vertexData = [VertexCount * PositionSize]float32{
	0.000, 0.500,
	-0.433, -0.250,
	0.433, -0.250,
}

var colorData = [VertexCount * ColorSize]float32{
	1.0, 0.0, 0.0,
	0.0, 1.0, 0.0,
	0.0, 0.0, 1.0,
}

// Initial simulation values. The offset starts off-centre so it is obvious
// the uniform is being applied.
var (
	initialOffset = [2]float32{-0.5, -0.5}
	initialColor  = [4]float32{1.0, 0.0, 0.0, 1.0}
)
