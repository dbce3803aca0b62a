package demo

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Topology is the primitive type of a draw call.
type Topology uint32

const Triangles Topology = gl.TRIANGLES

// DrawCall describes one DrawArrays invocation with the offset uniform that
// goes with it.
type DrawCall struct {
	Topology Topology
	First    int32
	Count    int32
	Offset   [2]float32
}

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer owns every GL object the demo creates: the program, the position
// and color buffers, and the vertex array that ties them together.
type Renderer struct {
	prog *Program

	positionVBO uint32
	colorVBO    uint32
	vao         uint32
}

func NewRenderer() (*Renderer, error) {
	prog, err := newProgram()
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData)*floatSize, gl.Ptr(&vertexData[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(colorData)*floatSize, gl.Ptr(&colorData[0]), gl.STATIC_DRAW)

	// The VAO records which buffer feeds which attribute.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.EnableVertexAttribArray(prog.aPosition)
	gl.VertexAttribPointer(prog.aPosition, PositionSize, gl.FLOAT, false, 0, glOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.EnableVertexAttribArray(prog.aColor)
	gl.VertexAttribPointer(prog.aColor, ColorSize, gl.FLOAT, false, 0, glOffset(0))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Destroy()
		return nil, fmt.Errorf("vertex setup: gl error 0x%x", code)
	}
	return r, nil
}

// Handles reports the GL names of the program, buffers and vertex array.
func (r *Renderer) Handles() (program, positionVBO, colorVBO, vao uint32) {
	return r.prog.ID, r.positionVBO, r.colorVBO, r.vao
}

func (r *Renderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, id := range []*uint32{&r.positionVBO, &r.colorVBO} {
		if *id != 0 {
			gl.DeleteBuffers(1, id)
			*id = 0
		}
	}
	if r.prog != nil && r.prog.ID != 0 {
		gl.DeleteProgram(r.prog.ID)
		r.prog.ID = 0
	}
}

func (r *Renderer) Clear(color [4]float32) {
	gl.Viewport(0, 0, WindowWidth, WindowHeight)
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) Draw(dc DrawCall) {
	gl.UseProgram(r.prog.ID)
	gl.Uniform2f(r.prog.uOffset, dc.Offset[0], dc.Offset[1])
	gl.BindVertexArray(r.vao)

	gl.DrawArrays(uint32(dc.Topology), dc.First, dc.Count)

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
