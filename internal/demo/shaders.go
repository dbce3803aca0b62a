package demo

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertex shader: passes the per-vertex color through and translates every
// position by the offset uniform.
const vertexShaderSrc = `#version 330

in vec2 position;
in vec3 in_Color;

uniform vec2 offset;

out vec3 pass_Color;

void main() {
    pass_Color = in_Color;
    gl_Position = vec4(position + offset, 0.0, 1.0);
}
` + "\x00"

// Fragment shader: interpolated vertex color, fully opaque.
const fragmentShaderSrc = `#version 330

in vec3 pass_Color;
out vec4 outputColor;

void main() {
    outputColor = vec4(pass_Color, 1.0);
}
` + "\x00"

func shaderStageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", shaderStageName(shaderType), strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

// linkProgram compiles both stages and links them. The shader objects are
// detached and deleted whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

// Program is the linked shader program together with the locations the
// renderer feeds every frame.
type Program struct {
	ID        uint32
	aPosition uint32
	aColor    uint32
	uOffset   int32
}

func newProgram() (*Program, error) {
	id, err := linkProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}

	position := gl.GetAttribLocation(id, gl.Str("position\x00"))
	color := gl.GetAttribLocation(id, gl.Str("in_Color\x00"))
	offset := gl.GetUniformLocation(id, gl.Str("offset\x00"))
	if position < 0 || color < 0 || offset < 0 {
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("program %d: missing location (position=%d in_Color=%d offset=%d)", id, position, color, offset)
	}

	return &Program{
		ID:        id,
		aPosition: uint32(position),
		aColor:    uint32(color),
		uOffset:   offset,
	}, nil
}
