package spincube

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrShaderLink    = errors.New("shader program linking failed")
)

// ShaderError carries the driver's info log for a failed compile or link.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "program"
	Log   string
	err   error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.err, strings.TrimSpace(e.Log))
}

func (e *ShaderError) Unwrap() error {
	return e.err
}

// infoLog converts a NUL-terminated GL log buffer to a string.
func infoLog(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &buf[0])
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: infoLog(buf), err: ErrShaderCompile}
	}

	return shader, nil
}

// linkProgram compiles both stages and links them. The shader objects are
// released once the program is linked.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
		gl.DeleteProgram(program)
		return 0, &ShaderError{Stage: "program", Log: infoLog(buf), err: ErrShaderLink}
	}

	return program, nil
}
