package graphics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertex positions arrive at location 0 and pass through unchanged
const VertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const FragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`

// infoLogSize caps how much of a compile or link log is retrieved
const infoLogSize = 512

// Stage is a programmable pipeline stage
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case FragmentStage:
		return "FRAGMENT"
	}
	return fmt.Sprintf("STAGE(0x%x)", uint32(s))
}

// CompileError carries the driver's info log for a stage that failed to compile
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s", e.Stage, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s", e.Log)
}

// Shader is a compiled stage. It only lives until it is linked.
type Shader struct {
	ID    uint32
	Stage Stage
}

// CompileStage compiles source as the given stage.
// The shader is returned even when compilation fails so the caller can decide whether to continue.
func CompileStage(stage Stage, source string) (*Shader, error) {
	s := &Shader{ID: gl.CreateShader(uint32(stage)), Stage: stage}

	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(s.ID, 1, csources, nil)
	free()
	gl.CompileShader(s.ID)

	var status int32
	gl.GetShaderiv(s.ID, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		buf := make([]byte, infoLogSize)
		gl.GetShaderInfoLog(s.ID, infoLogSize, &length, &buf[0])
		return s, &CompileError{Stage: stage, Log: infoLog(buf, length)}
	}
	return s, nil
}

// Delete releases the shader object. Safe to call more than once.
func (s *Shader) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	gl.DeleteShader(s.ID)
	s.ID = 0
}

// Program is a linked vertex + fragment pipeline
type Program struct {
	ID uint32
}

// LinkProgram links both stages into a new program.
// The stages are deleted whatever the outcome; the program holds its own copy.
func LinkProgram(vertex, fragment *Shader) (*Program, error) {
	defer vertex.Delete()
	defer fragment.Delete()

	p := &Program{ID: gl.CreateProgram()}
	gl.AttachShader(p.ID, vertex.ID)
	gl.AttachShader(p.ID, fragment.ID)
	gl.LinkProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		buf := make([]byte, infoLogSize)
		gl.GetProgramInfoLog(p.ID, infoLogSize, &length, &buf[0])
		return p, &LinkError{Log: infoLog(buf, length)}
	}
	return p, nil
}

// BuildProgram compiles both sources and links them.
// A usable (possibly broken) program is always returned along with every diagnostic produced.
func BuildProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	var errs []error

	vs, err := CompileStage(VertexStage, vertexSrc)
	if err != nil {
		errs = append(errs, err)
	}
	fs, err := CompileStage(FragmentStage, fragmentSrc)
	if err != nil {
		errs = append(errs, err)
	}
	p, err := LinkProgram(vs, fs)
	if err != nil {
		errs = append(errs, err)
	}
	return p, errors.Join(errs...)
}

// Use makes the program current for subsequent draws
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program. Safe to call more than once.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func terminate(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

// infoLog converts the first length bytes of an info log buffer into a string
func infoLog(buf []byte, length int32) string {
	n := int(length)
	if n < 0 || n > len(buf) {
		n = len(buf)
	}
	out := string(buf[:n])
	if i := strings.IndexByte(out, 0); i >= 0 {
		out = out[:i]
	}
	return strings.TrimRight(out, "\n")
}
