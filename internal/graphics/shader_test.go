package graphics

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderSources(t *testing.T) {
	for _, src := range []string{VertexShaderSource, FragmentShaderSource} {
		assert.True(t, strings.HasPrefix(src, "#version 330 core\n"))
		assert.NotContains(t, src, "\x00")
	}
	assert.Contains(t, VertexShaderSource, "layout (location = 0) in vec3 aPos;")
	assert.Contains(t, FragmentShaderSource, "vec4(1.0, 1.0, 1.0, 1.0)")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "VERTEX", VertexStage.String())
	assert.Equal(t, "FRAGMENT", FragmentStage.String())
	assert.Equal(t, "STAGE(0x1)", Stage(1).String())
}

func TestDiagnostics(t *testing.T) {
	err := &CompileError{Stage: FragmentStage, Log: "0:3(2): error: syntax error"}
	assert.Equal(t, "ERROR::SHADER::FRAGMENT::COMPILATION_FAILED\n0:3(2): error: syntax error", err.Error())

	link := &LinkError{Log: "no main"}
	joined := errors.Join(&CompileError{Stage: VertexStage, Log: "bad"}, link)
	assert.Contains(t, joined.Error(), "ERROR::SHADER::VERTEX::COMPILATION_FAILED")
	assert.Contains(t, joined.Error(), "ERROR::SHADER::PROGRAM::LINKING_FAILED")

	var le *LinkError
	require.ErrorAs(t, joined, &le)
	assert.Equal(t, "no main", le.Log)
}

func TestInfoLog(t *testing.T) {
	buf := make([]byte, infoLogSize)
	n := copy(buf, "0:1: error\n")
	assert.Equal(t, "0:1: error", infoLog(buf, int32(n)))

	// Drivers that report a length including the terminator
	assert.Equal(t, "0:1: error", infoLog(buf, int32(n+1)))

	// Out of range lengths fall back to the first terminator
	assert.Equal(t, "0:1: error", infoLog(buf, -1))
	assert.Equal(t, "0:1: error", infoLog(buf, infoLogSize*2))
	assert.Empty(t, infoLog(buf, 0))
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "abc\x00", terminate("abc"))
	assert.Equal(t, "abc\x00", terminate("abc\x00"))
}

func TestDeleteNilSafe(t *testing.T) {
	var s *Shader
	var p *Program
	assert.NotPanics(t, func() {
		s.Delete()
		p.Delete()
		(&Shader{}).Delete()
		(&Program{}).Delete()
	})
}
