package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func redirect(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		SetLevel(Notice)
		SetSink(os.Stderr)
	})
	return &buf
}

func TestSinkAndLevel(t *testing.T) {
	buf := redirect(t)
	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden")
	logger.Errorf("ERROR::SHADER::%s::COMPILATION_FAILED", "VERTEX")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ERROR::SHADER::VERTEX::COMPILATION_FAILED")
	assert.Contains(t, buf.String(), "[test]")

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetSinkKeepsLevel(t *testing.T) {
	redirect(t)
	SetLevel(Error)

	var other bytes.Buffer
	SetSink(&other)
	New("test").Warning("dropped")
	assert.Empty(t, other.String())
	assert.False(t, Enabled(Warning))
	assert.True(t, Enabled(Error))
}

func TestEnabled(t *testing.T) {
	redirect(t)

	SetLevel(Notice)
	assert.False(t, Enabled(Debug))
	assert.True(t, Enabled(Notice))

	SetLevel(Level(42))
	assert.True(t, Enabled(Notice), "unknown level leaves verbosity untouched")
	assert.False(t, Enabled(Level(42)))
}
