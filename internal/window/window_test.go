package window

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"first-rect/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsInvalidSettings(t *testing.T) {
	if os.Getenv("FIRST_RECT_GL_TESTS") != "1" {
		t.Skip("set FIRST_RECT_GL_TESTS=1 to run tests against a real GL context")
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	require.NoError(t, Initialize())
	defer Terminate()

	tests := []struct {
		name   string
		mutate func(*config.Settings)
		cause  error
	}{
		{"zero width", func(s *config.Settings) { s.Width = 0 }, config.ErrInvalidSize},
		{"negative height", func(s *config.Settings) { s.Height = -600 }, config.ErrInvalidSize},
		{"old context", func(s *config.Settings) { s.GLMajor, s.GLMinor = 2, 1 }, config.ErrInvalidVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			tt.mutate(&s)

			w, err := Create(s)
			assert.Nil(t, w)
			assert.True(t, errors.Is(err, ErrWindowCreationFailed), "%v", err)
			assert.Contains(t, err.Error(), tt.cause.Error())
		})
	}
}

func TestDestroyIdempotent(t *testing.T) {
	w := &Window{}
	assert.NotPanics(t, func() {
		w.Destroy()
		w.Destroy()
	})
}
