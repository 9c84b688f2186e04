package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("reading %s", "coretemp")
	l.Info("parsed %d channels", 4)
	l.Warn("capture failed")
	l.Error("bad %s", "line")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "reading coretemp", l.Messages[0].Message)
	assert.Equal(t, "parsed 4 channels", l.Messages[1].Message)

	assert.True(t, l.HasLevel("debug"))
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoop(t *testing.T) {
	l := Noop()

	// Should not panic and produce no observable output
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("hello")
	assert.True(t, buf.HasLevel("info"))
}
