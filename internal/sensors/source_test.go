package sensors

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/errors"
)

func TestNewLocalSourceDefaults(t *testing.T) {
	s := NewLocalSource("")
	assert.Equal(t, DefaultCommand, s.Describe())

	s = NewLocalSource("sensors -A")
	assert.Equal(t, "sensors -A", s.Describe())
}

func TestLocalSourceCapture(t *testing.T) {
	s := NewLocalSource("echo 'Core 0:        +45.0°C'")

	raw, err := s.Capture(context.Background())
	require.NoError(t, err)
	assert.Contains(t, raw, "Core 0")

	snap := Parse(raw)
	assert.Equal(t, 45.0, snap.CPUTemps["Core 0"])
}

func TestLocalSourceCaptureFailure(t *testing.T) {
	s := NewLocalSource("exit 3")

	_, err := s.Capture(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSensors))
}

func TestLocalSourceCaptureContextCancelled(t *testing.T) {
	s := NewLocalSource("sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Capture(ctx)
	require.Error(t, err)
}

func TestNewSSHSourceDefaults(t *testing.T) {
	s := NewSSHSource("gpubox", "", 0)
	assert.Equal(t, "gpubox: sensors", s.Describe())

	// Close without a connection is a no-op.
	s.Close()
}

func TestSSHSourceDescribe(t *testing.T) {
	s := NewSSHSource("user@gpubox", "sensors -A", time.Second)
	assert.Equal(t, "user@gpubox: sensors -A", s.Describe())
}

func TestSSHSourceConcurrentCaptures(t *testing.T) {
	// Captures are serialized on the source, so overlapping callers can
	// never race each other for the connection. A cancelled context makes
	// each dial attempt fail immediately.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSSHSource("198.51.100.7", "sensors", 50*time.Millisecond)
	defer s.Close()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Capture(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.Error(t, err)
	}
	assert.Nil(t, s.client)
}
