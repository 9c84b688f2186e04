package ui

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput collects spinner writes behind a mutex since the animate
// goroutine renders concurrently.
type captureOutput struct {
	mu    sync.Mutex
	parts []string
}

func (c *captureOutput) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts = append(c.parts, s)
}

func (c *captureOutput) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.parts, "")
}

func TestSpinnerSuccess(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Testing connection")
	s.SetOutput(out.write)

	s.Start()
	s.Success()

	result := out.String()
	assert.Contains(t, result, "Testing connection")
	assert.Contains(t, result, SymbolSuccess)
}

func TestSpinnerFail(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Testing connection")
	s.SetOutput(out.write)

	s.Start()
	s.Fail()

	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinnerFinishWithoutStart(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("idle")
	s.SetOutput(out.write)

	// Resolving a never-started spinner still prints the final line.
	s.Success()
	assert.Contains(t, out.String(), SymbolSuccess)
}

func TestSpinnerDoubleStart(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("once")
	s.SetOutput(out.write)

	s.Start()
	s.Start()
	s.Fail()

	assert.Contains(t, out.String(), SymbolFail)
}
