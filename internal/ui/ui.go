// Package ui provides small terminal output helpers for non-dashboard
// commands: status symbols, semantic colors, and a line spinner.
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolPending = "○"
)

// Semantic colors using ANSI codes for terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	spinnerStyle = lipgloss.NewStyle().Foreground(ColorWarning)
)

// spinnerFrames are a braille scan pattern.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerFrameInterval = 100 * time.Millisecond

// Spinner displays an animated status indicator with a label on one
// terminal line, resolved to a ✓ or ✗ line when done.
type Spinner struct {
	mu       sync.Mutex
	label    string
	frame    int
	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
	output   func(string)
}

// NewSpinner creates a spinner with the given label. Output defaults to
// fmt.Print; use SetOutput to redirect in tests.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		label:  label,
		output: func(s string) { fmt.Print(s) },
	}
}

// SetOutput sets the output function for the spinner.
func (s *Spinner) SetOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = fn
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.renderFrame()
	go s.animate()
}

// Success stops the spinner and prints the label with a success symbol.
func (s *Spinner) Success() {
	s.finish(successStyle.Render(SymbolSuccess))
}

// Fail stops the spinner and prints the label with a failure symbol.
func (s *Spinner) Fail() {
	s.finish(errorStyle.Render(SymbolFail))
}

func (s *Spinner) finish(symbol string) {
	s.stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output(fmt.Sprintf("\r\033[K%s %s\n", symbol, s.label))
}

func (s *Spinner) stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	done := s.doneChan
	s.mu.Unlock()

	<-done
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(spinnerFrameInterval)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame++
			s.mu.Unlock()
			s.renderFrame()
		}
	}
}

func (s *Spinner) renderFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	s.output(fmt.Sprintf("\r\033[K%s %s", spinnerStyle.Render(frame), s.label))
}
