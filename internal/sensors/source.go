package sensors

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/pkg/sshutil"
)

// DefaultCommand is the diagnostic utility invoked each tick.
const DefaultCommand = "sensors"

// Source supplies one complete raw text capture per tick. A failed capture
// is reported as an error; it is never a parse-time condition.
type Source interface {
	// Capture returns the full textual output of the diagnostic utility.
	Capture(ctx context.Context) (string, error)
	// Describe returns a short label for the source, for display.
	Describe() string
}

// LocalSource runs the sensors command on the local machine through the
// user's shell, so pipes and flags in a configured command work.
type LocalSource struct {
	command string
}

// NewLocalSource creates a local source. An empty command uses DefaultCommand.
func NewLocalSource(command string) *LocalSource {
	if command == "" {
		command = DefaultCommand
	}
	return &LocalSource{command: command}
}

// Capture runs the command and returns its stdout.
func (s *LocalSource) Capture(ctx context.Context) (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", s.command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
		return "", errors.WrapWithCode(err, errors.ErrSensors,
			fmt.Sprintf("Couldn't run '%s'", s.command),
			"Check lm-sensors is installed and 'sensors' works in your shell.")
	}

	return stdout.String(), nil
}

// Describe returns the command being run.
func (s *LocalSource) Describe() string {
	return s.command
}

// SSHSource runs the sensors command on a remote host over SSH. The
// connection is established lazily on the first capture and reused across
// ticks; a capture failure drops the connection so the next tick redials.
// Captures are serialized so a stalled dial or exec can never race a
// concurrent one for the connection.
type SSHSource struct {
	host    string
	command string
	timeout time.Duration

	mu     sync.Mutex
	client *sshutil.Client
}

// NewSSHSource creates a source that captures from the given host, which may
// be an SSH config alias, hostname, or user@host. An empty command uses
// DefaultCommand.
func NewSSHSource(host, command string, timeout time.Duration) *SSHSource {
	if command == "" {
		command = DefaultCommand
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &SSHSource{host: host, command: command, timeout: timeout}
}

// Capture runs the command on the remote host and returns its stdout.
func (s *SSHSource) Capture(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		client, err := sshutil.DialContext(ctx, s.host, s.timeout)
		if err != nil {
			return "", err
		}
		s.client = client
	}

	stdout, stderr, exitCode, err := s.client.Exec(ctx, s.command)
	if err != nil {
		// Connection likely broken; redial on the next tick.
		s.dropConnection()
		return "", err
	}
	if exitCode != 0 {
		detail := strings.TrimSpace(string(stderr))
		return "", errors.New(errors.ErrSensors,
			fmt.Sprintf("'%s' exited with status %d on %s", s.command, exitCode, s.host),
			detail)
	}

	return string(stdout), nil
}

// Describe returns the host and command being run.
func (s *SSHSource) Describe() string {
	return s.host + ": " + s.command
}

// Close releases the SSH connection, if any.
func (s *SSHSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropConnection()
}

// dropConnection closes and clears the client. Callers hold s.mu.
func (s *SSHSource) dropConnection() {
	if s.client != nil {
		_ = s.client.Close()
		s.client = nil
	}
}
