// Package sshutil provides a small SSH client for running commands on a
// remote host, resolving connection settings from ~/.ssh/config.
package sshutil

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kevinburke/ssh_config"
	"github.com/rileyhilliard/senso/internal/errors"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Client wraps an SSH connection with the metadata used to establish it.
type Client struct {
	*ssh.Client
	Host    string // The original host/alias used to connect
	Address string // The resolved address (host:port)
}

// Dial establishes an SSH connection to the specified host.
// The host can be:
//   - An SSH config alias (e.g., "myserver")
//   - A hostname (e.g., "192.168.1.100")
//   - A user@hostname (e.g., "user@192.168.1.100")
//   - A hostname:port (e.g., "192.168.1.100:2222")
//
// Connection settings are resolved from ~/.ssh/config when available.
func Dial(host string, timeout time.Duration) (*Client, error) {
	return DialContext(context.Background(), host, timeout)
}

// DialContext is Dial with a context bounding the TCP connect, so a caller
// on a tight refresh cycle can abandon a stalled dial.
func DialContext(ctx context.Context, host string, timeout time.Duration) (*Client, error) {
	settings := resolveSettings(host)

	config, err := buildClientConfig(settings, timeout)
	if err != nil {
		return nil, err
	}

	address := settings.address()
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Can't reach '%s' at %s", host, address),
			"Check the host is online and the address is correct.")
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, address, config)
	if err != nil {
		conn.Close()
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("SSH handshake with '%s' didn't go through", host),
			"Check your keys are loaded: ssh-add -l")
	}

	return &Client{
		Client:  ssh.NewClient(sshConn, chans, reqs),
		Host:    host,
		Address: address,
	}, nil
}

// Close closes the SSH connection.
func (c *Client) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// settings holds resolved SSH connection parameters.
type settings struct {
	hostname     string
	port         string
	user         string
	identityFile string
}

// address returns the host:port string for dialing.
func (s *settings) address() string {
	return net.JoinHostPort(s.hostname, s.port)
}

// resolveSettings parses the host string and fills in defaults from
// ~/.ssh/config. Explicit user@host:port parts take precedence.
func resolveSettings(host string) *settings {
	s := &settings{
		port: "22",
		user: currentUser(),
	}

	if atIdx := strings.Index(host, "@"); atIdx != -1 {
		s.user = host[:atIdx]
		host = host[atIdx+1:]
	}

	if colonIdx := strings.LastIndex(host, ":"); colonIdx != -1 {
		port := host[colonIdx+1:]
		if port != "" && strings.Trim(port, "0123456789") == "" {
			s.port = port
			host = host[:colonIdx]
		}
	}

	s.hostname = host

	// ~/.ssh/config overrides defaults but not explicit parts.
	if hostname := ssh_config.Get(host, "HostName"); hostname != "" {
		s.hostname = hostname
	}
	if port := ssh_config.Get(host, "Port"); port != "" && s.port == "22" {
		s.port = port
	}
	if user := ssh_config.Get(host, "User"); user != "" && !strings.Contains(host, "@") {
		s.user = user
	}
	if identity := ssh_config.Get(host, "IdentityFile"); identity != "" {
		s.identityFile = expandPath(identity)
	}

	return s
}

// buildClientConfig assembles auth methods and host key verification.
func buildClientConfig(s *settings, timeout time.Duration) (*ssh.ClientConfig, error) {
	var methods []ssh.AuthMethod

	// SSH agent first: covers encrypted keys without prompting.
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}

	// Then unencrypted key files: the configured identity plus defaults.
	keyFiles := []string{s.identityFile}
	for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
		keyFiles = append(keyFiles, filepath.Join(homeDir(), ".ssh", name))
	}
	for _, path := range keyFiles {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		signer, err := ssh.ParsePrivateKey(data)
		if err != nil {
			continue
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if len(methods) == 0 {
		return nil, errors.New(errors.ErrSSH,
			"No usable SSH keys found",
			"Load a key with ssh-add, or create one: ssh-keygen -t ed25519")
	}

	return &ssh.ClientConfig{
		User:            s.user,
		Auth:            methods,
		HostKeyCallback: hostKeyCallback(),
		Timeout:         timeout,
	}, nil
}

// hostKeyCallback verifies against ~/.ssh/known_hosts when available and
// falls back to accepting unknown hosts when the file can't be read.
func hostKeyCallback() ssh.HostKeyCallback {
	path := filepath.Join(homeDir(), ".ssh", "known_hosts")
	if cb, err := knownhosts.New(path); err == nil {
		return cb
	}
	return ssh.InsecureIgnoreHostKey()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "root"
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}
