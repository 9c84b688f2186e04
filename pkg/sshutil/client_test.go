package sshutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveSettingsPlainHost(t *testing.T) {
	s := resolveSettings("198.51.100.7")

	assert.Equal(t, "198.51.100.7", s.hostname)
	assert.Equal(t, "22", s.port)
	assert.NotEmpty(t, s.user)
}

func TestResolveSettingsUserAndPort(t *testing.T) {
	s := resolveSettings("deploy@198.51.100.7:2222")

	assert.Equal(t, "deploy", s.user)
	assert.Equal(t, "198.51.100.7", s.hostname)
	assert.Equal(t, "2222", s.port)
}

func TestResolveSettingsUserOnly(t *testing.T) {
	s := resolveSettings("deploy@198.51.100.7")

	assert.Equal(t, "deploy", s.user)
	assert.Equal(t, "198.51.100.7", s.hostname)
	assert.Equal(t, "22", s.port)
}

func TestResolveSettingsNonNumericSuffixIsNotAPort(t *testing.T) {
	// IPv6-ish or odd host strings keep their colon when the suffix
	// isn't all digits.
	s := resolveSettings("weird:host")

	assert.Equal(t, "weird:host", s.hostname)
	assert.Equal(t, "22", s.port)
}

func TestSettingsAddress(t *testing.T) {
	s := &settings{hostname: "198.51.100.7", port: "2222"}
	assert.Equal(t, "198.51.100.7:2222", s.address())
}

func TestExpandPath(t *testing.T) {
	home := homeDir()

	assert.Equal(t, filepath.Join(home, ".ssh", "id_ed25519"), expandPath("~/.ssh/id_ed25519"))
	assert.Equal(t, "/etc/ssh/key", expandPath("/etc/ssh/key"))
	assert.Equal(t, "relative/key", expandPath("relative/key"))
}

func TestCurrentUserNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, currentUser())
}

func TestDialContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := DialContext(ctx, "198.51.100.7", time.Second)
	assert.Error(t, err)
	assert.Nil(t, client)
}
