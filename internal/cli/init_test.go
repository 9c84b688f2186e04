package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })
	return dir
}

func TestInitNonInteractiveWritesConfig(t *testing.T) {
	dir := chdirTemp(t)

	err := Init(InitOptions{NonInteractive: true, Overwrite: true})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "interval: 1s")
	assert.Contains(t, content, "sensors_command: sensors")
	assert.Contains(t, content, "fan_default_rpm: 4000")
	assert.NotContains(t, content, "host:")

	// The written file loads back cleanly.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Interval, cfg.Interval)
	assert.Equal(t, 60, cfg.History)
}

func TestInitNonInteractiveRefusesOverwrite(t *testing.T) {
	dir := chdirTemp(t)

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 5s\n"), 0644))

	err := Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	// Existing file untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "interval: 5s\n", string(data))
}
