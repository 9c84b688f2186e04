package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/sensors"
)

func TestResolveInterval(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty uses config", flag: "", want: cfg.Interval},
		{name: "flag overrides", flag: "1s", want: time.Second},
		{name: "millisecond flag", flag: "500ms", want: 500 * time.Millisecond},
		{name: "garbage", flag: "fast", wantErr: true},
		{name: "too short", flag: "10ms", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveInterval(cfg, tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSourceLocal(t *testing.T) {
	cfg := config.DefaultConfig()

	source, closeSource := buildSource(cfg, "")
	defer closeSource()

	_, ok := source.(*sensors.LocalSource)
	assert.True(t, ok)
}

func TestBuildSourceSSHFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Host = "gpubox"

	source, closeSource := buildSource(cfg, "")
	defer closeSource()

	_, ok := source.(*sensors.SSHSource)
	assert.True(t, ok)
	assert.Contains(t, source.Describe(), "gpubox")
}

func TestBuildSourceFlagOverridesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Host = "gpubox"

	source, closeSource := buildSource(cfg, "otherbox")
	defer closeSource()

	assert.Contains(t, source.Describe(), "otherbox")
}
