package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "dev stays bare", input: "dev", expect: "dev"},
		{name: "empty stays empty", input: "", expect: ""},
		{name: "bare version gets prefix", input: "1.2.3", expect: "v1.2.3"},
		{name: "prefixed version unchanged", input: "v1.2.3", expect: "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "1.0.0", GetVersion())
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}
