package main

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/rolodex/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	origVersion, origCommit := version.Version, version.Commit
	defer func() {
		version.Version = origVersion
		version.Commit = origCommit
	}()

	tests := []struct {
		name     string
		ver      string
		commit   string
		expected string
	}{
		{"development version without commit", "development", "unknown", "rolodex development\n"},
		{"release version with commit", "1.0.0", "abc1234", "rolodex 1.0.0+abc1234\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version.Version = tt.ver
			version.Commit = tt.commit

			var buf bytes.Buffer
			c := NewVersionCmd()
			c.SetOut(&buf)
			c.SetArgs([]string{})
			require.NoError(t, c.Execute())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
