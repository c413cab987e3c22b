package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/origin/cmd/originctl/commands"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expected     string
	}{
		{
			name:         "install",
			args:         []string{"install", "vim"},
			expectedExit: 0,
			expected:     "requested=vim;",
		},
		{
			name:         "invalid rebase",
			args:         []string{"rebase", "not a ref"},
			expectedExit: 1,
			expected:     "refspec=myremote:mybranch\n",
		},
		{
			name:         "unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
			expected:     "refspec=myremote:mybranch\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			originPath := filepath.Join(tmpDir, "current.origin")
			err := os.WriteFile(originPath, []byte("[origin]\nrefspec=myremote:mybranch\n"), 0o600)
			require.NoError(t, err)

			os.Args = append([]string{"originctl", "-C", tmpDir, "-f", originPath}, tt.args...)

			exitCode := run(func(c *commands.CLI) {
				c.SetOutput(io.Discard)
			})
			assert.Equal(t, tt.expectedExit, exitCode)

			data, err := os.ReadFile(originPath)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.expected)
		})
	}
}

func TestRun_InvalidSettings(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "originctl.yaml"), []byte("version: \"2\"\n"), 0o600)
	require.NoError(t, err)

	os.Args = []string{"originctl", "-C", tmpDir, "show"}

	exitCode := run(func(c *commands.CLI) {
		c.SetOutput(io.Discard)
	})
	assert.Equal(t, 1, exitCode)
}
