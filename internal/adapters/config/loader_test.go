package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/origin/internal/adapters/config"
	"go.trai.ch/origin/internal/core/domain"
	"go.trai.ch/origin/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, config.Filename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
}

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	writeSettings(t, tmpDir, `
version: "1"
origin: /etc/origin.conf
deployments: deploy
pattern: "*.conf"
log:
  json: true
`)

	settings, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, &domain.Settings{
		Origin:      "/etc/origin.conf",
		Deployments: filepath.Join(tmpDir, "deploy"),
		Pattern:     "*.conf",
		JSONLogs:    true,
	}, settings)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()

	settings, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "origin.conf"), settings.Origin)
	assert.Equal(t, tmpDir, settings.Deployments)
	assert.Equal(t, "*.origin", settings.Pattern)
	assert.False(t, settings.JSONLogs)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	writeSettings(t, tmpDir, "version: \"1\"\norigin: custom.origin\n")

	settings, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "custom.origin"), settings.Origin)
	assert.Equal(t, "*.origin", settings.Pattern)
}

func TestLoad_MissingVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).Times(1)

	tmpDir := t.TempDir()
	writeSettings(t, tmpDir, "pattern: \"*.origin\"\n")

	_, err := config.NewLoader(mockLogger).Load(tmpDir)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
		meta     map[string]any
	}{
		{
			name:     "unsupported version",
			content:  "version: \"2\"\n",
			contains: "unsupported settings version",
			meta:     map[string]any{"version": "2"},
		},
		{
			name:     "unknown field",
			content:  "version: \"1\"\ntasks: {}\n",
			contains: "failed to parse settings file",
		},
		{
			name:     "malformed yaml",
			content:  "version: [\n",
			contains: "failed to parse settings file",
		},
		{
			name:     "bad pattern",
			content:  "version: \"1\"\npattern: \"[\"\n",
			contains: "invalid pattern",
			meta:     map[string]any{"pattern": "["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tmpDir := t.TempDir()
			writeSettings(t, tmpDir, tt.content)

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(tmpDir)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.contains)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error")
			meta := zErr.Metadata()
			assert.Equal(t, filepath.Join(tmpDir, config.Filename), meta["path"])
			for k, v := range tt.meta {
				assert.Equal(t, v, meta[k])
			}
		})
	}
}
