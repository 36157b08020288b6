// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables only
// PURPOSE: Test directory resolution and env overrides

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, filepath.Join(tempDir, "data"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(tempDir, "config"))
	t.Setenv(paths.EnvStateHome, filepath.Join(tempDir, "state"))

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "data"), p.DataDir())
	assert.Equal(t, filepath.Join(tempDir, "config"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tempDir, "state", "wheresmy"), p.StateDir())
	assert.Equal(t, filepath.Join(tempDir, "config", "config.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(tempDir, "state", "wheresmy", "wheresmy.log"), p.LogFilePath())
}

func TestNew_TildeExpansion(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv(paths.EnvDataDir, "~/wheresmy-data")
	t.Setenv(paths.EnvConfigDir, "")

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, "wheresmy-data"), p.DataDir())
	assert.True(t, filepath.IsAbs(p.ConfigDir()))
}

func TestStoragePath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, tempDir)

	p, err := paths.New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"default name", "", filepath.Join(tempDir, "storage.json")},
		{"relative name", "devices.json", filepath.Join(tempDir, "devices.json")},
		{"absolute name", "/var/tmp/other.json", "/var/tmp/other.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.StoragePath(tt.fileName))
		})
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), paths.ExpandHome("~/x"))
	assert.Equal(t, "~other/x", paths.ExpandHome("~other/x"))
	assert.Equal(t, "/abs", paths.ExpandHome("/abs"))
	assert.Equal(t, "", paths.ExpandHome(""))
}
