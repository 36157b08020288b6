package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/paths"
	"github.com/arthur-debert/wheresmy/pkg/registry"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEnvironment(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	env.WithDevices(types.Device{ID: "a", Name: "Keys", Icon: types.IconIphone})

	devices := env.Registry().Load()
	require.Len(t, devices, 1)
	assert.Equal(t, "Keys", devices[0].Name)
	assert.JSONEq(t, `[{"id":"a","name":"Keys","icon":"Iphone.png"}]`, env.StoredDevices())

	_, err := os.Stat(env.StoragePath())
	assert.True(t, os.IsNotExist(err), "memory environments never touch the disk")
}

func TestIsolatedEnvironment(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	assert.Equal(t, env.DataDir, os.Getenv(paths.EnvDataDir))
	assert.Equal(t, env.ConfigDir, os.Getenv(paths.EnvConfigDir))

	p, err := paths.New()
	require.NoError(t, err)
	assert.Equal(t, env.StoragePath(), p.StoragePath(""))
	assert.Equal(t, env.ConfigPath(), p.ConfigFilePath())
	assert.Equal(t, env.StateDir, p.StateDir())

	env.WithConfig(`shortcut = "f13"`)
	content, err := os.ReadFile(filepath.Join(env.ConfigDir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, `shortcut = "f13"`, string(content))
}

func TestWithStoredValue(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly).WithStoredValue("not json")
	assert.Empty(t, env.Registry().Load())
}

func TestSequentialIDs(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	reg := env.Registry(registry.WithIDFunc(SequentialIDs("dev")))

	first, err := reg.Add("One", "")
	require.NoError(t, err)
	second, err := reg.Add("Two", "")
	require.NoError(t, err)

	assert.Equal(t, "dev-1", first.ID)
	assert.Equal(t, "dev-2", second.ID)
}
