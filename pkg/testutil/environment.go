// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/automation"
	"github.com/arthur-debert/wheresmy/pkg/datastore"
	"github.com/arthur-debert/wheresmy/pkg/filesystem"
	"github.com/arthur-debert/wheresmy/pkg/paths"
	"github.com/arthur-debert/wheresmy/pkg/registry"
	"github.com/arthur-debert/wheresmy/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides the directories and dependencies a test needs
type TestEnvironment struct {
	DataDir   string
	ConfigDir string
	StateDir  string

	FS        types.FS
	DataStore datastore.DataStore
	Runner    *automation.Recorder

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:      t,
		Type:   envType,
		Runner: &automation.Recorder{},
	}

	switch envType {
	case EnvMemoryOnly:
		env.setupMemoryEnvironment()
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	for _, dir := range []string{env.DataDir, env.ConfigDir, env.StateDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	env.DataStore = datastore.NewFile(env.FS, env.StoragePath())
	return env
}

// setupMemoryEnvironment configures a pure in-memory environment
func (env *TestEnvironment) setupMemoryEnvironment() {
	env.DataDir = "/virtual/data/wheresmy"
	env.ConfigDir = "/virtual/config/wheresmy"
	env.StateDir = "/virtual/state/wheresmy"
	env.FS = filesystem.NewMemoryFS()
}

// setupIsolatedEnvironment configures a real filesystem in a temp directory
// and points the wheresmy environment variables at it
func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()

	env.DataDir = filepath.Join(tempDir, "data")
	env.ConfigDir = filepath.Join(tempDir, "config")
	stateHome := filepath.Join(tempDir, "state")
	env.StateDir = filepath.Join(stateHome, paths.AppDirName)
	env.FS = filesystem.NewOS()

	env.t.Setenv(paths.EnvDataDir, env.DataDir)
	env.t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	env.t.Setenv(paths.EnvStateHome, stateHome)
	env.t.Setenv("NO_COLOR", "1")
}

// StoragePath is the storage file inside the data directory
func (env *TestEnvironment) StoragePath() string {
	return filepath.Join(env.DataDir, paths.DefaultStorageFile)
}

// ConfigPath is the user config file inside the config directory
func (env *TestEnvironment) ConfigPath() string {
	return filepath.Join(env.ConfigDir, paths.ConfigFileName)
}

// Registry opens a registry on the environment's storage
func (env *TestEnvironment) Registry(opts ...registry.Option) *registry.Registry {
	return registry.New(env.DataStore, opts...)
}

// WithDevices stores devices as the current list
func (env *TestEnvironment) WithDevices(devices ...types.Device) *TestEnvironment {
	env.t.Helper()
	if err := env.Registry().Persist(devices); err != nil {
		env.t.Fatalf("Failed to store devices: %v", err)
	}
	return env
}

// WithStoredValue writes a raw value under the registry key, for testing
// how malformed data is handled
func (env *TestEnvironment) WithStoredValue(raw string) *TestEnvironment {
	env.t.Helper()
	if err := env.DataStore.Set(registry.StorageKey, raw); err != nil {
		env.t.Fatalf("Failed to store value: %v", err)
	}
	return env
}

// WithConfig writes the user config file
func (env *TestEnvironment) WithConfig(content string) *TestEnvironment {
	env.t.Helper()
	if err := env.FS.WriteFile(env.ConfigPath(), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write config: %v", err)
	}
	return env
}

// StoredDevices returns the raw stored device list
func (env *TestEnvironment) StoredDevices() string {
	env.t.Helper()
	raw, _, err := env.DataStore.Get(registry.StorageKey)
	if err != nil {
		env.t.Fatalf("Failed to read stored devices: %v", err)
	}
	return raw
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) registry.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
