// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp dir config files, environment variables
// PURPOSE: Test layered configuration loading and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/wheresmy/pkg/config"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "cmd+opt+f15", cfg.Shortcut)
	assert.Equal(t, 1.0, cfg.ActivationDelay)
	assert.Equal(t, time.Second, cfg.ActivationDelayDuration())
	assert.Equal(t, "storage.json", cfg.Storage.File)
	assert.Equal(t, "osascript", cfg.Automation.Osascript)
	assert.Zero(t, cfg.Automation.Timeout, "a ping is not bounded unless configured")
}

func TestLoad_UserFile(t *testing.T) {
	path := writeConfig(t, `
shortcut = "ctrl+shift+f18"
activation_delay = 1.5

[automation]
timeout = "10s"
`)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "ctrl+shift+f18", cfg.Shortcut)
	assert.Equal(t, 1500*time.Millisecond, cfg.ActivationDelayDuration())
	assert.Equal(t, 10*time.Second, cfg.Automation.Timeout)
	assert.Equal(t, "osascript", cfg.Automation.Osascript, "unset keys keep their defaults")
}

func TestLoad_IntegerDelay(t *testing.T) {
	path := writeConfig(t, "activation_delay = 2\n")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.ActivationDelayDuration())
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := config.Load(config.LoadOptions{ConfigFile: missing})
	assert.NoError(t, err, "the default location is optional")

	_, err = config.Load(config.LoadOptions{ConfigFile: missing, Explicit: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "shortcut = \n")

	_, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `shortcut = "f13"`)
	t.Setenv("WHERESMY_SHORTCUT", "cmd+f14")
	t.Setenv("WHERESMY_ACTIVATION_DELAY", "0.5")
	t.Setenv("WHERESMY_AUTOMATION__OSASCRIPT", "/usr/local/bin/osascript")
	t.Setenv("WHERESMY_AUTOMATION__TIMEOUT", "45s")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "cmd+f14", cfg.Shortcut)
	assert.Equal(t, 500*time.Millisecond, cfg.ActivationDelayDuration())
	assert.Equal(t, "/usr/local/bin/osascript", cfg.Automation.Osascript)
	assert.Equal(t, 45*time.Second, cfg.Automation.Timeout)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("WHERESMY_SHORTCUT", "cmd+f14")

	cfg, err := config.Load(config.LoadOptions{
		Overrides: map[string]interface{}{
			"shortcut":         "f16",
			"activation_delay": 2.5,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "f16", cfg.Shortcut)
	assert.Equal(t, 2500*time.Millisecond, cfg.ActivationDelayDuration())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantErr   bool
	}{
		{"empty shortcut", map[string]interface{}{"shortcut": "  "}, true},
		{"dangling plus", map[string]interface{}{"shortcut": "cmd+"}, true},
		{"negative delay", map[string]interface{}{"activation_delay": -1}, true},
		{"zero delay", map[string]interface{}{"activation_delay": 0}, false},
		// reported by the trigger, with the key named, at ping time
		{"unsupported function key", map[string]interface{}{"shortcut": "f21"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.LoadOptions{Overrides: tt.overrides})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLocateConfig(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	lc := cfg.Locate()
	assert.Equal(t, "cmd+opt+f15", lc.Shortcut)
	assert.Equal(t, time.Second, lc.ActivationDelay)
}

func TestTOML(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "cmd+opt+f15")
	assert.Contains(t, s, "activation_delay = 1")
	assert.Contains(t, s, "[automation]")
	assert.Contains(t, s, "0s")
}
