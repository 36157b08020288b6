package config

import (
	"time"

	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/hotkey"
	"github.com/arthur-debert/wheresmy/pkg/locate"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective wheresmy configuration
type Config struct {
	Shortcut        string           `koanf:"shortcut"`
	ActivationDelay float64          `koanf:"activation_delay"`
	Storage         StorageConfig    `koanf:"storage"`
	Automation      AutomationConfig `koanf:"automation"`
}

// StorageConfig locates the device storage file
type StorageConfig struct {
	File string `koanf:"file"`
}

// AutomationConfig controls how scripts are executed
type AutomationConfig struct {
	Osascript string        `koanf:"osascript"`
	Timeout   time.Duration `koanf:"timeout"`
}

// ActivationDelayDuration converts the configured seconds to a Duration
func (c *Config) ActivationDelayDuration() time.Duration {
	return time.Duration(c.ActivationDelay * float64(time.Second))
}

// Locate returns the trigger configuration
func (c *Config) Locate() locate.Config {
	return locate.Config{
		Shortcut:        c.Shortcut,
		ActivationDelay: c.ActivationDelayDuration(),
	}
}

// Validate checks values that would otherwise only fail at ping time.
// Unsupported function keys are left to the trigger, which reports them
// with the offending key.
func (c *Config) Validate() error {
	if c.Shortcut == "" {
		return errors.New(errors.ErrConfigInvalid, "shortcut cannot be empty")
	}
	if _, err := hotkey.Parse(c.Shortcut); err != nil && !errors.IsErrorCode(err, errors.ErrUnsupportedKey) {
		return err
	}
	if c.ActivationDelay < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "activation_delay cannot be negative: %v", c.ActivationDelay)
	}
	if c.Automation.Timeout < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "automation.timeout cannot be negative: %s", c.Automation.Timeout)
	}
	return nil
}

type tomlView struct {
	Shortcut        string  `toml:"shortcut"`
	ActivationDelay float64 `toml:"activation_delay"`
	Storage         struct {
		File string `toml:"file"`
	} `toml:"storage"`
	Automation struct {
		Osascript string `toml:"osascript"`
		Timeout   string `toml:"timeout"`
	} `toml:"automation"`
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	var v tomlView
	v.Shortcut = c.Shortcut
	v.ActivationDelay = c.ActivationDelay
	v.Storage.File = c.Storage.File
	v.Automation.Osascript = c.Automation.Osascript
	v.Automation.Timeout = c.Automation.Timeout.String()
	return toml.Marshal(v)
}
