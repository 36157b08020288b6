package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "WHERESMY_"

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile is the user file. It is optional unless Explicit is set.
	ConfigFile string
	// Explicit makes a missing ConfigFile an error (the --config flag)
	Explicit bool
	// Overrides are applied last, keyed by dotted path ("automation.timeout")
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	if opts.ConfigFile != "" {
		_, err := os.Stat(opts.ConfigFile)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile)
			}
			logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded user config")
		case stderrors.Is(err, fs.ErrNotExist) && !opts.Explicit:
			logger.Trace().Str("path", opts.ConfigFile).Msg("No user config")
		default:
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.ConfigFile)
		}
	}

	// 3. Env vars: WHERESMY_ACTIVATION_DELAY -> activation_delay,
	// WHERESMY_AUTOMATION__TIMEOUT -> automation.timeout
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode configuration")
	}

	cfg.Shortcut = strings.TrimSpace(cfg.Shortcut)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
