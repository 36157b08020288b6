package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wheresmy/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for wheresmy
	EnvDataDir = "WHERESMY_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for wheresmy
	EnvConfigDir = "WHERESMY_CONFIG_DIR"

	// EnvStateHome is the XDG state base directory
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base
	AppDirName = "wheresmy"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// DefaultStorageFile is the name of the key/value storage file
	DefaultStorageFile = "storage.json"

	// LogFileName is the name of the log file
	LogFileName = "wheresmy.log"
)

// Paths provides the locations wheresmy reads from and writes to
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	StoragePath(fileName string) string
	LogFilePath() string
}

type paths struct {
	dataDir   string
	configDir string
	stateDir  string
}

// New resolves all directories from the environment.
func New() (Paths, error) {
	p := &paths{}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.dataDir = expandHome(dataDir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = expandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg caches its environment at init, so the state base is read directly
	stateHome := os.Getenv(EnvStateHome)
	if stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to resolve home directory")
		}
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	p.stateDir = filepath.Join(stateHome, AppDirName)

	for _, dir := range []*string{&p.dataDir, &p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// ExpandHome expands ~ in user supplied paths
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) DataDir() string {
	return p.dataDir
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the path of the user config file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StoragePath returns the path of the storage file. Relative names are
// placed in the data directory; absolute names are used as-is.
func (p *paths) StoragePath(fileName string) string {
	if fileName == "" {
		fileName = DefaultStorageFile
	}
	fileName = expandHome(fileName)
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(p.dataDir, fileName)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
