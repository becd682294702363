// Package configservice resolves which settings file and profile a command
// operates on. Flags take precedence over PALCFG_* environment variables,
// which take precedence over built-in defaults.
package configservice

import (
	"fmt"
	"path/filepath"
	"strings"

	"palcfg/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Setting keys. Each is also read from the environment as PALCFG_<KEY>
// with dashes turned into underscores.
const (
	KeyFile     = "file"
	KeyPlatform = "platform"
	KeyRelease  = "release"
	KeyJSON     = "json"
	KeyLogLevel = "log-level"
	KeyLogJSON  = "log-json"
)

const (
	EnvPrefix       = "PALCFG"
	DefaultFileName = "sdlpal.cfg"
	DefaultLogLevel = "warn"
)

// Settings is the resolved invocation context.
type Settings struct {
	Path     string
	Profile  config.Profile
	JSON     bool
	LogLevel logrus.Level
	LogJSON  bool
}

// NewViper returns a viper instance with defaults and environment binding.
// Callers bind their command-line flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFile, DefaultFileName)
	v.SetDefault(KeyPlatform, string(config.PlatformPC))
	v.SetDefault(KeyRelease, string(config.VersionGit))
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogJSON, false)
	return v
}

// Resolve validates the values held by v. The file path is checked against fs.
func Resolve(v *viper.Viper, fs afero.Fs) (Settings, error) {
	profile, err := config.ParseProfile(v.GetString(KeyPlatform), v.GetString(KeyRelease))
	if err != nil {
		return Settings{}, err
	}

	path, err := ResolvePath(fs, v.GetString(KeyFile))
	if err != nil {
		return Settings{}, err
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid log level: %w", err)
	}

	return Settings{
		Path:     path,
		Profile:  profile,
		JSON:     v.GetBool(KeyJSON),
		LogLevel: level,
		LogJSON:  v.GetBool(KeyLogJSON),
	}, nil
}

// ResolvePath makes path absolute. A path naming an existing directory
// refers to the default file name inside it. A missing file is fine: the
// launcher starts from defaults and creates it on save.
func ResolvePath(fs afero.Fs, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	if info, err := fs.Stat(absPath); err == nil && info.IsDir() {
		absPath = filepath.Join(absPath, DefaultFileName)
	}
	return absPath, nil
}
