package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for configuration.
const envPrefix = "CREATIVE"

// Config keys, as written in the config file.
const (
	KeyPackageManager = "packageManager"
	KeyTemplate       = "template"
	KeyInstall        = "install"
	KeyTemplateDir    = "templateDir"
	KeyLogTimestamps  = "log.timestamps"
)

// envKeys maps config keys to their environment variables.
var envKeys = map[string]string{
	KeyPackageManager: envPrefix + "_PACKAGE_MANAGER",
	KeyTemplate:       envPrefix + "_TEMPLATE",
	KeyInstall:        envPrefix + "_INSTALL",
	KeyTemplateDir:    envPrefix + "_TEMPLATE_DIR",
	KeyLogTimestamps:  envPrefix + "_LOG_TIMESTAMPS",
}

// EnvVar returns the environment variable bound to a config key.
func EnvVar(key string) string {
	return envKeys[key]
}

// Loader reads the config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file yields an empty Config.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Path returns the config file used by the last Load.
func (l *Loader) Path() string {
	return l.v.ConfigFileUsed()
}

// newEnvViper returns a viper instance that only sees environment variables.
func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	return v
}
