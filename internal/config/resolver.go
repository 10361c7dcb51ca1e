package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records the winning value of a key and what it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// FlagValues are command-line values. Nil or empty means the flag was not set.
type FlagValues struct {
	PackageManager string
	Template       string
	TemplateDir    string
	Install        *bool
	Timestamps     *bool
}

// Settings are the effective values for one run.
type Settings struct {
	// PackageManager is empty when it should be detected.
	PackageManager string
	Template       string
	TemplateDir    string
	Install        bool
	Timestamps     bool

	// Values lists every key's resolution, in key order.
	Values []ResolvedValue
}

// Resolve applies precedence flag > env > config > default to every key.
func Resolve(cfg *Config, flags FlagValues) (*Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()
	env := newEnvViper()

	layer := func(key, flag, conf, def string) ResolvedValue {
		candidates := []struct {
			source ConfigSource
			value  string
			set    bool
		}{
			{SourceFlag, flag, flag != ""},
			{SourceEnv, env.GetString(key), env.IsSet(key) && env.GetString(key) != ""},
			{SourceConfig, conf, conf != ""},
			{SourceDefault, def, true},
		}

		rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
		for _, c := range candidates {
			if !c.set {
				continue
			}
			if rv.Source == "" {
				rv.Value = c.value
				rv.Source = c.source
				continue
			}
			if c.source != SourceDefault || c.value != "" {
				rv.Shadowed[c.source] = c.value
			}
		}
		return rv
	}

	s := &Settings{}
	s.Values = []ResolvedValue{
		layer(KeyPackageManager, flags.PackageManager, cfg.PackageManager, ""),
		layer(KeyTemplate, flags.Template, cfg.Template, ""),
		layer(KeyTemplateDir, flags.TemplateDir, cfg.TemplateDir, ""),
		layer(KeyInstall, boolString(flags.Install), boolString(cfg.Install), boolString(defaults.Install)),
		layer(KeyLogTimestamps, boolString(flags.Timestamps), boolString(cfg.Log.Timestamps), boolString(defaults.Log.Timestamps)),
	}

	s.PackageManager = s.Values[0].Value
	s.Template = s.Values[1].Value
	s.TemplateDir = s.Values[2].Value

	var err error
	if s.Install, err = parseBool(s.Values[3]); err != nil {
		return nil, err
	}
	if s.Timestamps, err = parseBool(s.Values[4]); err != nil {
		return nil, err
	}
	return s, nil
}

func boolString(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func parseBool(rv ResolvedValue) (bool, error) {
	b, err := strconv.ParseBool(rv.Value)
	if err != nil {
		location := string(rv.Source)
		if rv.Source == SourceEnv {
			location = EnvVar(rv.Key)
		}
		return false, oerrors.NewValidationError(
			fmt.Sprintf("%s must be true or false, got %q", rv.Key, rv.Value),
			location,
			"",
		)
	}
	return b, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CREATIVE_CONFIG env, (3) ~/.create-react-creative/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(envPrefix + "_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	// Resolve using precedence: flag > env > default
	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
