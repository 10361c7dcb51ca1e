// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the create-react-creative configuration.
// Loaded from ~/.create-react-creative/config.yaml, validated against the
// embedded CUE schema.
type Config struct {
	// PackageManager installs dependencies. Empty means detect from the
	// invoking package manager's user agent.
	// Env: CREATIVE_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" json:"packageManager,omitempty" yaml:"packageManager,omitempty"`

	// Template is the preset used when -t is not given.
	// Env: CREATIVE_TEMPLATE
	Template string `mapstructure:"template" json:"template,omitempty" yaml:"template,omitempty"`

	// Install controls whether dependencies are installed after scaffolding.
	// Env: CREATIVE_INSTALL, Default: true
	Install *bool `mapstructure:"install" json:"install,omitempty" yaml:"install,omitempty"`

	// TemplateDir replaces the built-in template tree.
	// Env: CREATIVE_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" json:"templateDir,omitempty" yaml:"templateDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `config init` to generate the initial config file.
func DefaultConfig() *Config {
	install := true
	timestamps := false
	return &Config{
		Install: &install,
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
