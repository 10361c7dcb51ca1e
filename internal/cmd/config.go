package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reactcreative/cli/internal/config"
	oerrors "github.com/reactcreative/cli/internal/errors"
)

// newConfigCmd creates the config command group.
func newConfigCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for create-react-creative.`,
	}

	c.AddCommand(newConfigInitCmd(g))
	c.AddCommand(newConfigVetCmd(g))

	return c
}

func newConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is created at ~/.create-react-creative/config.yaml unless --config
or CREATIVE_CONFIG names another location.

Examples:
  # Initialize configuration
  create-react-creative config init

  # Overwrite existing configuration
  create-react-creative config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, g.ConfigPath, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return c
}

func runConfigInit(cmd *cobra.Command, configPath string, force bool) error {
	path, err := config.ExpandPath(configPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration initialized at "+path)
	fmt.Fprintln(out, "Validate with: create-react-creative config vet")
	return nil
}

func newConfigVetCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the configuration file against the built-in schema.

Unknown keys, unsupported package managers and values of the wrong type are
reported with their key.

The config path is resolved using precedence:
  --config flag > CREATIVE_CONFIG env > ~/.create-react-creative/config.yaml`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigVet(cmd, g.ConfigPath)
		},
	}
}

func runConfigVet(cmd *cobra.Command, configPath string) error {
	path, err := config.ExpandPath(configPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'create-react-creative config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating config validator: %w", err)
	}
	if err := validator.ValidateFile(path); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid: "+path)
	return nil
}
