// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/config"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
	"github.com/reactcreative/cli/internal/version"
)

// annotationSkipConfig marks commands that must run with a broken config file.
const annotationSkipConfig = "skip-config"

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
type GlobalConfig struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string

	// Config is the loaded config file. Empty when the file is missing.
	Config *config.Config

	// Settings are the effective values after flag, env and file precedence.
	Settings *config.Settings

	Verbose bool
}

type rootFlags struct {
	config         string
	verbose        bool
	timestamps     bool
	template       string
	noInstall      bool
	packageManager string
	packageName    string
	templateDir    string
	overwrite      string
}

// NewRootCmd creates the root command. The root command itself scaffolds
// a project.
func NewRootCmd() *cobra.Command {
	cat := catalog.Default()
	g := &GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "create-react-creative [directory]",
		Short: "Scaffold a creative React project",
		Long: `Scaffold a Vite + React + TypeScript project with a curated set of
animation, state management, 3D and creative coding libraries.

Each chosen library ships a small demo component that is copied into the
project and rendered from src/App.tsx. Missing values are asked for
interactively; a preset selects every library at once.

` + presetHelp(cat),
		Example: `  # Answer every question interactively
  create-react-creative

  # Use a preset and skip the install
  create-react-creative my-app -t popular --no-install`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, g, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runCreate(cmd, args, cat, g, flags); err != nil {
				return printRunError(err)
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "path to config file (env: CREATIVE_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "increase output verbosity")
	pf.BoolVar(&flags.timestamps, "timestamps", false, "show timestamps in log output (env: CREATIVE_LOG_TIMESTAMPS)")

	f := rootCmd.Flags()
	f.StringVarP(&flags.template, "template", "t", "", "preset to scaffold without prompting (env: CREATIVE_TEMPLATE)")
	f.BoolVar(&flags.noInstall, "no-install", false, "write package.json without installing dependencies (env: CREATIVE_INSTALL=false)")
	f.StringVar(&flags.packageManager, "package-manager", "", "package manager to install with: npm, pnpm, yarn, bun (env: CREATIVE_PACKAGE_MANAGER)")
	f.StringVar(&flags.packageName, "package-name", "", "package.json name (default: the directory name)")
	f.StringVar(&flags.templateDir, "template-dir", "", "use a template tree from disk (env: CREATIVE_TEMPLATE_DIR)")
	f.StringVar(&flags.overwrite, "overwrite", "", "non-empty directory handling without prompting: cancel, remove, ignore")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(cat))
	rootCmd.AddCommand(newConfigCmd(g))

	return rootCmd
}

// initializeGlobals loads and resolves configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *GlobalConfig, flags *rootFlags) error {
	g.Verbose = flags.verbose

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	g.ConfigPath = pathResult.ConfigPath

	skipConfig := cmd.Annotations[annotationSkipConfig] == "true"

	cfg := &config.Config{}
	if !skipConfig {
		cfg, err = loadConfig(g.ConfigPath)
		if err != nil {
			return err
		}
	}
	g.Config = cfg

	settings, err := config.Resolve(cfg, flagValues(cmd, flags))
	if err != nil {
		return err
	}
	g.Settings = settings

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(settings.Timestamps),
	})

	info := version.GetInfo()
	output.Debug("create-react-creative started", "version", info.Version, "config", g.ConfigPath, "source", pathResult.Source)
	config.LogResolvedValues(settings.Values)
	return nil
}

// loadConfig reads and validates the config file. A missing file is empty.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Hint:     "Fix the file or run 'create-react-creative config init --force'",
			Cause:    oerrors.ErrValidation,
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("creating config validator: %w", err)
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Hint:     "Run 'create-react-creative config vet' for details",
			Cause:    oerrors.ErrValidation,
		}
	}
	return cfg, nil
}

// flagValues collects only the flags the user set.
func flagValues(cmd *cobra.Command, flags *rootFlags) config.FlagValues {
	fv := config.FlagValues{
		PackageManager: flags.packageManager,
		Template:       flags.template,
		TemplateDir:    flags.templateDir,
	}
	if f := cmd.Flags().Lookup("no-install"); f != nil && f.Changed {
		fv.Install = output.BoolPtr(!flags.noInstall)
	}
	if f := cmd.Flags().Lookup("timestamps"); f != nil && f.Changed {
		fv.Timestamps = output.BoolPtr(flags.timestamps)
	}
	return fv
}
