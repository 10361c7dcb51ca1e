package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
	"github.com/reactcreative/cli/internal/pkgmanager"
	"github.com/reactcreative/cli/internal/prompt"
	"github.com/reactcreative/cli/internal/scaffold"
	"github.com/reactcreative/cli/internal/templates"
)

// userAgentEnv names the variable package managers set for child processes.
const userAgentEnv = "npm_config_user_agent"

// newPrompter returns the wizard on a terminal and fixed answers otherwise.
// Replaced in tests.
var newPrompter = func(answers prompt.Answers) prompt.Prompter {
	if output.IsInteractive() {
		return prompt.NewWizard()
	}
	return prompt.NewStatic(answers)
}

// newInstaller is replaced in tests.
var newInstaller = func(m pkgmanager.Manager) scaffold.Installer {
	return pkgmanager.NewInstaller(m)
}

func runCreate(cmd *cobra.Command, args []string, cat *catalog.Catalog, g *GlobalConfig, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	settings := g.Settings

	overwrite := prompt.Overwrite(flags.overwrite)
	if flags.overwrite != "" && !overwrite.Valid() {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid --overwrite value %q", flags.overwrite),
			"",
			"Use --overwrite=remove, --overwrite=ignore or --overwrite=cancel",
		)
	}

	manager, err := resolveManager(settings.PackageManager)
	if err != nil {
		return err
	}

	source, err := templates.Source(settings.TemplateDir)
	if err != nil {
		return err
	}

	p := newPrompter(prompt.Answers{Overwrite: overwrite, PackageName: flags.packageName})

	output.Println(output.StyleSummary.Render("Create your creative project ⚡"))

	targetDir, err := resolveTargetDir(ctx, p, args)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", targetDir, err)
	}

	if err := prepareTarget(ctx, p, targetDir, root, overwrite); err != nil {
		return err
	}

	packageName, err := resolvePackageName(ctx, p, root, flags.packageName)
	if err != nil {
		return err
	}

	sel, err := resolveSelection(ctx, p, cat, settings.Template)
	if err != nil {
		return err
	}

	output.Println(output.FormatNote("Configuration Summary", summaryLines(targetDir, sel)))
	output.Info("scaffolding project", "path", output.StyleNoun.Render(root))

	s, err := scaffold.New(scaffold.Options{
		Root:        root,
		PackageName: packageName,
		Catalog:     cat,
		Selection:   sel,
		Template:    source,
		Manager:     manager,
		Installer:   newInstaller(manager),
		SkipInstall: !settings.Install,
	})
	if err != nil {
		return err
	}

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	report(result, root)
	return nil
}

func resolveManager(name string) (pkgmanager.Manager, error) {
	if name != "" {
		return pkgmanager.Lookup(name)
	}
	m := pkgmanager.Detect(os.Getenv(userAgentEnv))
	output.Debug("detected package manager", "manager", m.Name)
	return m, nil
}

func resolveTargetDir(ctx context.Context, p prompt.Prompter, args []string) (string, error) {
	var dir string
	if len(args) > 0 {
		dir = templates.FormatTargetDir(args[0])
	} else {
		name, err := p.ProjectName(ctx, prompt.DefaultProjectName)
		if err != nil {
			return "", err
		}
		dir = templates.FormatTargetDir(name)
	}
	if dir == "" {
		return "", oerrors.NewValidationError("invalid project name", "", "Pass a directory name, e.g. 'create-react-creative my-app'")
	}
	return dir, nil
}

// prepareTarget asks what to do with a non-empty target directory.
func prepareTarget(ctx context.Context, p prompt.Prompter, targetDir, root string, flag prompt.Overwrite) error {
	empty, err := templates.IsEmptyDir(root)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}

	choice := flag
	if !choice.Valid() {
		choice, err = p.Overwrite(ctx, targetDir)
		if err != nil {
			return err
		}
	}

	switch choice {
	case prompt.OverwriteRemove:
		output.Debug("emptying target directory", "path", root)
		return templates.EmptyDir(root)
	case prompt.OverwriteIgnore:
		return nil
	default:
		return &oerrors.DetailError{
			Type:     "cancelled",
			Message:  prompt.OverwriteTitle(targetDir),
			Location: root,
			Hint:     "Choose an empty directory or pass --overwrite=remove",
			Cause:    oerrors.ErrCancelled,
		}
	}
}

// resolvePackageName uses the flag, then the directory name, then asks.
func resolvePackageName(ctx context.Context, p prompt.Prompter, root, flag string) (string, error) {
	name := flag
	if name == "" {
		name = filepath.Base(root)
		if !templates.IsValidPackageName(name) {
			var err error
			name, err = p.PackageName(ctx, templates.ToValidPackageName(name))
			if err != nil {
				return "", err
			}
		}
	}
	if !templates.IsValidPackageName(name) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid package.json name %q", name),
			"",
			"Use lowercase letters, digits, '-', '.', '_' and '~', optionally with an @scope/ prefix",
		)
	}
	return name, nil
}

// resolveSelection uses the preset when it exists and asks otherwise.
func resolveSelection(ctx context.Context, p prompt.Prompter, cat *catalog.Catalog, preset string) (catalog.Selection, error) {
	if preset != "" {
		sel, err := cat.FindByTemplateName(preset)
		if err == nil {
			return sel, nil
		}
		if !errors.Is(err, catalog.ErrPresetNotFound) {
			return catalog.Selection{}, err
		}
		output.Println(output.FormatNote("Note", []string{
			fmt.Sprintf("%q isn't a valid template. Please customize your own template:", preset),
		}))
	}
	return p.Selection(ctx, cat)
}

func summaryLines(targetDir string, sel catalog.Selection) []string {
	label := func(s string) string { return output.StyleNoun.Bold(true).Render(s) }

	lines := []string{
		label("Project Name") + ": " + targetDir,
		label("Automatically Included") + ": Tailwind, Path Aliasing, Svgr",
	}
	for _, l := range sel.Summary() {
		lines = append(lines, label(l.Category.Title())+": "+l.Value)
	}
	return lines
}

func report(result *scaffold.Result, root string) {
	output.Println("")
	output.Print(result.Tree(filepath.Base(root)))
	output.Println(output.FormatCheckmark("Project ready!"))

	cdPath := root
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, root); err == nil {
			cdPath = rel
		}
	}

	output.Println("")
	output.Println("Next steps:")
	for _, line := range result.NextSteps(cdPath) {
		output.Println("  " + line)
	}
	output.Println("")
	output.Println("Get creative and happy building ✨")
}
