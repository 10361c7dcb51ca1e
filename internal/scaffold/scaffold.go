// Package scaffold generates a project from the template tree: it copies
// files, resolves dependencies and rewrites the generated sources for a
// selection.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/manifest"
	"github.com/reactcreative/cli/internal/output"
	"github.com/reactcreative/cli/internal/pkgmanager"
	"github.com/reactcreative/cli/internal/templates"
	"github.com/reactcreative/cli/internal/transform"
)

// Step names, in execution order.
const (
	StepCopy      = "copy"
	StepDepends   = "dependencies"
	StepConfigure = "configure"
	StepRootUI    = "root-ui"
)

// Installer installs an install set in a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, set manifest.InstallSet) error
}

// Options configure one scaffolding run.
type Options struct {
	// Root is the project directory. It is created when missing.
	Root string

	// PackageName is written to the manifest and the README.
	PackageName string

	Catalog   *catalog.Catalog
	Selection catalog.Selection

	// Template is the template tree. Nil means the embedded tree.
	Template fs.FS

	// Manager names the install and run commands in the README and the
	// next steps.
	Manager pkgmanager.Manager

	// Installer runs the install. Nil means Manager through os/exec.
	Installer Installer

	// SkipInstall writes the manifest without installing.
	SkipInstall bool
}

// StepResult is the outcome of one step.
type StepResult struct {
	Name   string
	Title  string
	Status string
}

// Result describes a finished or aborted run.
type Result struct {
	Root    string
	Manager pkgmanager.Manager

	// Files are the project-relative paths written, in write order.
	Files []string

	// Descriptions annotate some files in the report tree.
	Descriptions map[string]string

	Steps     []StepResult
	Plan      *transform.Plan
	Installed bool
}

// Scaffolder runs the ordered scaffolding steps.
type Scaffolder struct {
	opts      Options
	installer Installer
	copier    *templates.Copier
	plan      *transform.Plan
	result    *Result
}

// New validates opts and prepares a run.
func New(opts Options) (*Scaffolder, error) {
	if opts.Catalog == nil {
		return nil, errors.New("scaffold: catalog is required")
	}
	if opts.Root == "" {
		return nil, oerrors.NewValidationError("project directory is empty", "", "")
	}
	if opts.Template == nil {
		opts.Template = templates.FS()
	}
	if opts.Manager.Name == "" {
		opts.Manager = pkgmanager.Detect("")
	}

	installer := opts.Installer
	if installer == nil {
		installer = pkgmanager.NewInstaller(opts.Manager)
	}

	return &Scaffolder{
		opts:      opts,
		installer: installer,
		result: &Result{
			Root:         opts.Root,
			Manager:      opts.Manager,
			Descriptions: make(map[string]string),
		},
	}, nil
}

type step struct {
	name  string
	title string
	run   func(ctx context.Context) (string, error)
}

// Run executes the steps in order and stops at the first failure. The
// returned result is never nil; on failure it records how far the run got.
// Files written before a failure are left in place.
func (s *Scaffolder) Run(ctx context.Context) (*Result, error) {
	if err := s.preflight(); err != nil {
		return s.result, err
	}

	steps := []step{
		{StepCopy, "Copying template files", s.copyFiles},
		{StepDepends, "Resolving dependencies", s.resolveDependencies},
		{StepConfigure, "Configuring project files", s.configure},
		{StepRootUI, "Updating " + transform.RootUIFile, s.updateRootUI},
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return s.result, oerrors.Wrap(oerrors.ErrCancelled, err.Error())
		}

		stepLog := output.StepLogger(st.name)
		stepLog.Debug("started")

		var status string
		err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
			var err error
			status, err = st.run(ctx)
			return err
		}, output.WithTitle(st.title+"..."))

		if err != nil {
			if errors.Is(err, transform.ErrEntryPointNotFound) {
				stepLog.Error("bootstrap file has no application root, the bundled template is defective",
					"file", transform.BootstrapFile)
			}
			stepLog.Error("failed", "error", err)
			s.record(st, output.StatusFailed)
			output.Println(output.FormatStepLine(st.title, output.StatusFailed))
			return s.result, err
		}

		stepLog.Debug("succeeded", "status", status)
		s.record(st, status)
		output.Println(output.FormatStepLine(st.title, status))
	}

	return s.result, nil
}

func (s *Scaffolder) record(st step, status string) {
	s.result.Steps = append(s.result.Steps, StepResult{Name: st.name, Title: st.title, Status: status})
	if s.copier != nil {
		s.result.Files = s.copier.Written()
	}
}

// preflight checks the selection against the catalog and the template
// before anything is written.
func (s *Scaffolder) preflight() error {
	if err := s.opts.Selection.Validate(s.opts.Catalog); err != nil {
		return err
	}

	baseline, err := fs.ReadFile(s.opts.Template, templates.ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewTemplateError("template has no package manifest", templates.ManifestFile, nil)
		}
		return fmt.Errorf("reading %s: %w", templates.ManifestFile, err)
	}
	if err := manifest.CheckBaseline(baseline, s.opts.Selection); err != nil {
		return err
	}

	plan, err := transform.BuildPlan(s.opts.Template, templates.DemoRoot, s.opts.Selection.Flatten())
	if err != nil {
		return err
	}
	s.plan = plan
	s.result.Plan = plan

	copier, err := templates.NewCopier(s.opts.Template, s.opts.Root)
	if err != nil {
		return err
	}
	s.copier = copier
	return nil
}

// copyFiles copies the baseline tree, then each selected fragment into
// src/<destination>.
func (s *Scaffolder) copyFiles(_ context.Context) (string, error) {
	if err := s.copier.CopyTemplate(); err != nil {
		return "", err
	}

	for _, m := range s.opts.Selection.Flatten() {
		if !m.HasDemo() {
			continue
		}
		srcDir := path.Join(templates.DemoRoot, m.Demo.SourceDirectory)
		destDir := path.Join("src", m.Demo.DestinationDirectory)

		before := len(s.copier.Written())
		if err := s.copier.CopyDir(srcDir, destDir); err != nil {
			return "", err
		}
		for _, f := range s.copier.Written()[before:] {
			s.result.Descriptions[f] = m.Display.Label
		}
	}
	return output.StatusDone, nil
}

// resolveDependencies writes the manifest and installs the install set.
func (s *Scaffolder) resolveDependencies(ctx context.Context) (string, error) {
	baseline, err := fs.ReadFile(s.opts.Template, templates.ManifestFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", templates.ManifestFile, err)
	}

	out, err := manifest.ComputeManifest(baseline, s.opts.Catalog, s.opts.Selection, s.opts.PackageName)
	if err != nil {
		return "", err
	}
	if err := s.copier.WriteFile(templates.ManifestFile, out); err != nil {
		return "", err
	}
	s.result.Descriptions[templates.ManifestFile] = "dependencies"

	if s.opts.SkipInstall {
		output.Debug("install skipped")
		return output.StatusSkipped, nil
	}

	set := manifest.ComputeInstallSet(s.opts.Selection)
	if err := s.installer.Install(ctx, s.opts.Root, set); err != nil {
		return "", err
	}
	s.result.Installed = true
	return output.StatusDone, nil
}

// configure renders the README and, when the selection needs one, wraps
// the bootstrap file's application root in a store provider.
func (s *Scaffolder) configure(_ context.Context) (string, error) {
	data := templates.NewReadmeData(s.opts.PackageName, s.opts.Selection,
		s.opts.Manager.InstallCommand(), s.opts.Manager.RunCommand())
	readme, err := templates.RenderReadme(s.opts.Template, data)
	if err != nil {
		return "", err
	}
	if err := s.copier.WriteFile("README.md", readme); err != nil {
		return "", err
	}

	m, ok := s.opts.Selection.ProviderModule()
	if !ok {
		return output.StatusDone, nil
	}

	src, err := s.readProjectFile(transform.BootstrapFile)
	if err != nil {
		return "", err
	}
	out, err := transform.ApplyBootstrap(src, *m.Provider, transform.StoreAlias(m))
	if err != nil {
		return "", err
	}
	if err := s.copier.WriteFile(transform.BootstrapFile, out); err != nil {
		return "", err
	}
	s.result.Descriptions[transform.BootstrapFile] = m.Provider.Component
	return output.StatusDone, nil
}

// updateRootUI imports and renders the fragments' components.
func (s *Scaffolder) updateRootUI(_ context.Context) (string, error) {
	if s.plan.Empty() {
		return output.StatusSkipped, nil
	}

	src, err := s.readProjectFile(transform.RootUIFile)
	if err != nil {
		return "", err
	}
	out, err := transform.ApplyRootUI(src, s.plan)
	if err != nil {
		return "", err
	}
	if err := s.copier.WriteFile(transform.RootUIFile, out); err != nil {
		return "", err
	}
	s.result.Descriptions[transform.RootUIFile] = fmt.Sprintf("%d demos", len(s.plan.Injections))
	return output.StatusDone, nil
}

func (s *Scaffolder) readProjectFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.opts.Root, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewTemplateError("generated project is missing a required file", rel, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}
	return data, nil
}
