package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/manifest"
	"github.com/reactcreative/cli/internal/output"
)

// ErrNotInstalled is returned when the package manager binary is missing.
var ErrNotInstalled = errors.New("package manager not installed")

// LookPath finds a binary; replaced in tests.
var LookPath = exec.LookPath

// Installer installs an InstallSet with a package manager.
type Installer struct {
	Manager Manager
	Runner  Runner
}

// NewInstaller creates an installer running m through os/exec.
func NewInstaller(m Manager) *Installer {
	return &Installer{Manager: m, Runner: &ExecRunner{}}
}

// EnsureAvailable checks that the manager's binary is on PATH and answers
// --version.
func (i *Installer) EnsureAvailable(ctx context.Context, dir string) error {
	if _, err := LookPath(i.Manager.Name); err != nil {
		return &oerrors.DetailError{
			Type:    "package manager not found",
			Message: fmt.Sprintf("%s is not installed or not on PATH", i.Manager.Name),
			Hint:    "Install it, choose another with --package-manager, or pass --no-install",
			Cause:   fmt.Errorf("%w: %w", ErrNotInstalled, oerrors.ErrExternal),
		}
	}
	if err := i.Runner.Run(ctx, dir, i.Manager.Name, "--version"); err != nil {
		return fmt.Errorf("checking %s: %w", i.Manager.Name, err)
	}
	return nil
}

// Install adds the set's runtime packages, then its devDependencies, in dir.
func (i *Installer) Install(ctx context.Context, dir string, set manifest.InstallSet) error {
	if set.Empty() {
		output.Debug("nothing to install")
		return nil
	}
	if err := i.EnsureAvailable(ctx, dir); err != nil {
		return err
	}

	if len(set.Deps) > 0 {
		args := i.Manager.AddArgs(set.Deps, false)
		output.Debug("installing dependencies", "manager", i.Manager.Name, "args", args)
		if err := i.Runner.Run(ctx, dir, i.Manager.Name, args...); err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
	}
	if len(set.DevDeps) > 0 {
		args := i.Manager.AddArgs(set.DevDeps, true)
		output.Debug("installing devDependencies", "manager", i.Manager.Name, "args", args)
		if err := i.Runner.Run(ctx, dir, i.Manager.Name, args...); err != nil {
			return fmt.Errorf("installing devDependencies: %w", err)
		}
	}
	return nil
}
