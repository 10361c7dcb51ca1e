package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Runner executes an external command in a directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ProcessError reports a failed external command. It matches
// errors.ErrExternal.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Command)
	if e.ExitCode > 0 {
		msg = fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() []error {
	return []error{oerrors.ErrExternal, e.Err}
}

// ExecRunner runs commands with os/exec. Stdout goes to Stdout when set;
// stderr is captured for the error.
type ExecRunner struct {
	Stdout io.Writer
}

// Run executes name with args in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		perr := &ProcessError{
			Command: strings.Join(append([]string{name}, args...), " "),
			Stderr:  stderr.String(),
			Err:     err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		return perr
	}
	return nil
}
