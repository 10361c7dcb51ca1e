package cmd

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
	"github.com/reactcreative/cli/internal/pkgmanager"
)

// printRunError prints a failed run in a user-friendly format and returns
// it as an ExitError marked printed, so main does not repeat it.
func printRunError(err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var procErr *pkgmanager.ProcessError
	var detailErr *oerrors.DetailError
	switch {
	case errors.As(err, &procErr):
		output.Error(procErr.Command+" failed", "exitCode", procErr.ExitCode)
		if stderr := strings.TrimSpace(procErr.Stderr); stderr != "" {
			output.Details(stderr)
		}
	case errors.As(err, &detailErr):
		output.Details(detailErr.Error())
	case errors.Is(err, oerrors.ErrCancelled):
		output.Warn("operation cancelled")
	default:
		output.Error(fmt.Sprintf("scaffolding failed: %v", err))
	}

	return &oerrors.ExitError{Err: err, Code: ExitCodeFromError(err), Printed: true}
}
