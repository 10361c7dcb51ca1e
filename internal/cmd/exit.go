package cmd

import (
	"errors"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: names, flags or config.
	ExitValidationError = 2

	// ExitTemplateError indicates a defect in the bundled template or catalog.
	ExitTemplateError = 3

	// ExitConflict indicates a destination file already exists.
	ExitConflict = 4

	// ExitNotFound indicates a missing template directory, file or config.
	ExitNotFound = 5

	// ExitExternalError indicates the package manager failed.
	ExitExternalError = 6

	// ExitCancelled indicates the user aborted the run.
	ExitCancelled = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTemplateError:
		return "Template Error"
	case ExitConflict:
		return "Conflict"
	case ExitNotFound:
		return "Not Found"
	case ExitExternalError:
		return "External Error"
	case ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrCancelled):
		return ExitCancelled
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrTemplate):
		return ExitTemplateError
	case errors.Is(err, oerrors.ErrConflict):
		return ExitConflict
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrExternal):
		return ExitExternalError
	default:
		return ExitGeneralError
	}
}
