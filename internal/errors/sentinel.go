package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input: project name, package name, target directory.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, fragment, file, or preset was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a destination file already exists.
	ErrConflict = errors.New("conflict")

	// ErrTemplate indicates an inconsistency between the bundled template and the catalog.
	ErrTemplate = errors.New("template defect")

	// ErrExternal indicates an external process (package manager) failed.
	ErrExternal = errors.New("external process failed")

	// ErrCancelled indicates the user aborted the run.
	ErrCancelled = errors.New("operation cancelled")
)
