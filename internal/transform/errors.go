// Package transform rewrites the generated root UI and bootstrap files so
// they import and render the demo fragments of the selected modules.
package transform

import (
	"errors"
	"fmt"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Failure kinds. Every error returned by this package also matches
// oerrors.ErrTemplate: they indicate a defect in the bundled template or
// catalog, not bad user input.
var (
	ErrMarkerNotFound      = errors.New("insertion marker not found")
	ErrEntryPointNotFound  = errors.New("entry point element not found")
	ErrNoDefaultExport     = errors.New("no default export")
	ErrUnnamedExport       = errors.New("default export has no resolvable name")
	ErrFragmentCardinality = errors.New("fragment must contain exactly one component file")
	ErrSyntax              = errors.New("cannot parse source")
)

func templateError(kind error, message, location string, context map[string]string) error {
	return &oerrors.DetailError{
		Type:     "template defect",
		Message:  message,
		Location: location,
		Context:  context,
		Hint:     "This is a bug in create-react-creative, please report it",
		Cause:    fmt.Errorf("%w: %w", kind, oerrors.ErrTemplate),
	}
}
