// Package prompt asks the user for the values a scaffolding run needs.
package prompt

import (
	"context"

	"github.com/reactcreative/cli/internal/catalog"
)

// DefaultProjectName is used when the project name prompt is left empty.
const DefaultProjectName = "react-creative"

// Overwrite is the choice made for a non-empty target directory.
type Overwrite string

// Overwrite choices.
const (
	OverwriteCancel Overwrite = "cancel"
	OverwriteRemove Overwrite = "remove"
	OverwriteIgnore Overwrite = "ignore"
)

// Overwrites returns every choice in menu order.
func Overwrites() []Overwrite {
	return []Overwrite{OverwriteCancel, OverwriteRemove, OverwriteIgnore}
}

// Label returns the menu text of the choice.
func (o Overwrite) Label() string {
	switch o {
	case OverwriteCancel:
		return "Cancel operation"
	case OverwriteRemove:
		return "Remove existing files and continue"
	case OverwriteIgnore:
		return "Ignore files and continue"
	default:
		return string(o)
	}
}

// Valid reports whether o is a known choice.
func (o Overwrite) Valid() bool {
	switch o {
	case OverwriteCancel, OverwriteRemove, OverwriteIgnore:
		return true
	}
	return false
}

// Prompter collects run parameters. Implementations return an error
// wrapping errors.ErrCancelled when the user aborts.
type Prompter interface {
	// ProjectName asks for the target directory.
	ProjectName(ctx context.Context, defaultName string) (string, error)

	// Overwrite asks how to treat the non-empty directory dir.
	Overwrite(ctx context.Context, dir string) (Overwrite, error)

	// PackageName asks for a valid package name, offering suggested.
	PackageName(ctx context.Context, suggested string) (string, error)

	// Selection asks for one choice per category.
	Selection(ctx context.Context, cat *catalog.Catalog) (catalog.Selection, error)
}
