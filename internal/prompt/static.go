package prompt

import (
	"context"

	"github.com/reactcreative/cli/internal/catalog"
)

// Answers are fixed prompt results. Zero fields fall back to the prompt's
// default.
type Answers struct {
	ProjectName string
	Overwrite   Overwrite
	PackageName string
	Choices     catalog.Choices
}

// Static answers every prompt from Answers without reading input. It backs
// non-interactive runs.
type Static struct {
	Answers Answers
}

// NewStatic creates a prompter that always returns a.
func NewStatic(a Answers) *Static {
	return &Static{Answers: a}
}

// ProjectName implements Prompter.
func (s *Static) ProjectName(_ context.Context, defaultName string) (string, error) {
	if s.Answers.ProjectName != "" {
		return s.Answers.ProjectName, nil
	}
	return defaultName, nil
}

// Overwrite implements Prompter. Without an answer the run is cancelled.
func (s *Static) Overwrite(_ context.Context, _ string) (Overwrite, error) {
	if s.Answers.Overwrite.Valid() {
		return s.Answers.Overwrite, nil
	}
	return OverwriteCancel, nil
}

// PackageName implements Prompter.
func (s *Static) PackageName(_ context.Context, suggested string) (string, error) {
	if s.Answers.PackageName != "" {
		return s.Answers.PackageName, nil
	}
	return suggested, nil
}

// Selection implements Prompter.
func (s *Static) Selection(_ context.Context, cat *catalog.Catalog) (catalog.Selection, error) {
	return cat.Resolve(s.Answers.Choices)
}
