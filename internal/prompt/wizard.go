package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
	"github.com/reactcreative/cli/internal/templates"
)

// Wizard prompts on the terminal with huh forms.
type Wizard struct {
	// Accessible switches huh to plain line-based prompts.
	Accessible bool
}

// NewWizard creates a terminal prompter.
func NewWizard() *Wizard {
	return &Wizard{}
}

// ProjectName implements Prompter.
func (w *Wizard) ProjectName(ctx context.Context, defaultName string) (string, error) {
	var name string
	input := huh.NewInput().
		Title("Project name:").
		Placeholder(defaultName).
		Value(&name).
		Validate(validateProjectName)

	if err := w.run(ctx, huh.NewGroup(input)); err != nil {
		return "", err
	}
	if name == "" {
		return defaultName, nil
	}
	return templates.FormatTargetDir(name), nil
}

// Overwrite implements Prompter.
func (w *Wizard) Overwrite(ctx context.Context, dir string) (Overwrite, error) {
	choice := OverwriteCancel

	options := make([]huh.Option[Overwrite], 0, len(Overwrites()))
	for _, o := range Overwrites() {
		options = append(options, huh.NewOption(o.Label(), o))
	}
	sel := huh.NewSelect[Overwrite]().
		Title(OverwriteTitle(dir)).
		Options(options...).
		Value(&choice)

	if err := w.run(ctx, huh.NewGroup(sel)); err != nil {
		return "", err
	}
	return choice, nil
}

// OverwriteTitle is the question asked for a non-empty directory.
func OverwriteTitle(dir string) string {
	target := fmt.Sprintf("Target directory %q", dir)
	if dir == "." {
		target = "Current directory"
	}
	return target + " is not empty. Please choose how to proceed:"
}

// PackageName implements Prompter.
func (w *Wizard) PackageName(ctx context.Context, suggested string) (string, error) {
	var name string
	input := huh.NewInput().
		Title("Package name:").
		Placeholder(suggested).
		Value(&name).
		Validate(validatePackageName)

	if err := w.run(ctx, huh.NewGroup(input)); err != nil {
		return "", err
	}
	if name == "" {
		return suggested, nil
	}
	return name, nil
}

// Selection implements Prompter. The React Three helpers are only offered
// when react-three-fiber is chosen.
func (w *Wizard) Selection(ctx context.Context, cat *catalog.Catalog) (catalog.Selection, error) {
	ch := catalog.Choices{
		Animation:       catalog.NoneID,
		StateManagement: catalog.NoneID,
		Three:           catalog.NoneID,
	}

	groups := []*huh.Group{
		huh.NewGroup(
			singleSelect(cat, catalog.CategoryAnimation, "Choose an animation library:", &ch.Animation),
			singleSelect(cat, catalog.CategoryStateManagement, "Choose a state management library:", &ch.StateManagement),
			singleSelect(cat, catalog.CategoryThree, "Add 3D graphics library?", &ch.Three),
		),
		huh.NewGroup(
			multiSelect(cat, catalog.CategoryReactThree, "Add React Three helpers?", &ch.ReactThree),
		).WithHideFunc(func() bool {
			return ch.Three != "react-three-fiber"
		}),
		huh.NewGroup(
			multiSelect(cat, catalog.CategoryCreative, "Add creative coding helpers?", &ch.Creative),
		),
	}

	if err := w.run(ctx, groups...); err != nil {
		return catalog.Selection{}, err
	}
	return cat.Resolve(ch)
}

func (w *Wizard) run(ctx context.Context, groups ...*huh.Group) error {
	form := huh.NewForm(groups...).WithAccessible(w.Accessible)
	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return oerrors.Wrap(oerrors.ErrCancelled, "operation cancelled")
	default:
		return fmt.Errorf("prompt: %w", err)
	}
}

func singleSelect(cat *catalog.Catalog, c catalog.Category, title string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(moduleOptions(cat, c)...).
		Value(value)
}

func multiSelect(cat *catalog.Catalog, c catalog.Category, title string, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(moduleOptions(cat, c)...).
		Value(value)
}

func moduleOptions(cat *catalog.Catalog, c catalog.Category) []huh.Option[string] {
	modules := cat.Lookup(c)
	options := make([]huh.Option[string], 0, len(modules))
	for _, m := range modules {
		options = append(options, huh.NewOption(OptionLabel(m), m.ID))
	}
	return options
}

// OptionLabel renders a module's colored label followed by its dimmed hint.
func OptionLabel(m catalog.Module) string {
	label := output.ModuleStyle(m.Display.Color).Render(m.Display.Label)
	hint := m.Display.Hint
	if hint == "" {
		hint = m.Display.Description
	}
	if hint == "" {
		return label
	}
	return label + " " + output.StyleDim.Render(hint)
}

func validateProjectName(s string) error {
	if s != "" && templates.FormatTargetDir(s) == "" {
		return errors.New("invalid project name")
	}
	return nil
}

func validatePackageName(s string) error {
	if s != "" && !templates.IsValidPackageName(s) {
		return errors.New("invalid package.json name")
	}
	return nil
}
