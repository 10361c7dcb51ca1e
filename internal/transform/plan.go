package transform

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/jsx"
)

// AliasPrefix is the path alias of the project's src directory.
const AliasPrefix = "@/"

// Alias returns the import source of a file copied into dest under src,
// without its extension. rel is relative to the fragment directory, so
// subdirectories of the fragment are kept.
func Alias(dest, rel string) string {
	return AliasPrefix + path.Join(dest, strings.TrimSuffix(rel, path.Ext(rel)))
}

// Injection is one demo component to import and render.
type Injection struct {
	ModuleID string
	Marker   catalog.InsertionPoint

	// Name is the component's exported symbol.
	Name string

	// Source is the aliased import source of the copied component file.
	Source string

	// File is the component file inside the template.
	File string
}

// Element returns the zero-argument self-closing element reference.
func (i Injection) Element() string {
	return "<" + i.Name + " />"
}

// ImportSpec returns the default import of the component.
func (i Injection) ImportSpec() jsx.ImportSpec {
	return jsx.ImportSpec{Default: i.Name, Source: i.Source}
}

// Plan lists the injections of one run in selection order.
type Plan struct {
	Injections []Injection
}

// Empty reports whether the plan has nothing to inject.
func (p *Plan) Empty() bool {
	return p == nil || len(p.Injections) == 0
}

// Markers returns the distinct markers used by the plan, in first-use order.
func (p *Plan) Markers() []catalog.InsertionPoint {
	var out []catalog.InsertionPoint
	seen := make(map[catalog.InsertionPoint]bool)
	for _, inj := range p.Injections {
		if !seen[inj.Marker] {
			seen[inj.Marker] = true
			out = append(out, inj.Marker)
		}
	}
	return out
}

// ForMarker returns the injections grouped under a marker, in selection order.
func (p *Plan) ForMarker(marker catalog.InsertionPoint) []Injection {
	var out []Injection
	for _, inj := range p.Injections {
		if inj.Marker == marker {
			out = append(out, inj)
		}
	}
	return out
}

// BuildPlan resolves the demo fragment of each module under demoRoot in
// fsys. Modules without a demo are skipped.
func BuildPlan(fsys fs.FS, demoRoot string, modules []catalog.Module) (*Plan, error) {
	plan := &Plan{}
	for _, m := range modules {
		if !m.HasDemo() {
			continue
		}

		dir := path.Join(demoRoot, m.Demo.SourceDirectory)
		file, err := FindComponentFile(fsys, dir)
		if err != nil {
			return nil, err
		}

		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading fragment %s: %w", file, err)
		}

		name, err := ExtractExportName(src)
		if err != nil {
			return nil, exportError(err, file, m.ID)
		}

		plan.Injections = append(plan.Injections, Injection{
			ModuleID: m.ID,
			Marker:   m.Demo.InsertionPoint,
			Name:     name,
			Source:   Alias(m.Demo.DestinationDirectory, strings.TrimPrefix(file, dir+"/")),
			File:     file,
		})
	}
	return plan, nil
}

func exportError(err error, file, moduleID string) error {
	ctx := map[string]string{"Module": moduleID}
	switch {
	case errors.Is(err, ErrNoDefaultExport), errors.Is(err, ErrUnnamedExport):
		return templateError(err, "cannot resolve the fragment's exported component name", file, ctx)
	default:
		return templateError(ErrSyntax, err.Error(), file, ctx)
	}
}
