package transform

import (
	"fmt"
	"strings"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/jsx"
)

// RootUIFile is the root UI component, relative to the project root.
const RootUIFile = "src/App.tsx"

// ApplyRootUI imports every planned component after the last existing
// import and appends its element to each matching marker element.
// Imports whose source is already imported are skipped; the element is
// still rendered.
func ApplyRootUI(src []byte, plan *Plan) ([]byte, error) {
	if plan.Empty() {
		return src, nil
	}

	f, err := jsx.Parse(src)
	if err != nil {
		return nil, templateError(ErrSyntax, err.Error(), RootUIFile, nil)
	}

	ed := jsx.NewEditor(f)

	for _, marker := range plan.Markers() {
		injections := plan.ForMarker(marker)
		if err := appendToMarker(f, ed, marker, injections); err != nil {
			return nil, err
		}
	}

	existing := make(map[string]bool, len(f.Imports))
	for _, imp := range f.Imports {
		existing[imp.Source] = true
	}
	var specs []jsx.ImportSpec
	for _, inj := range plan.Injections {
		if existing[inj.Source] {
			continue
		}
		existing[inj.Source] = true
		specs = append(specs, inj.ImportSpec())
	}
	ed.AddImports(specs)

	out, err := ed.Bytes()
	if err != nil {
		return nil, templateError(ErrSyntax, err.Error(), RootUIFile, nil)
	}
	return out, nil
}

func appendToMarker(f *jsx.File, ed *jsx.Editor, marker catalog.InsertionPoint, injections []Injection) error {
	elements := f.FindAll(marker.Element())
	if len(elements) == 0 {
		ids := make([]string, 0, len(injections))
		for _, inj := range injections {
			ids = append(ids, inj.ModuleID)
		}
		return templateError(ErrMarkerNotFound,
			fmt.Sprintf("no <%s> element to insert demo components into", marker.Element()),
			RootUIFile,
			map[string]string{"Marker": string(marker), "Modules": strings.Join(ids, ", ")})
	}

	snippets := make([]string, 0, len(injections))
	for _, inj := range injections {
		snippets = append(snippets, inj.Element())
	}
	for _, el := range elements {
		ed.AppendChildren(el, snippets)
	}
	return nil
}

// InsertTagChildren appends snippets as children of every element named
// tag. It is the structural counterpart of a plain text insertion and
// handles nested and repeated markers.
func InsertTagChildren(src, tag string, snippets []string) (string, error) {
	f, err := jsx.Parse([]byte(src))
	if err != nil {
		return "", templateError(ErrSyntax, err.Error(), "", nil)
	}

	elements := f.FindAll(tag)
	if len(elements) == 0 {
		return "", templateError(ErrMarkerNotFound, fmt.Sprintf("no <%s> element", tag), "", nil)
	}

	ed := jsx.NewEditor(f)
	for _, el := range elements {
		ed.AppendChildren(el, snippets)
	}
	out, err := ed.Bytes()
	if err != nil {
		return "", templateError(ErrSyntax, err.Error(), "", nil)
	}
	return string(out), nil
}
