// Package jsx is a narrow, lossless syntax model for TSX/JSX source files.
//
// It records only what source rewriting needs: top-level import
// declarations, top-level declaration names, the default export, and JSX
// element trees with byte spans. Everything else is skipped over. Edits are
// spliced into the original text, so formatting and comments survive.
package jsx

// Import is a top-level import declaration.
type Import struct {
	// Start and End delimit the declaration, including a trailing semicolon.
	Start, End int

	Source    string
	Default   string
	Namespace string
	Named     []string
	TypeOnly  bool

	// Quote is the quote character used for the source string.
	Quote        byte
	HasSemicolon bool
}

// DefaultExportKind classifies the shape of a default export.
type DefaultExportKind int

const (
	// ExportFunction is `export default function Name`.
	ExportFunction DefaultExportKind = iota + 1
	// ExportClass is `export default class Name`.
	ExportClass
	// ExportIdentifier is `export default Name` or `export { Name as default }`.
	ExportIdentifier
	// ExportAnonymous is any default export without a resolvable name.
	ExportAnonymous
)

// DefaultExport describes the file's default export.
type DefaultExport struct {
	Kind  DefaultExportKind
	Name  string
	Start int
}

// Element is a JSX element or fragment.
type Element struct {
	// Name is the tag name, empty for fragments.
	Name string

	// Start and End delimit the whole element.
	Start, End int

	// OpenEnd is the offset just past the opening tag. CloseStart is the
	// offset of the closing tag. Both equal End for self-closing elements.
	OpenEnd    int
	CloseStart int

	SelfClosing bool

	// Children are elements nested directly in the element body.
	Children []*Element

	// Embedded are elements found inside expression containers of the
	// opening tag or body, such as {cond && <A />}.
	Embedded []*Element

	Parent *Element
}

// IsFragment reports whether e is a <>...</> fragment.
func (e *Element) IsFragment() bool {
	return e.Name == ""
}

// File is a parsed source file.
type File struct {
	Src []byte

	Imports []*Import

	// Decls are names of top-level function, class, and variable declarations.
	Decls []string

	DefaultExport *DefaultExport

	// Elements are the outermost JSX elements in document order.
	Elements []*Element
}

// Binds reports whether the import introduces the local name.
func (imp *Import) Binds(name string) bool {
	if imp.Default == name || imp.Namespace == name {
		return true
	}
	for _, n := range imp.Named {
		if n == name {
			return true
		}
	}
	return false
}

// Imported reports whether an import of source binds name.
func (f *File) Imported(source, name string) bool {
	for _, imp := range f.Imports {
		if imp.Source == source && imp.Binds(name) {
			return true
		}
	}
	return false
}

// HasDecl reports whether name is declared at the top level.
func (f *File) HasDecl(name string) bool {
	for _, d := range f.Decls {
		if d == name {
			return true
		}
	}
	return false
}

// Walk visits every element depth-first in document order. Returning false
// from fn skips the element's descendants.
func (f *File) Walk(fn func(*Element) bool) {
	for _, el := range f.Elements {
		walk(el, fn)
	}
}

func walk(el *Element, fn func(*Element) bool) {
	if !fn(el) {
		return
	}
	for _, child := range sortedDescendants(el) {
		walk(child, fn)
	}
}

// sortedDescendants merges Children and Embedded by start offset.
func sortedDescendants(el *Element) []*Element {
	if len(el.Embedded) == 0 {
		return el.Children
	}
	out := make([]*Element, 0, len(el.Children)+len(el.Embedded))
	i, j := 0, 0
	for i < len(el.Children) || j < len(el.Embedded) {
		switch {
		case j >= len(el.Embedded):
			out = append(out, el.Children[i])
			i++
		case i >= len(el.Children) || el.Embedded[j].Start < el.Children[i].Start:
			out = append(out, el.Embedded[j])
			j++
		default:
			out = append(out, el.Children[i])
			i++
		}
	}
	return out
}

// FindAll returns every element with the given tag name in document order.
func (f *File) FindAll(name string) []*Element {
	var out []*Element
	f.Walk(func(el *Element) bool {
		if el.Name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}
