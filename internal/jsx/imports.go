package jsx

import "strings"

// ImportSpec describes an import declaration to synthesize.
type ImportSpec struct {
	Default string
	Named   []string
	Source  string
}

// importStyle returns the quote and semicolon convention of the file's
// existing imports, defaulting to single quotes with semicolons.
func (f *File) importStyle() (quote byte, semicolon bool) {
	if len(f.Imports) == 0 {
		return '\'', true
	}
	last := f.Imports[len(f.Imports)-1]
	return last.Quote, last.HasSemicolon
}

// format renders the import with the given quote and semicolon style.
func (s ImportSpec) format(quote byte, semicolon bool) string {
	var b strings.Builder
	b.WriteString("import ")
	if s.Default != "" {
		b.WriteString(s.Default)
		if len(s.Named) > 0 {
			b.WriteString(", ")
		}
	}
	if len(s.Named) > 0 {
		b.WriteString("{ ")
		b.WriteString(strings.Join(s.Named, ", "))
		b.WriteString(" }")
	}
	if s.Default != "" || len(s.Named) > 0 {
		b.WriteString(" from ")
	}
	b.WriteByte(quote)
	b.WriteString(s.Source)
	b.WriteByte(quote)
	if semicolon {
		b.WriteByte(';')
	}
	return b.String()
}

// AddImports inserts specs after the last top-level import, or at the top
// of the file followed by a blank line when there are none. Specs are not
// deduplicated here.
func (e *Editor) AddImports(specs []ImportSpec) {
	if len(specs) == 0 {
		return
	}
	f := e.file
	quote, semicolon := f.importStyle()

	lines := make([]string, 0, len(specs))
	for _, s := range specs {
		lines = append(lines, s.format(quote, semicolon))
	}

	if len(f.Imports) == 0 {
		e.Insert(0, strings.Join(lines, "\n")+"\n\n")
		return
	}
	last := f.Imports[len(f.Imports)-1]
	e.Insert(last.End, "\n"+strings.Join(lines, "\n"))
}
