package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"text/template"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
)

// ReadmeLibrary is one chosen library listed in the README.
type ReadmeLibrary struct {
	Category string
	Label    string
	Docs     string
}

// ReadmeData contains data for README rendering.
type ReadmeData struct {
	// ProjectName is the package name, or the target directory when unset.
	ProjectName string

	// Install is the full install command, e.g. "pnpm install".
	Install string

	// Run is the script runner prefix, e.g. "pnpm run".
	Run string

	Libraries []ReadmeLibrary
}

// NewReadmeData builds README data from a selection.
func NewReadmeData(projectName string, sel catalog.Selection, install, run string) ReadmeData {
	data := ReadmeData{ProjectName: projectName, Install: install, Run: run}
	for _, e := range sel.Entries() {
		for _, m := range e.Modules {
			if m.ID == "" || m.IsNone() {
				continue
			}
			data.Libraries = append(data.Libraries, ReadmeLibrary{
				Category: e.Category.Title(),
				Label:    m.Display.Label,
				Docs:     m.Docs,
			})
		}
	}
	return data
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderReadme renders the template tree's README template.
func RenderReadme(fsys fs.FS, data ReadmeData) ([]byte, error) {
	content, err := fs.ReadFile(fsys, ReadmeTemplate)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewTemplateError("template has no README template", ReadmeTemplate, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ReadmeTemplate, err)
	}

	out, err := NewRenderer(data).RenderFile(ReadmeTemplate, content)
	if err != nil {
		return nil, oerrors.NewTemplateError(err.Error(), ReadmeTemplate, nil)
	}
	return out, nil
}
