package transform

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/reactcreative/cli/internal/jsx"
)

// componentExts are the extensions of files that may hold a fragment's component.
var componentExts = map[string]bool{".tsx": true, ".jsx": true}

// ExtractExportName returns the name of the default-exported symbol:
// the declared name of a function or class declaration, or the identifier
// of `export default X` and `export { X as default }`.
func ExtractExportName(src []byte) (string, error) {
	f, err := jsx.Parse(src)
	if err != nil {
		return "", err
	}
	if f.DefaultExport == nil {
		return "", ErrNoDefaultExport
	}
	if f.DefaultExport.Kind == jsx.ExportAnonymous {
		return "", ErrUnnamedExport
	}
	return f.DefaultExport.Name, nil
}

// FindComponentFile returns the single component file directly inside dir.
// Zero or several candidates is an error naming dir.
func FindComponentFile(fsys fs.FS, dir string) (string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", templateError(ErrFragmentCardinality, "cannot read fragment directory: "+err.Error(), dir, nil)
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() || !componentExts[path.Ext(e.Name())] {
			continue
		}
		found = append(found, e.Name())
	}
	sort.Strings(found)

	if len(found) != 1 {
		ctx := map[string]string{"Found": "none"}
		if len(found) > 0 {
			ctx["Found"] = strings.Join(found, ", ")
		}
		return "", templateError(ErrFragmentCardinality,
			"expected exactly one .tsx or .jsx component file in fragment directory", dir, ctx)
	}
	return path.Join(dir, found[0]), nil
}
