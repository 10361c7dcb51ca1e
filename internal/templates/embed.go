// Package templates provides the embedded project template and copies it
// into a target directory.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

//go:embed all:template
var embedded embed.FS

const (
	// ManifestFile is the template's package manifest, rewritten per run.
	ManifestFile = "package.json"

	// LockFile is never copied; the package manager regenerates it.
	LockFile = "package-lock.json"

	// DemoRoot holds the demo fragment directories.
	DemoRoot = "src/demo"

	// IgnoreFile holds gitignore-style rules for the bulk copy.
	IgnoreFile = "_gitignore"

	// ReadmeTemplate is rendered into README.md.
	ReadmeTemplate = "README.md.tmpl"
)

// renames maps template file names to their names in the generated project.
var renames = map[string]string{
	"_gitignore": ".gitignore",
}

// FS returns the built-in template tree.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "template")
	if err != nil {
		panic(fmt.Sprintf("embedded template: %v", err))
	}
	return sub
}

// Source returns the template tree rooted at dir, or the built-in tree when
// dir is empty.
func Source(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, oerrors.NewNotFoundError("template directory does not exist", dir,
			"Check --template-dir or the templateDir config key")
	}
	if err != nil {
		return nil, fmt.Errorf("checking template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("template path is not a directory", dir, "")
	}
	return os.DirFS(dir), nil
}

// RenamedPath returns the destination name of a template path.
func RenamedPath(rel string) string {
	to, ok := renames[path.Base(rel)]
	if !ok {
		return rel
	}
	return path.Join(path.Dir(rel), to)
}
