package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
)

// Reserved reports whether a template path is handled outside the bulk copy.
func Reserved(rel string) bool {
	switch rel {
	case ManifestFile, LockFile, ReadmeTemplate:
		return true
	}
	return rel == DemoRoot || strings.HasPrefix(rel, DemoRoot+"/")
}

// Copier materializes template files under a destination directory.
// Writes are sequential and never roll back; the first error aborts.
type Copier struct {
	src     fs.FS
	dest    string
	ignore  *IgnoreRules
	written []string
}

// NewCopier creates a copier from src into dest. Ignore rules are read from
// the template's IgnoreFile when present.
func NewCopier(src fs.FS, dest string) (*Copier, error) {
	c := &Copier{src: src, dest: dest, ignore: &IgnoreRules{}}

	data, err := fs.ReadFile(src, IgnoreFile)
	switch {
	case err == nil:
		c.ignore = ParseIgnore(data)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", IgnoreFile, err)
	}

	output.Debug("copier ready", "dest", dest, "ignoreRules", c.ignore.Len())
	return c, nil
}

// Dest returns the destination root.
func (c *Copier) Dest() string {
	return c.dest
}

// Written returns the destination-relative paths written so far, in order.
func (c *Copier) Written() []string {
	out := make([]string, len(c.written))
	copy(out, c.written)
	return out
}

// CopyTemplate copies every template file that is neither reserved nor
// ignored, applying the rename table.
func (c *Copier) CopyTemplate() error {
	if err := c.requireDir("."); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.dest, err)
	}

	return fs.WalkDir(c.src, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if Reserved(rel) || c.ignore.Ignored(rel, d.IsDir()) {
			output.Debug("skipping template path", "path", rel)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		return c.WriteFile(rel, nil)
	})
}

// WriteFile writes the template file rel to its renamed destination. With
// nil content the template file is copied and an existing destination is a
// conflict; explicit content replaces whatever is there.
func (c *Copier) WriteFile(rel string, content []byte) error {
	dest := RenamedPath(rel)
	if content != nil {
		return c.put(dest, content)
	}
	return c.copyFile(rel, dest)
}

// CopyDir recursively copies the template directory srcDir to destDir,
// both relative to their roots. Existing destination files are conflicts.
func (c *Copier) CopyDir(srcDir, destDir string) error {
	if err := c.requireDir(srcDir); err != nil {
		return err
	}

	return fs.WalkDir(c.src, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, srcDir+"/")
		return c.copyFile(p, path.Join(destDir, rel))
	})
}

func (c *Copier) requireDir(dir string) error {
	info, err := fs.Stat(c.src, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError("template directory does not exist", dir, "")
	}
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return oerrors.NewNotFoundError("template path is not a directory", dir, "")
	}
	return nil
}

func (c *Copier) copyFile(srcRel, destRel string) error {
	data, err := fs.ReadFile(c.src, srcRel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError("template file does not exist", srcRel, "")
		}
		return fmt.Errorf("reading template file %s: %w", srcRel, err)
	}

	target := filepath.Join(c.dest, filepath.FromSlash(destRel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", destRel, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return oerrors.NewConflictError(target)
		}
		return fmt.Errorf("creating %s: %w", destRel, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", destRel, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", destRel, err)
	}

	c.record(destRel)
	return nil
}

// put replaces destRel atomically through a temporary sibling file.
func (c *Copier) put(destRel string, content []byte) error {
	target := filepath.Join(c.dest, filepath.FromSlash(destRel))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", destRel, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", destRel, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", destRel, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", destRel, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destRel, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("writing %s: %w", destRel, err)
	}

	c.record(destRel)
	return nil
}

func (c *Copier) record(rel string) {
	for _, w := range c.written {
		if w == rel {
			return
		}
	}
	output.Debug("wrote file", "path", rel)
	c.written = append(c.written, rel)
}
