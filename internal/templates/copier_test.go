package templates

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

func templateFS() fstest.MapFS {
	return fstest.MapFS{
		"_gitignore":                   {Data: []byte("node_modules\n*.log\n")},
		"package.json":                 {Data: []byte(`{"name":"base"}`)},
		"package-lock.json":            {Data: []byte(`{}`)},
		"README.md.tmpl":               {Data: []byte("# {{ .ProjectName }}\n")},
		"index.html":                   {Data: []byte("<html></html>")},
		"debug.log":                    {Data: []byte("noise")},
		"node_modules/x/index.js":      {Data: []byte("module")},
		"src/App.tsx":                  {Data: []byte("export default App;")},
		"src/demo/a/AnimationDemo.tsx": {Data: []byte("export default function AnimationDemo() {}")},
		"src/demo/s/StateDemo.tsx":     {Data: []byte("export default function StateDemo() {}")},
		"src/demo/s/stores/state.ts":   {Data: []byte("export const store = {};")},
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestReserved(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"package.json", true},
		{"package-lock.json", true},
		{"README.md.tmpl", true},
		{"src/demo", true},
		{"src/demo/a/AnimationDemo.tsx", true},
		{"src/demonstration.tsx", false},
		{"src/App.tsx", false},
		{"nested/package.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Reserved(tt.path))
		})
	}
}

func TestCopyTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "app")
	c, err := NewCopier(templateFS(), dest)
	require.NoError(t, err)

	require.NoError(t, c.CopyTemplate())

	assert.ElementsMatch(t, []string{".gitignore", "index.html", "src/App.tsx"}, c.Written())
	assert.Equal(t, "node_modules\n*.log\n", readFile(t, dest, ".gitignore"))
	assert.Equal(t, "export default App;", readFile(t, dest, "src/App.tsx"))

	for _, absent := range []string{"_gitignore", "package.json", "package-lock.json", "README.md.tmpl", "debug.log", "node_modules", "src/demo"} {
		assert.NoFileExists(t, filepath.Join(dest, absent), absent)
		assert.NoDirExists(t, filepath.Join(dest, absent), absent)
	}
}

func TestCopyTemplate_ConflictAborts(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "index.html"), []byte("mine"), 0o644))

	c, err := NewCopier(templateFS(), dest)
	require.NoError(t, err)

	err = c.CopyTemplate()
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConflict)
	assert.Contains(t, err.Error(), "index.html")
	assert.Equal(t, "mine", readFile(t, dest, "index.html"))
}

func TestCopyTemplate_MissingSource(t *testing.T) {
	src := fstest.MapFS{"other/file": {Data: []byte("x")}}
	c, err := NewCopier(src, t.TempDir())
	require.NoError(t, err)

	err = c.CopyDir("missing", "dest")
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestWriteFile(t *testing.T) {
	dest := t.TempDir()
	c, err := NewCopier(templateFS(), dest)
	require.NoError(t, err)

	t.Run("copies from source", func(t *testing.T) {
		require.NoError(t, c.WriteFile("index.html", nil))
		assert.Equal(t, "<html></html>", readFile(t, dest, "index.html"))
	})

	t.Run("copy onto existing file conflicts", func(t *testing.T) {
		err := c.WriteFile("index.html", nil)
		assert.ErrorIs(t, err, oerrors.ErrConflict)
	})

	t.Run("explicit content overwrites", func(t *testing.T) {
		require.NoError(t, c.WriteFile("index.html", []byte("<html>new</html>")))
		assert.Equal(t, "<html>new</html>", readFile(t, dest, "index.html"))
	})

	t.Run("explicit content applies renames", func(t *testing.T) {
		require.NoError(t, c.WriteFile("_gitignore", []byte("ignored")))
		assert.Equal(t, "ignored", readFile(t, dest, ".gitignore"))
	})

	t.Run("explicit empty content writes an empty file", func(t *testing.T) {
		require.NoError(t, c.WriteFile("empty.txt", []byte{}))
		assert.Equal(t, "", readFile(t, dest, "empty.txt"))
	})

	t.Run("missing source file", func(t *testing.T) {
		err := c.WriteFile("nope.txt", nil)
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	assert.Equal(t, []string{"index.html", ".gitignore", "empty.txt"}, c.Written())
}

func TestCopyDir(t *testing.T) {
	dest := t.TempDir()
	c, err := NewCopier(templateFS(), dest)
	require.NoError(t, err)

	require.NoError(t, c.CopyDir("src/demo/s", "src/components"))
	assert.Equal(t, "export default function StateDemo() {}", readFile(t, dest, "src/components/StateDemo.tsx"))
	assert.Equal(t, "export const store = {};", readFile(t, dest, "src/components/stores/state.ts"))

	require.NoError(t, c.CopyDir("src/demo/a", "src/components"))
	assert.FileExists(t, filepath.Join(dest, "src/components/AnimationDemo.tsx"))

	err = c.CopyDir("src/demo/s", "src/components")
	assert.ErrorIs(t, err, oerrors.ErrConflict)
}

func TestNewCopier_NoIgnoreFile(t *testing.T) {
	src := fstest.MapFS{"debug.log": {Data: []byte("kept")}}
	dest := t.TempDir()

	c, err := NewCopier(src, dest)
	require.NoError(t, err)
	require.NoError(t, c.CopyTemplate())
	assert.Equal(t, "kept", readFile(t, dest, "debug.log"))
}

func TestCopyTemplate_EmbeddedTree(t *testing.T) {
	dest := t.TempDir()
	c, err := NewCopier(FS(), dest)
	require.NoError(t, err)
	require.NoError(t, c.CopyTemplate())

	written := c.Written()
	assert.Contains(t, written, ".gitignore")
	assert.Contains(t, written, "src/App.tsx")
	assert.Contains(t, written, "src/main.tsx")
	assert.NotContains(t, written, "package.json")
	for _, w := range written {
		assert.False(t, Reserved(w), w)
	}
}
