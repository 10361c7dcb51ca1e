package templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreRules(t *testing.T) {
	rules := ParseIgnore([]byte(`# comment

node_modules
*.log
/build
dist/
docs/*.md
.vscode/*
!.vscode/extensions.json
\#literal
`))

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  bool
	}{
		{"plain name at root", "node_modules", true, true},
		{"plain name nested", "packages/a/node_modules", true, true},
		{"file inside ignored dir", "node_modules/react/index.js", false, true},
		{"glob at any depth", "logs/debug.log", false, true},
		{"anchored matches root", "build", true, true},
		{"anchored skips nested", "src/build", true, false},
		{"dir-only skips file", "dist", false, false},
		{"dir-only matches dir", "dist", true, true},
		{"file under dir-only rule", "dist/index.js", false, true},
		{"pattern with slash is anchored", "docs/intro.md", false, true},
		{"pattern with slash nested", "src/docs/intro.md", false, false},
		{"negation re-includes", ".vscode/extensions.json", false, false},
		{"negation leaves siblings", ".vscode/settings.json", false, true},
		{"escaped hash", "#literal", false, true},
		{"unmatched", "src/App.tsx", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Ignored(tt.path, tt.isDir))
		})
	}
}

func TestIgnoreRules_Empty(t *testing.T) {
	var nilRules *IgnoreRules
	assert.False(t, nilRules.Ignored("anything", false))
	assert.Equal(t, 0, ParseIgnore(nil).Len())
	assert.Equal(t, 0, ParseIgnore([]byte("# only comments\n\n")).Len())
}

func TestIgnoreRules_InvalidPatternSkipped(t *testing.T) {
	rules := ParseIgnore([]byte("[unclosed\n*.tmp\n"))
	assert.Equal(t, 1, rules.Len())
	assert.True(t, rules.Ignored("a.tmp", false))
}

func TestIgnoreRules_EmbeddedTemplate(t *testing.T) {
	data, err := fs.ReadFile(FS(), IgnoreFile)
	require.NoError(t, err)

	rules := ParseIgnore(data)
	assert.True(t, rules.Ignored("node_modules", true))
	assert.False(t, rules.Ignored("src/App.tsx", false))
	assert.False(t, rules.Ignored(IgnoreFile, false))
}
