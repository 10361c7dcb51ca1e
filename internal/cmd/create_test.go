package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/prompt"
)

func choices(animation string) catalog.Choices {
	return catalog.Choices{Animation: animation}
}

func TestResolveTargetDir(t *testing.T) {
	ctx := context.Background()
	p := prompt.NewStatic(prompt.Answers{ProjectName: "from-prompt/"})

	dir, err := resolveTargetDir(ctx, p, []string{"  my-app//  "})
	require.NoError(t, err)
	assert.Equal(t, "my-app", dir)

	dir, err = resolveTargetDir(ctx, p, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-prompt", dir)

	_, err = resolveTargetDir(ctx, p, []string{"   "})
	assert.Error(t, err)
}

func TestResolveManager(t *testing.T) {
	t.Setenv(userAgentEnv, "yarn/4.0.0 npm/? node/v20")

	m, err := resolveManager("")
	require.NoError(t, err)
	assert.Equal(t, "yarn", m.Name)

	m, err = resolveManager("bun")
	require.NoError(t, err)
	assert.Equal(t, "bun", m.Name)
}

func TestSummaryLines(t *testing.T) {
	cat := catalog.Default()
	sel, err := cat.FindByTemplateName("popular")
	require.NoError(t, err)

	lines := summaryLines("my-app", sel)
	require.Len(t, lines, 2+len(catalog.Categories()))
	assert.Contains(t, lines[0], "my-app")
	assert.Contains(t, lines[1], "Tailwind")
	assert.Contains(t, lines[2], "GSAP")
	assert.Contains(t, lines[5], "None")
}

func TestPresetHelp(t *testing.T) {
	help := presetHelp(catalog.Default())
	assert.Contains(t, help, "popular")
	assert.Contains(t, help, "Zustand")
	assert.Contains(t, help, "lenis")
}
