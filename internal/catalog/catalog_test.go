package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	for _, cat := range Categories() {
		assert.NotEmpty(t, c.Lookup(cat), "category %s should have modules", cat)
	}
}

func TestLookup_SingleChoiceStartsWithNone(t *testing.T) {
	c := Default()
	for _, cat := range []Category{CategoryAnimation, CategoryStateManagement, CategoryThree} {
		mods := c.Lookup(cat)
		assert.True(t, mods[0].IsNone(), "category %s", cat)
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	c := Default()

	mods := c.Lookup(CategoryAnimation)
	mods[1].Packages[0] = "mutated"
	mods[1].Demo.SourceDirectory = "mutated"

	again, ok := c.Find(CategoryAnimation, "gsap")
	require.True(t, ok)
	assert.Equal(t, "gsap", again.Packages[0])
	assert.Equal(t, "animation/gsap", again.Demo.SourceDirectory)
}

func TestFind(t *testing.T) {
	c := Default()

	m, ok := c.Find(CategoryThree, "react-three-fiber")
	require.True(t, ok)
	assert.Equal(t, []string{"three", "@types/three", "@react-three/fiber", "@react-three/drei"}, m.Packages)
	assert.Equal(t, InsertionGrid, m.Demo.InsertionPoint)

	_, ok = c.Find(CategoryThree, "babylon")
	assert.False(t, ok)
}

func TestAllPackages_Deduplicated(t *testing.T) {
	pkgs := Default().AllPackages()

	count := 0
	for _, p := range pkgs {
		if p == "three" {
			count++
		}
	}
	assert.Equal(t, 1, count, "three is shared by two modules but listed once")
	assert.Equal(t, "gsap", pkgs[0], "catalog order is preserved")
	assert.Contains(t, pkgs, "lenis")
	assert.Contains(t, pkgs, "leva")
}

func TestDemos(t *testing.T) {
	demos := Default().Demos()
	ids := make([]string, 0, len(demos))
	for _, m := range demos {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "lenis")
	assert.NotContains(t, ids, "leva")
	assert.NotContains(t, ids, "@use-gesture/react")
}

func TestInsertionPoint_Element(t *testing.T) {
	assert.Equal(t, "Grid", InsertionGrid.Element())
	assert.Equal(t, "Effects", InsertionEffects.Element())
	assert.False(t, InsertionPoint("HEADER").Valid())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modules map[Category][]Module
		presets []Preset
	}{
		{
			name: "duplicate id",
			modules: map[Category][]Module{
				CategoryCreative: {{ID: "lenis"}, {ID: "lenis"}},
			},
		},
		{
			name: "single-choice without none",
			modules: map[Category][]Module{
				CategoryAnimation: {{ID: "gsap"}},
			},
		},
		{
			name: "unknown insertion point",
			modules: map[Category][]Module{
				CategoryCreative: {{ID: "lenis", Demo: &Demo{InsertionPoint: "HEADER", SourceDirectory: "a", DestinationDirectory: "b"}}},
			},
		},
		{
			name: "provider without demo",
			modules: map[Category][]Module{
				CategoryCreative: {{ID: "x", Provider: &Provider{Component: "P"}}},
			},
		},
		{
			name: "unknown category",
			modules: map[Category][]Module{
				"audio": {{ID: "tone"}},
			},
		},
		{
			name:    "preset refers to unknown module",
			modules: map[Category][]Module{CategoryAnimation: {none()}},
			presets: []Preset{{Name: "broken", Animation: "gsap"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.modules, tt.presets)
			require.Error(t, err)
			if tt.presets == nil {
				assert.ErrorIs(t, err, oerrors.ErrTemplate)
			}
		})
	}
}

func TestNew_CustomCatalog(t *testing.T) {
	c, err := New(map[Category][]Module{
		CategoryAnimation: {none(), {ID: "a", Packages: []string{"A"}}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, c.AllPackages())
	assert.Empty(t, c.Lookup(CategoryCreative))
	assert.NoError(t, c.Validate())
}
