package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
)

// clearEnv unsets every bound variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envKeys {
		t.Setenv(env, "")
	}
	t.Setenv("CREATIVE_CONFIG", "")
}

func findValue(t *testing.T, s *Settings, key string) ResolvedValue {
	t.Helper()
	for _, v := range s.Values {
		if v.Key == key {
			return v
		}
	}
	t.Fatalf("no resolved value for %s", key)
	return ResolvedValue{}
}

func TestResolve_FlagPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATIVE_PACKAGE_MANAGER", "yarn")

	s, err := Resolve(&Config{PackageManager: "bun"}, FlagValues{PackageManager: "pnpm"})
	require.NoError(t, err)

	assert.Equal(t, "pnpm", s.PackageManager)
	rv := findValue(t, s, KeyPackageManager)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, "yarn", rv.Shadowed[SourceEnv])
	assert.Equal(t, "bun", rv.Shadowed[SourceConfig])
}

func TestResolve_EnvPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATIVE_TEMPLATE", "popular")

	s, err := Resolve(&Config{Template: "other"}, FlagValues{})
	require.NoError(t, err)

	assert.Equal(t, "popular", s.Template)
	rv := findValue(t, s, KeyTemplate)
	assert.Equal(t, SourceEnv, rv.Source)
	assert.Equal(t, "other", rv.Shadowed[SourceConfig])
	assert.NotContains(t, rv.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	clearEnv(t)

	s, err := Resolve(&Config{TemplateDir: "/tmp/tpl", Install: output.BoolPtr(false)}, FlagValues{})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tpl", s.TemplateDir)
	assert.False(t, s.Install)
	rv := findValue(t, s, KeyInstall)
	assert.Equal(t, SourceConfig, rv.Source)
	assert.Equal(t, "true", rv.Shadowed[SourceDefault])
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Resolve(nil, FlagValues{})
	require.NoError(t, err)

	assert.Empty(t, s.PackageManager)
	assert.Empty(t, s.Template)
	assert.True(t, s.Install)
	assert.False(t, s.Timestamps)
	assert.Equal(t, SourceDefault, findValue(t, s, KeyInstall).Source)
	assert.Empty(t, findValue(t, s, KeyPackageManager).Shadowed)
	assert.Len(t, s.Values, 5)
}

func TestResolve_BoolFlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATIVE_INSTALL", "true")

	s, err := Resolve(&Config{}, FlagValues{Install: output.BoolPtr(false)})
	require.NoError(t, err)

	assert.False(t, s.Install)
	rv := findValue(t, s, KeyInstall)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, "true", rv.Shadowed[SourceEnv])
}

func TestResolve_InvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATIVE_INSTALL", "maybe")

	_, err := Resolve(&Config{}, FlagValues{})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "install")

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "CREATIVE_INSTALL", detail.Location)
}

func TestResolveConfigPath(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("CREATIVE_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)

		assert.Equal(t, "/flag/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, paths.ConfigFile, result.Shadowed[SourceDefault])
	})

	t.Run("env over default", func(t *testing.T) {
		t.Setenv("CREATIVE_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Equal(t, "/env/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("CREATIVE_CONFIG", "")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Equal(t, paths.ConfigFile, result.ConfigPath)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}
