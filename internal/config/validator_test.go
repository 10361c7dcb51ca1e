package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactcreative/cli/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("default config", func(t *testing.T) {
		assert.NoError(t, v.Validate(DefaultConfig()))
	})

	t.Run("full config", func(t *testing.T) {
		cfg := &Config{
			PackageManager: "pnpm",
			Template:       "popular",
			Install:        output.BoolPtr(false),
			TemplateDir:    "/tmp/template",
		}
		assert.NoError(t, v.Validate(cfg))
	})

	t.Run("unknown package manager", func(t *testing.T) {
		err := v.Validate(&Config{PackageManager: "pip"})
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, err.Error(), "packageManager")
	})

	t.Run("bad template name", func(t *testing.T) {
		err := v.Validate(&Config{Template: "Not A Preset"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template")
	})

	t.Run("nil config", func(t *testing.T) {
		assert.NoError(t, v.Validate(nil))
	})
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("valid file", func(t *testing.T) {
		path := writeConfig(t, "packageManager: bun\nlog:\n  timestamps: true\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		assert.NoError(t, v.ValidateFile(writeConfig(t, "")))
	})

	t.Run("unknown key", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "registry: example.com\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registry")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "install: yes please\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "install")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := v.ValidateFile(writeConfig(t, "install: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "template", Message: "invalid value"},
		{Field: "install", Message: "conflicting values"},
	}

	msg := errs.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "template: invalid value")
	assert.Contains(t, msg, "install: conflicting values")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
