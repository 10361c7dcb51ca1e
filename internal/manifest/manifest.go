// Package manifest rewrites the template's package.json for a selection and
// computes the packages to install.
package manifest

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/output"
)

// ErrPackageNotInBaseline indicates a selected module names a package the
// template manifest does not declare.
var ErrPackageNotInBaseline = fmt.Errorf("package not in baseline manifest: %w", oerrors.ErrTemplate)

// DependencyKeys are the manifest maps packages are removed from.
var DependencyKeys = []string{"dependencies", "devDependencies"}

// InfraDevDeps are always installed as devDependencies.
var InfraDevDeps = []string{
	"tailwindcss",
	"@tailwindcss/vite",
	"vite-tsconfig-paths",
	"vite-plugin-svgr",
}

var prettyOptions = &pretty.Options{Indent: "  "}

// ComputeManifest returns baseline with its name set to name and every
// catalog package the selection does not use removed. Key order and
// unrelated fields are preserved.
func ComputeManifest(baseline []byte, cat *catalog.Catalog, sel catalog.Selection, name string) ([]byte, error) {
	if !gjson.ValidBytes(baseline) {
		return nil, oerrors.NewTemplateError("package manifest is not valid JSON", "package.json", nil)
	}
	if err := CheckBaseline(baseline, sel); err != nil {
		return nil, err
	}

	out, err := sjson.SetBytes(baseline, "name", name)
	if err != nil {
		return nil, fmt.Errorf("setting manifest name: %w", err)
	}

	selected := make(map[string]bool)
	for _, p := range sel.Packages() {
		selected[p] = true
	}

	for _, pkg := range cat.AllPackages() {
		if selected[pkg] {
			continue
		}
		for _, key := range DependencyKeys {
			path := key + "." + gjson.Escape(pkg)
			if !gjson.GetBytes(out, path).Exists() {
				continue
			}
			if out, err = sjson.DeleteBytes(out, path); err != nil {
				return nil, fmt.Errorf("removing %s from %s: %w", pkg, key, err)
			}
			output.Debug("excluded package", "package", pkg, "from", key)
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

// CheckBaseline verifies that every selected package is declared by the
// baseline manifest.
func CheckBaseline(baseline []byte, sel catalog.Selection) error {
	for _, m := range sel.Flatten() {
		for _, pkg := range m.Packages {
			if Declared(baseline, pkg) {
				continue
			}
			return &oerrors.DetailError{
				Type:     "template defect",
				Message:  fmt.Sprintf("package %q is not declared in the template manifest", pkg),
				Location: "package.json",
				Context:  map[string]string{"Package": pkg, "Module": m.ID},
				Hint:     "This is a bug in create-react-creative, please report it",
				Cause:    ErrPackageNotInBaseline,
			}
		}
	}
	return nil
}

// Declared reports whether pkg appears in any dependency map of manifest.
func Declared(manifest []byte, pkg string) bool {
	for _, key := range DependencyKeys {
		if gjson.GetBytes(manifest, key+"."+gjson.Escape(pkg)).Exists() {
			return true
		}
	}
	return false
}

// InstallSet is the package manager input for one run.
type InstallSet struct {
	Deps    []string
	DevDeps []string
}

// Empty reports whether there is nothing to install.
func (s InstallSet) Empty() bool {
	return len(s.Deps) == 0 && len(s.DevDeps) == 0
}

// ComputeInstallSet flattens the selection's packages, deduplicated in
// selection order, and appends the infrastructure devDependencies.
func ComputeInstallSet(sel catalog.Selection) InstallSet {
	return InstallSet{
		Deps:    sel.Packages(),
		DevDeps: append([]string(nil), InfraDevDeps...),
	}
}
