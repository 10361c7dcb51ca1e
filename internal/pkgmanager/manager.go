// Package pkgmanager detects the invoking package manager and installs
// dependencies with it.
package pkgmanager

import (
	"fmt"
	"strings"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Manager describes a package manager's command conventions.
type Manager struct {
	// Name is the binary name and the user agent prefix.
	Name string

	// Install installs everything listed in package.json.
	Install []string

	// Add adds runtime packages; AddDev adds devDependencies.
	Add    []string
	AddDev []string

	// Run prefixes script invocations, e.g. "pnpm" in "pnpm dev".
	Run []string
}

// InstallCommand returns the install command as typed by a user.
func (m Manager) InstallCommand() string {
	return strings.Join(append([]string{m.Name}, m.Install...), " ")
}

// RunCommand returns the script runner prefix as typed by a user.
func (m Manager) RunCommand() string {
	return strings.Join(append([]string{m.Name}, m.Run...), " ")
}

// AddArgs returns the arguments that add pkgs.
func (m Manager) AddArgs(pkgs []string, dev bool) []string {
	base := m.Add
	if dev {
		base = m.AddDev
	}
	args := append([]string(nil), base...)
	return append(args, pkgs...)
}

// Default is used when the user agent names no known manager.
const Default = "npm"

var managers = []Manager{
	{Name: "npm", Install: []string{"install"}, Add: []string{"install"}, AddDev: []string{"install", "-D"}, Run: []string{"run"}},
	{Name: "pnpm", Install: []string{"install"}, Add: []string{"add"}, AddDev: []string{"add", "-D"}},
	{Name: "yarn", Add: []string{"add"}, AddDev: []string{"add", "-D"}},
	{Name: "bun", Install: []string{"install"}, Add: []string{"add"}, AddDev: []string{"add", "-D"}},
}

// Names returns the supported manager names.
func Names() []string {
	out := make([]string, 0, len(managers))
	for _, m := range managers {
		out = append(out, m.Name)
	}
	return out
}

// Lookup returns the manager with the given name.
func Lookup(name string) (Manager, error) {
	for _, m := range managers {
		if m.Name == name {
			return m, nil
		}
	}
	return Manager{}, oerrors.NewValidationError(
		fmt.Sprintf("unsupported package manager %q", name),
		"",
		"Use one of: "+strings.Join(Names(), ", "),
	)
}

// Detect returns the manager named by an npm_config_user_agent value such
// as "pnpm/9.0.0 npm/? node/v20.0.0", falling back to npm.
func Detect(userAgent string) Manager {
	name, _, _ := strings.Cut(userAgent, " ")
	name, _, _ = strings.Cut(name, "/")
	if m, err := Lookup(name); err == nil {
		return m
	}
	m, _ := Lookup(Default)
	return m
}
