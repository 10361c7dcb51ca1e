// Package version provides version information for the create-react-creative CLI.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// MinNodeVersion is the oldest Node.js release the generated Vite project runs on.
const MinNodeVersion = "v20.19.0"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// NodeInfo contains Node.js runtime information.
type NodeInfo struct {
	// Version is the node binary version.
	Version string `json:"version"`

	// Path is the path to the node binary.
	Path string `json:"path"`

	// Compatible indicates the version is at least MinNodeVersion.
	Compatible bool `json:"compatible"`

	// Found indicates if the node binary was found.
	Found bool `json:"found"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("create-react-creative:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// NodeVersionCompatible reports whether version is at least minimum.
// Both are compared as MAJOR.MINOR.PATCH.
func NodeVersionCompatible(minimum, version string) bool {
	want, ok := parseSemver(minimum)
	if !ok {
		return false
	}
	got, ok := parseSemver(version)
	if !ok {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return got[i] > want[i]
		}
	}
	return true
}

// CompatibilityMessage returns a message explaining version compatibility.
func CompatibilityMessage(minimum, version string) string {
	if _, ok := parseSemver(version); !ok {
		return "incompatible - invalid version format"
	}
	if NodeVersionCompatible(minimum, version) {
		return "compatible"
	}
	return "incompatible - requires " + minimum + " or newer"
}

func parseSemver(v string) ([3]int, bool) {
	var out [3]int
	v = strings.TrimPrefix(v, "v")
	v, _, _ = strings.Cut(v, "-")
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// String returns a human-readable node info string.
func (n NodeInfo) String() string {
	if !n.Found {
		return "  Version: not found\n  Path:    -"
	}

	compatStr := "compatible"
	if !n.Compatible {
		compatStr = n.Message
	}

	return fmt.Sprintf("  Version: %s (%s)\n  Path:    %s", n.Version, compatStr, n.Path)
}

// FullVersionString returns complete version information including Node.js.
func FullVersionString(info Info, node NodeInfo) string {
	return fmt.Sprintf("%s\n\nNode.js (requires %s):\n%s", info.String(), MinNodeVersion, node.String())
}
