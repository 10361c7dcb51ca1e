package version

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
)

// nodeVersionRegex matches node version output like "v22.12.0".
var nodeVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// lookPath finds a binary; replaced in tests.
var lookPath = exec.LookPath

// DetectNode finds and checks the node binary installation.
func DetectNode() NodeInfo {
	path, err := lookPath("node")
	if err != nil {
		return NodeInfo{
			Found:      false,
			Compatible: false,
			Message:    "node binary not found in PATH",
		}
	}

	version, err := getNodeVersion(path)
	if err != nil {
		return NodeInfo{
			Path:       path,
			Found:      true,
			Compatible: false,
			Message:    "failed to get node version: " + err.Error(),
		}
	}

	return NodeInfo{
		Version:    version,
		Path:       path,
		Found:      true,
		Compatible: NodeVersionCompatible(MinNodeVersion, version),
		Message:    CompatibilityMessage(MinNodeVersion, version),
	}
}

// getNodeVersion executes 'node --version' and extracts the version string.
func getNodeVersion(nodePath string) (string, error) {
	cmd := exec.Command(nodePath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the version number from node --version output.
func extractVersion(output string) (string, error) {
	match := nodeVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}

	return match, nil
}

// versionParseError indicates failure to parse node version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse node version from output: " + e.output
}
