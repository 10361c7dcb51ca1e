package templates

import (
	"regexp"
	"strings"
)

// packageNameRegex matches npm package names, optionally scoped.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)

var (
	leadingDotOrUnderscore = regexp.MustCompile(`^[._]+`)
	invalidNameChars       = regexp.MustCompile(`[^a-z\d\-~]+`)
	whitespace             = regexp.MustCompile(`\s+`)
)

// FormatTargetDir trims whitespace and trailing slashes from a directory argument.
func FormatTargetDir(dir string) string {
	dir = strings.TrimSpace(dir)
	trimmed := strings.TrimRight(dir, "/")
	if trimmed == "" && dir != "" {
		return "/"
	}
	return trimmed
}

// IsValidPackageName reports whether name is a valid package.json name.
func IsValidPackageName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// ToValidPackageName converts name into a valid package.json name.
func ToValidPackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespace.ReplaceAllString(name, "-")
	name = leadingDotOrUnderscore.ReplaceAllString(name, "")
	return invalidNameChars.ReplaceAllString(name, "-")
}
