package templates

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reactcreative/cli/internal/output"
)

// IgnoreRules is an ordered list of gitignore-style rules. The last
// matching rule decides; a path inside an ignored directory stays ignored.
type IgnoreRules struct {
	rules []ignoreRule
}

type ignoreRule struct {
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
}

// ParseIgnore reads rules from gitignore-formatted data. Invalid patterns
// are skipped.
func ParseIgnore(data []byte) *IgnoreRules {
	r := &IgnoreRules{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rule ignoreRule
		if strings.HasPrefix(line, "!") {
			rule.negate = true
			line = line[1:]
		} else if strings.HasPrefix(line, `\`) {
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			rule.dirOnly = true
			line = strings.TrimRight(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			rule.anchored = true
			line = strings.TrimLeft(line, "/")
		} else if strings.Contains(line, "/") {
			rule.anchored = true
		}
		if line == "" {
			continue
		}

		if !rule.anchored {
			line = "**/" + line
		}
		if !doublestar.ValidatePattern(line) {
			output.Debug("skipping invalid ignore pattern", "pattern", line)
			continue
		}
		rule.pattern = line
		r.rules = append(r.rules, rule)
	}
	return r
}

// Len returns the number of rules.
func (r *IgnoreRules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rules)
}

// Ignored reports whether the slash-separated relative path is ignored.
func (r *IgnoreRules) Ignored(rel string, isDir bool) bool {
	if r.Len() == 0 {
		return false
	}

	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		if r.match(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	return r.match(rel, isDir)
}

func (r *IgnoreRules) match(rel string, isDir bool) bool {
	ignored := false
	for _, rule := range r.rules {
		if rule.dirOnly && !isDir {
			continue
		}
		if ok, _ := doublestar.Match(rule.pattern, rel); ok {
			ignored = !rule.negate
		}
	}
	return ignored
}
