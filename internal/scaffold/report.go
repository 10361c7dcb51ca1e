package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/reactcreative/cli/internal/output"
)

// Tree renders the written files under rootName, annotated with their
// descriptions.
func (r *Result) Tree(rootName string) string {
	tree := output.NewFileTree(rootName)
	for _, f := range r.Files {
		tree.Add(f, r.Descriptions[f])
	}
	return tree.String()
}

// NextSteps returns the numbered follow-up commands. cdPath is the project
// directory relative to the working directory; "." omits the cd line.
func (r *Result) NextSteps(cdPath string) []string {
	var cmds []string
	if cdPath != "" && cdPath != "." {
		cmds = append(cmds, "cd "+quotePath(cdPath))
	}

	run := r.Manager.RunCommand()
	if r.Installed {
		cmds = append(cmds, run+" format")
	} else {
		cmds = append(cmds, r.Manager.InstallCommand()+"; "+run+" format")
	}
	cmds = append(cmds, run+" dev")

	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = fmt.Sprintf("%d. %s", i+1, c)
	}
	return lines
}

func quotePath(p string) string {
	p = filepath.ToSlash(p)
	for _, c := range p {
		if c == ' ' || c == '\'' || c == '"' {
			return fmt.Sprintf("%q", p)
		}
	}
	return p
}
