package cmd

import (
	"fmt"
	"strings"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/output"
)

// presetHelp lists the presets with their libraries in module colors.
func presetHelp(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("Available presets:\n")

	width := 0
	for _, p := range cat.Presets() {
		width = max(width, len(p.Name))
	}

	for _, p := range cat.Presets() {
		sel, err := cat.FindByTemplateName(p.Name)
		if err != nil {
			continue
		}
		var labels []string
		for _, m := range sel.Flatten() {
			labels = append(labels, output.ModuleStyle(m.Display.Color).Render(m.Display.Label))
		}
		name := output.ModuleStyle(p.Color).Render(fmt.Sprintf("%-*s", width, p.Name))
		fmt.Fprintf(&b, "  %s  %s\n", name, strings.Join(labels, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
