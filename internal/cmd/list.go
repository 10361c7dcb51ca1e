package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/output"
)

func newListCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available libraries and presets",
		Long: `List every library that can be added to a project, grouped by category,
followed by the presets.

Module ids are the values accepted in presets and shown by --verbose logs.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, cat)
		},
	}
}

func runList(cmd *cobra.Command, cat *catalog.Catalog) error {
	tbl := output.NewTable("CATEGORY", "ID", "LIBRARY", "PACKAGES", "DEMO")
	for _, c := range catalog.Categories() {
		for _, m := range cat.Lookup(c) {
			if m.IsNone() {
				continue
			}
			demo := "-"
			if m.HasDemo() {
				demo = string(m.Demo.InsertionPoint)
			}
			tbl.Row(
				c.Title(),
				m.ID,
				output.ModuleStyle(m.Display.Color).Render(m.Display.Label),
				strings.Join(m.Packages, " "),
				demo,
			)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tbl.String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, presetHelp(cat))
	return nil
}
