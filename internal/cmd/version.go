package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactcreative/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for create-react-creative.

Shows the CLI version, build information, and whether the Node.js on PATH
can run the generated project.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE:        runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	node := version.DetectNode()

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, node))
	return nil
}
