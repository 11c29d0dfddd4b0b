package cmd

import (
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command. It is the same as running
// respec without a subcommand.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert operator matchers in spec files",
		Long:  "Convert operator matchers in spec files. This is the default action of respec.",
		RunE:  runConvert,
	}
	addConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
