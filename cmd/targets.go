package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/respec/internal/domain"
)

// targetsCmd represents the targets command.
var targetsCmd = newTargetsCmd()

func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets [paths...]",
		Short: "List expressions that need runtime data to convert",
		Long: `List the expressions whose conversion depends on their runtime type.

Each target is identified by FILE:BEGIN:END byte offsets. Record the class of
every target while running the suite and pass the result with --runtime-data
to convert =~ against arrays into match_array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Targets(cmd.Context(), domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: cfg.Exclude,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
