package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/respec/internal/domain"
	m "github.com/mouse-blink/respec/internal/model"
)

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Delete stored conversion reports",
		Long: `Delete stored conversion reports.

Without paths every report in the reports directory is deleted. With paths
only the reports of the matching spec files are deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var paths []m.Path
			if len(args) > 0 {
				paths = parsePaths(args)
			}

			return workflow.Clean(domain.CleanArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   paths,
					Exclude: cfg.Exclude,
				},
				Reports: m.Path(cfg.Reports),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
