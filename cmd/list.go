package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/respec/internal/domain"
)

const listLongDescription = `List spec files and the number of operator matchers each one contains.

Matchers silenced with a respec:ignore comment are not counted.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List spec files and operator matcher counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: cfg.Exclude,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
