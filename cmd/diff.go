package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <index> <index>",
		Short: "Compare two presets",
		Long:  "Show a unified diff of the captured values of two presets.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			b, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			return workflow.DiffPresets(cmd.Context(), domain.DiffArgs{
				Scene: sceneFile(),
				A:     a,
				B:     b,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
