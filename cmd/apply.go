package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <set-name>",
		Short: "Replay a keying set at the current frame",
		Long: `Insert a keyframe for every path in the named keying set, stamped at the
scene's current frame with each path's current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Scene: sceneFile(),
				Set:   args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
