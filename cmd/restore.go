package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <index>",
		Short: "Apply a stored preset back onto the scene",
		Long: `Write a preset's captured values back onto their shader sockets and key
each one at the current frame. Records whose material or socket no longer
exists are skipped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return workflow.RestorePreset(cmd.Context(), domain.RestoreArgs{
				Scene: sceneFile(),
				Index: index,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
