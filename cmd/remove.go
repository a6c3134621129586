package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete a preset from the scene",
		Long:  "Delete the preset at the given index and reclamp the active preset cursor.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return workflow.RemovePreset(cmd.Context(), domain.RemoveArgs{
				Scene: sceneFile(),
				Index: index,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
