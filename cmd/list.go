package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

var listPresetsFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keying sets or presets",
		Long:  "List the scene's keying sets, or its presets with --presets.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Scene:   sceneFile(),
				Presets: listPresetsFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&listPresetsFlag, presetsFlagName, false, "list presets instead of keying sets")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
