package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

var saveSetFlag string

// saveCmd represents the save command.
var saveCmd = newSaveCmd()

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <preset-name>",
		Short: "Capture a keying set's live values into a preset",
		Long: `Resolve the current value of every path in a keying set and store the
snapshot as a named preset. Without --set the scene's active keying set is
captured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.SavePreset(cmd.Context(), domain.SaveArgs{
				Scene:  sceneFile(),
				Set:    saveSetFlag,
				Preset: args[0],
			})
		},
	}

	cmd.Flags().StringVarP(&saveSetFlag, setFlagName, "s", "",
		"keying set to capture (default: the active set)")

	return cmd
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
