package cmd

import (
	"github.com/spf13/cobra"

	"shadekey.dev/pkg/shadekey/internal/domain"
)

var extractMaterials []string

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <set-name>",
		Short: "Rebuild a keying set from animated shader paths",
		Long: `Discover the animated shader paths of the selected materials (or the
materials given with --material) and rebuild the named keying set from them.
The set becomes the scene's active keying set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Extract(cmd.Context(), domain.ExtractArgs{
				Scene:     sceneFile(),
				Set:       args[0],
				Materials: extractMaterials,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&extractMaterials, materialFlagName, "m", nil,
		"limit discovery to the named material (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
