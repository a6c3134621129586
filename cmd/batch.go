package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shadekey.dev/pkg/shadekey/internal/domain"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

var batchParallelFlag int

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [scene.yaml ...]",
		Short: "Capture one preset per keying set across scenes",
		Long: `Capture every keying set of each scene document into its own preset,
named after the set. Without arguments the default scene is processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes := parsePaths(args)
			if len(scenes) == 0 {
				scenes = []m.Path{sceneFile()}
			}

			threads := viper.GetInt(batchParallelConfigKey)
			if threads < 1 {
				threads = defaultBatchParallel
			}

			return workflow.BatchCollect(cmd.Context(), domain.BatchArgs{
				Scenes:  scenes,
				Threads: uint(threads),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, batchParallelFlagName, "p",
		viper.GetInt(batchParallelConfigKey), "number of scene documents to process in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(batchParallelFlagName), batchParallelConfigKey)
}
