// Package cmd provides the root command and CLI setup for shadekey.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"shadekey.dev/pkg/shadekey/internal/adapter"
	"shadekey.dev/pkg/shadekey/internal/controller"
	"shadekey.dev/pkg/shadekey/internal/domain"
	m "shadekey.dev/pkg/shadekey/internal/model"
)

var sceneFS adapter.SceneFS
var presetCodec adapter.PresetCodec
var keyer domain.Keyer
var presetManager domain.PresetManager
var workflow domain.Workflow
var ui controller.UI

// sceneFlag is a root-level flag naming the scene document to operate on.
var sceneFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sceneFS = adapter.NewYAMLSceneFS()
	presetCodec = adapter.NewYAMLPresetCodec()
	keyer = domain.NewKeyer()
	presetManager = domain.NewPresetManager(presetCodec)
	workflow = domain.NewWorkflow(
		sceneFS,
		ui,
		keyer,
		presetManager,
	)
}

const rootLongDescription = `Shadekey manages shader keying sets and presets in scene documents: it
discovers the animated shader paths of the selected materials, replays them
as keyframes at the current frame, and snapshots their live values into
restorable presets.

The scene document defaults to scene.yaml and can be changed with --scene.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shadekey",
		Short: "Shader keying set and preset tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&sceneFlag, sceneFlagName, "f",
			viper.GetString(sceneFlagName),
			"scene document to operate on",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sceneFlagName), sceneFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// sceneFile resolves the scene document path from flag, env or config.
func sceneFile() m.Path {
	return m.Path(viper.GetString(sceneFlagName))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// parseIndex parses a preset index argument.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid preset index %q", arg)
	}

	return n, nil
}
