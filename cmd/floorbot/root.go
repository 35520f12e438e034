package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	envFiles   []string
	verbose    bool

	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "floorbot",
	Short: "floorbot simulates a robot that keeps a tiled floor clean.",
	Long: `floorbot simulates a robot that keeps a tiled floor clean. The ` +
		`robot sweeps the floor, remembers the dirty tiles it sees, and ` +
		`cleans the nearest one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML file with the run configuration")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil,
		"dotenv files that provide FLOORBOT_* variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log at the debug level, including every event")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
