package main

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/floorbot/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, envFiles...)
		if err != nil {
			return err
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
