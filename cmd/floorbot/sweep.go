package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/floor"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Print the sweep route for a rectangle.",
	Long: "`sweep --left 0 --right 10 --bottom 0 --top 10` prints the " +
		"waypoints the agent visits while searching that area.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		var bounds floor.Rect
		bounds.Left, _ = flags.GetFloat64("left")
		bounds.Right, _ = flags.GetFloat64("right")
		bounds.Bottom, _ = flags.GetFloat64("bottom")
		bounds.Top, _ = flags.GetFloat64("top")

		defaults := cleaner.DefaultConfig()
		step := defaults.SweepStep
		inset := defaults.SweepInset

		if flags.Changed("step") {
			step, _ = flags.GetFloat64("step")
		}

		if flags.Changed("inset") {
			inset, _ = flags.GetFloat64("inset")
		}

		points, err := cleaner.BuildSweep(bounds, step, inset, 0)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, p := range points {
			fmt.Fprintf(out, "%4d %8.3f %8.3f\n", i, p.X, p.Z)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64("left", 0, "smallest X of the area")
	sweepCmd.Flags().Float64("right", 10, "largest X of the area")
	sweepCmd.Flags().Float64("bottom", 0, "smallest Z of the area")
	sweepCmd.Flags().Float64("top", 10, "largest Z of the area")
	sweepCmd.Flags().Float64("step", 0, "distance between waypoints on an edge")
	sweepCmd.Flags().Float64("inset", 0, "distance between two rings")
}
