package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/floorbot/datarecording"
	"github.com/sarchlab/floorbot/tracing"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [recording.sqlite3]",
	Short: "Summarize a recorded run.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		reader, err := datarecording.NewReader(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		s, err := tracing.SummarizeRecording(cmd.Context(), reader, recent)
		if err != nil {
			return err
		}

		printRecordingSummary(cmd.OutOrStdout(), s)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int("recent", 5, "number of latest sessions to list")
}

func printRecordingSummary(out io.Writer, s tracing.RecordingSummary) {
	fmt.Fprintf(out, "tables:          %s\n", strings.Join(s.Tables, ", "))
	fmt.Fprintf(out, "tiles cleaned:   %d\n", s.Committed)
	fmt.Fprintf(out, "cleans aborted:  %d\n", s.Aborted)

	if s.Decisions != nil {
		fmt.Fprintf(out, "decisions:       Search %d, GoToDirty %d, Clean %d\n",
			s.Decisions["Search"], s.Decisions["GoToDirty"], s.Decisions["Clean"])
	}

	for _, e := range s.Recent {
		outcome := "aborted"
		if e.Committed {
			outcome = "committed"
		}

		fmt.Fprintf(out, "  %8.3fs %-14s %s by %s\n",
			e.EndTime, e.Tile, outcome, e.Agent)
	}
}
