package tracing

import (
	"context"
	"fmt"
	"slices"

	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/datarecording"
)

// RecordingSummary is what a recorded run tells about the agents.
type RecordingSummary struct {
	Tables    []string
	Committed int
	Aborted   int

	// Decisions counts decisions per state name. It is nil when decisions
	// were not recorded.
	Decisions map[string]int

	// Recent holds the latest cleaning sessions, newest first.
	Recent []CleaningEntry
}

// SummarizeRecording reads back the tables written by a DBTracer. At most
// recent sessions are returned in Recent.
func SummarizeRecording(
	ctx context.Context,
	reader datarecording.DataReader,
	recent int,
) (RecordingSummary, error) {
	var s RecordingSummary

	tables, err := reader.ListTables(ctx)
	if err != nil {
		return s, fmt.Errorf("listing tables: %w", err)
	}

	s.Tables = tables

	if !slices.Contains(tables, CleaningTable) {
		return s, fmt.Errorf("recording has no %s table", CleaningTable)
	}

	reader.MapTable(CleaningTable, CleaningEntry{})

	_, s.Committed, err = reader.Query(ctx, CleaningTable,
		datarecording.QueryParams{Where: "Committed = ?", Args: []any{true}})
	if err != nil {
		return s, err
	}

	_, s.Aborted, err = reader.Query(ctx, CleaningTable,
		datarecording.QueryParams{Where: "Committed = ?", Args: []any{false}})
	if err != nil {
		return s, err
	}

	if recent > 0 {
		rows, _, err := reader.Query(ctx, CleaningTable,
			datarecording.QueryParams{OrderBy: "EndTime DESC", Limit: recent})
		if err != nil {
			return s, err
		}

		for _, row := range rows {
			s.Recent = append(s.Recent, *row.(*CleaningEntry))
		}
	}

	if !slices.Contains(tables, DecisionTable) {
		return s, nil
	}

	reader.MapTable(DecisionTable, DecisionEntry{})
	s.Decisions = make(map[string]int)

	for _, state := range []cleaner.State{
		cleaner.StateSearch, cleaner.StateGoToDirty, cleaner.StateClean,
	} {
		_, n, err := reader.Query(ctx, DecisionTable, datarecording.QueryParams{
			Where: "State = ?",
			Args:  []any{state.String()},
			Limit: 1,
		})
		if err != nil {
			return s, err
		}

		s.Decisions[state.String()] = n
	}

	return s, nil
}
