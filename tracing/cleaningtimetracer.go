package tracing

import (
	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/sim"
)

// CleaningTimeTracer sums up how long agents spent cleaning and how many
// sessions ended each way. Sessions still running are not counted.
type CleaningTimeTracer struct {
	busyTime  sim.VTimeInSec
	committed int
	aborted   int
	decisions map[cleaner.State]int
}

// NewCleaningTimeTracer creates a new CleaningTimeTracer.
func NewCleaningTimeTracer() *CleaningTimeTracer {
	return &CleaningTimeTracer{
		decisions: make(map[cleaner.State]int),
	}
}

// BusyTime returns the total time spent in resolved sessions.
func (t *CleaningTimeTracer) BusyTime() sim.VTimeInSec {
	return t.busyTime
}

// Committed returns the number of sessions that cleaned their tile.
func (t *CleaningTimeTracer) Committed() int {
	return t.committed
}

// Aborted returns the number of sessions that ended without cleaning.
func (t *CleaningTimeTracer) Aborted() int {
	return t.aborted
}

// Decisions returns how many thinks ended in the state.
func (t *CleaningTimeTracer) Decisions(s cleaner.State) int {
	return t.decisions[s]
}

// Decide counts the decision.
func (t *CleaningTimeTracer) Decide(_ string, d cleaner.Decision) {
	t.decisions[d.State]++
}

// StartClean does nothing.
func (t *CleaningTimeTracer) StartClean(_ string, _ cleaner.CleaningSession) {
}

// EndClean adds the session time.
func (t *CleaningTimeTracer) EndClean(_ string, o cleaner.CleanOutcome) {
	t.busyTime += o.Time - o.Session.Start

	if o.Committed {
		t.committed++
	} else {
		t.aborted++
	}
}
