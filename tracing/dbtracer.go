package tracing

import (
	"sync"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/datarecording"
	"github.com/sarchlab/floorbot/sim"
)

// Table names used by DBTracer.
const (
	DecisionTable = "decisions"
	CleaningTable = "cleanings"
)

// DecisionEntry is a row of the decision table.
type DecisionEntry struct {
	Agent      string
	Time       float64
	State      string
	Target     string
	HasTarget  bool
	DestX      float64
	DestY      float64
	DestZ      float64
	Dispatched bool
	Cleaning   bool
}

// CleaningEntry is a row of the cleaning table. One row is written per
// session, once the session resolves.
type CleaningEntry struct {
	Agent     string
	Tile      string
	StartTime float64
	Deadline  float64
	EndTime   float64
	Committed bool
}

// DBTracer writes decisions and cleaning sessions into a DataRecorder.
type DBTracer struct {
	mu      sync.Mutex
	backend datarecording.DataRecorder

	startTime, endTime sim.VTimeInSec

	recordDecisions bool
	terminated      bool
}

// NewDBTracer creates a new DBTracer. It creates its tables right away.
func NewDBTracer(
	dataRecorder datarecording.DataRecorder,
	recordDecisions bool,
) (*DBTracer, error) {
	if recordDecisions {
		err := dataRecorder.CreateTable(DecisionTable, DecisionEntry{})
		if err != nil {
			return nil, err
		}
	}

	if err := dataRecorder.CreateTable(CleaningTable, CleaningEntry{}); err != nil {
		return nil, err
	}

	t := &DBTracer{
		backend:         dataRecorder,
		recordDecisions: recordDecisions,
	}

	atexit.Register(func() {
		t.Terminate()
	})

	return t, nil
}

// SetTimeRange limits tracing to the given window. A zero bound means no
// limit on that side.
func (t *DBTracer) SetTimeRange(startTime, endTime sim.VTimeInSec) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startTime = startTime
	t.endTime = endTime
}

func (t *DBTracer) inRange(now sim.VTimeInSec) bool {
	if t.startTime > 0 && now < t.startTime {
		return false
	}

	if t.endTime > 0 && now > t.endTime {
		return false
	}

	return true
}

// Decide records a decision.
func (t *DBTracer) Decide(who string, d cleaner.Decision) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.recordDecisions || t.terminated || !t.inRange(d.Time) {
		return
	}

	entry := DecisionEntry{
		Agent:      who,
		Time:       float64(d.Time),
		State:      d.State.String(),
		HasTarget:  d.HasTarget,
		DestX:      d.Destination.X,
		DestY:      d.Destination.Y,
		DestZ:      d.Destination.Z,
		Dispatched: d.Dispatched,
		Cleaning:   d.Cleaning,
	}

	if d.HasTarget {
		entry.Target = d.Target.String()
	}

	_ = t.backend.InsertData(DecisionTable, entry)
}

// StartClean does nothing. Sessions are written when they end.
func (t *DBTracer) StartClean(_ string, _ cleaner.CleaningSession) {
}

// EndClean records a resolved session.
func (t *DBTracer) EndClean(who string, o cleaner.CleanOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated || !t.inRange(o.Time) {
		return
	}

	_ = t.backend.InsertData(CleaningTable, CleaningEntry{
		Agent:     who,
		Tile:      o.Session.Target.String(),
		StartTime: float64(o.Session.Start),
		Deadline:  float64(o.Session.Deadline),
		EndTime:   float64(o.Time),
		Committed: o.Committed,
	})
}

// Terminate flushes the backend. Later records are dropped.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.terminated = true
	_ = t.backend.Flush()
}
