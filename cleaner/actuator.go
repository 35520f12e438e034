package cleaner

import (
	"log"
	"reflect"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// HookPosCleanStart marks that a cleaning session has been accepted. The
// item is the CleaningSession.
var HookPosCleanStart = &sim.HookPos{Name: "Clean Start"}

// HookPosCleanCommit marks that a session has cleaned its tile. The item is
// a CleanOutcome.
var HookPosCleanCommit = &sim.HookPos{Name: "Clean Commit"}

// HookPosCleanAbort marks that a session ended without cleaning. The item is
// a CleanOutcome.
var HookPosCleanAbort = &sim.HookPos{Name: "Clean Abort"}

// A CleaningSession is a timed attempt to clean one tile.
type CleaningSession struct {
	Target   floor.TileID
	Start    sim.VTimeInSec
	Deadline sim.VTimeInSec
}

// CleanOutcome is what became of a session.
type CleanOutcome struct {
	Session   CleaningSession
	Time      sim.VTimeInSec
	Committed bool
}

// CleanDoneEvent fires at the deadline of a session.
type CleanDoneEvent struct {
	*sim.EventBase
	Session CleaningSession
}

// CleaningActuator runs at most one cleaning session at a time. A session
// commits only if, at its deadline, the agent still stands on the same tile
// and that tile is still valid and dirty.
type CleaningActuator struct {
	*sim.ComponentBase

	engine   sim.EventScheduler
	ground   GroundSensing
	tiles    TileMutator
	duration sim.VTimeInSec

	pending        *CleaningSession
	pendingEventID string

	committed uint64
	aborted   uint64
}

// NewCleaningActuator creates an idle actuator.
func NewCleaningActuator(
	name string,
	engine sim.EventScheduler,
	ground GroundSensing,
	tiles TileMutator,
	duration sim.VTimeInSec,
) *CleaningActuator {
	a := &CleaningActuator{
		engine:   engine,
		ground:   ground,
		tiles:    tiles,
		duration: duration,
	}
	a.ComponentBase = sim.NewComponentBase(name)

	return a
}

// IsCleaning tells if a session is in progress.
func (a *CleaningActuator) IsCleaning() bool {
	return a.pending != nil
}

// Pending returns the session in progress.
func (a *CleaningActuator) Pending() (CleaningSession, bool) {
	if a.pending == nil {
		return CleaningSession{}, false
	}

	return *a.pending, true
}

// Stats returns how many sessions committed and how many aborted.
func (a *CleaningActuator) Stats() (committed, aborted uint64) {
	return a.committed, a.aborted
}

// CanClean tells if TryClean would start a session now.
func (a *CleaningActuator) CanClean() bool {
	if a.pending != nil {
		return false
	}

	a.ground.Sense()

	return a.ground.CurrentTileIsDirty()
}

// TryClean starts a session on the tile under the agent. It returns false if
// a session is already running or if the tile is missing or clean.
func (a *CleaningActuator) TryClean() bool {
	if !a.CanClean() {
		return false
	}

	target, _ := a.ground.CurrentTile()
	now := a.engine.Now()

	a.pending = &CleaningSession{
		Target:   target,
		Start:    now,
		Deadline: now + a.duration,
	}

	evt := &CleanDoneEvent{
		EventBase: sim.NewEventBase(a.pending.Deadline, a),
		Session:   *a.pending,
	}
	a.pendingEventID = evt.ID
	a.engine.Schedule(evt)

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosCleanStart,
		Item:   *a.pending,
	})

	return true
}

// Handle resolves sessions.
func (a *CleaningActuator) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *CleanDoneEvent:
		a.resolve(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}

	return nil
}

func (a *CleaningActuator) resolve(e *CleanDoneEvent) {
	if a.pending == nil || e.ID != a.pendingEventID {
		return
	}

	session := *a.pending
	a.pending = nil
	a.pendingEventID = ""

	a.ground.Sense()
	cur, onTile := a.ground.CurrentTile()

	outcome := CleanOutcome{
		Session: session,
		Time:    e.Time(),
	}

	if onTile && cur == session.Target &&
		a.tiles.Valid(session.Target) && a.tiles.IsDirty(session.Target) {
		a.tiles.MarkClean(session.Target)
		a.committed++
		outcome.Committed = true

		a.InvokeHook(sim.HookCtx{
			Domain: a,
			Pos:    HookPosCleanCommit,
			Item:   outcome,
		})

		return
	}

	a.aborted++
	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosCleanAbort,
		Item:   outcome,
	})
}
