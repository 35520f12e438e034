// Package tracing collects what cleaning agents decide and do during a run.
package tracing

import (
	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/sim"
)

// NamedHookable represent something both have a name and can be hooked
type NamedHookable interface {
	sim.Named
	sim.Hookable
}

// A Tracer is told about decisions and cleaning sessions. The who argument
// is the name of the component that reported them.
type Tracer interface {
	Decide(who string, d cleaner.Decision)
	StartClean(who string, s cleaner.CleaningSession)
	EndClean(who string, o cleaner.CleanOutcome)
}
