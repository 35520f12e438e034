package tracing

import (
	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/sim"
)

// CollectTrace let the tracer to collect trace from a domain
func CollectTrace(domain NamedHookable, tracer Tracer) {
	h := traceHook{t: tracer, who: domain.Name()}
	domain.AcceptHook(&h)
}

// A traceHook forwards cleaner hook items to a tracer.
type traceHook struct {
	t   Tracer
	who string
}

func (h *traceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case cleaner.HookPosDecision:
		h.t.Decide(h.who, ctx.Item.(cleaner.Decision))
	case cleaner.HookPosCleanStart:
		h.t.StartClean(h.who, ctx.Item.(cleaner.CleaningSession))
	case cleaner.HookPosCleanCommit, cleaner.HookPosCleanAbort:
		h.t.EndClean(h.who, ctx.Item.(cleaner.CleanOutcome))
	}
}
