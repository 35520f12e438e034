package cleaner

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

type hookRecorder struct {
	positions []*sim.HookPos
	items     []interface{}
}

func (h *hookRecorder) Func(ctx sim.HookCtx) {
	h.positions = append(h.positions, ctx.Pos)
	h.items = append(h.items, ctx.Item)
}

var _ = Describe("CleaningActuator", func() {
	var (
		engine   *sim.SerialEngine
		world    *floor.World
		tiles    *countingTiles
		tile     floor.TileID
		other    floor.TileID
		probe    *stubProbe
		hooks    *hookRecorder
		actuator *CleaningActuator
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		world = floor.NewWorld(1)
		tiles = &countingTiles{World: world}
		tile = world.AddTile(floor.V3(0, 0, 0))
		other = world.AddTile(floor.V3(1, 0, 0))
		world.MarkDirty(tile)
		world.MarkDirty(other)

		probe = &stubProbe{}
		probe.standOn(tile)

		hooks = &hookRecorder{}
		actuator = NewCleaningActuator(
			"Actuator", engine, NewGroundState(probe, world), tiles, 0.6)
		actuator.AcceptHook(hooks)
	})

	It("should not clean when off the floor", func() {
		probe.leave()

		Expect(actuator.TryClean()).To(BeFalse())
		Expect(actuator.IsCleaning()).To(BeFalse())
	})

	It("should not clean a clean tile", func() {
		world.MarkClean(tile)

		Expect(actuator.TryClean()).To(BeFalse())
	})

	It("should clean the tile underfoot after the duration", func() {
		Expect(actuator.TryClean()).To(BeTrue())

		session, ok := actuator.Pending()
		Expect(ok).To(BeTrue())
		Expect(session.Target).To(Equal(tile))
		Expect(session.Deadline).To(BeNumerically("~", 0.6, 1e-9))
		Expect(world.IsDirty(tile)).To(BeTrue())

		Expect(engine.Run()).To(Succeed())

		Expect(world.IsDirty(tile)).To(BeFalse())
		Expect(tiles.cleaned).To(Equal([]floor.TileID{tile}))
		Expect(actuator.IsCleaning()).To(BeFalse())
		Expect(engine.Now()).To(BeNumerically("~", 0.6, 1e-9))
	})

	It("should run one session at a time", func() {
		Expect(actuator.TryClean()).To(BeTrue())
		probe.standOn(other)

		Expect(actuator.CanClean()).To(BeFalse())
		Expect(actuator.TryClean()).To(BeFalse())

		session, _ := actuator.Pending()
		Expect(session.Target).To(Equal(tile))
	})

	It("should abort if the agent moved to another tile", func() {
		actuator.TryClean()
		probe.standOn(other)

		Expect(engine.Run()).To(Succeed())

		Expect(world.IsDirty(tile)).To(BeTrue())
		Expect(world.IsDirty(other)).To(BeTrue())
		Expect(tiles.cleaned).To(BeEmpty())
	})

	It("should abort if the tile was destroyed", func() {
		actuator.TryClean()
		world.Destroy(tile)

		Expect(engine.Run()).To(Succeed())

		Expect(tiles.cleaned).To(BeEmpty())
		committed, aborted := actuator.Stats()
		Expect(committed).To(BeZero())
		Expect(aborted).To(Equal(uint64(1)))
	})

	It("should abort if someone else cleaned the tile", func() {
		actuator.TryClean()
		world.MarkClean(tile)

		Expect(engine.Run()).To(Succeed())

		Expect(tiles.cleaned).To(BeEmpty())
	})

	It("should accept a new session once the previous one resolves", func() {
		actuator.TryClean()
		Expect(engine.Run()).To(Succeed())

		probe.standOn(other)

		Expect(actuator.TryClean()).To(BeTrue())
	})

	It("should report start and commit through hooks", func() {
		actuator.TryClean()
		Expect(engine.Run()).To(Succeed())

		Expect(hooks.positions).To(Equal(
			[]*sim.HookPos{HookPosCleanStart, HookPosCleanCommit}))
		outcome := hooks.items[1].(CleanOutcome)
		Expect(outcome.Committed).To(BeTrue())
		Expect(outcome.Session.Target).To(Equal(tile))
	})

	It("should report aborts through hooks", func() {
		actuator.TryClean()
		probe.leave()
		Expect(engine.Run()).To(Succeed())

		Expect(hooks.positions).To(Equal(
			[]*sim.HookPos{HookPosCleanStart, HookPosCleanAbort}))
		Expect(hooks.items[1].(CleanOutcome).Committed).To(BeFalse())
	})

	It("should ignore a completion that does not belong to the session", func() {
		actuator.TryClean()

		stale := &CleanDoneEvent{
			EventBase: sim.NewEventBase(0.3, actuator),
			Session:   CleaningSession{Target: tile},
		}
		Expect(actuator.Handle(stale)).To(Succeed())

		Expect(actuator.IsCleaning()).To(BeTrue())
		Expect(world.IsDirty(tile)).To(BeTrue())
	})
})
