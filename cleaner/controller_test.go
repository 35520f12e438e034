package cleaner

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

var _ = Describe("Controller", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *sim.SerialEngine
		world    *floor.World
		probe    *stubProbe
		mover    *MockMover
		locator  *MockLocator
		vision   *MockVisionSensing
		actuator *MockActuator
		agentPos floor.Vec3
		seen     []floor.TileID
		cfg      Config
		builder  Builder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = sim.NewSerialEngine()
		world = floor.NewWorld(1)
		probe = &stubProbe{}
		mover = NewMockMover(mockCtrl)
		locator = NewMockLocator(mockCtrl)
		vision = NewMockVisionSensing(mockCtrl)
		actuator = NewMockActuator(mockCtrl)

		agentPos = floor.V3(3, 0, 3)
		seen = nil
		locator.EXPECT().Position().
			DoAndReturn(func() floor.Vec3 { return agentPos }).
			AnyTimes()
		vision.EXPECT().ObservedTiles().
			DoAndReturn(func() []floor.TileID { return seen }).
			AnyTimes()
		actuator.EXPECT().IsCleaning().Return(false).AnyTimes()

		cfg = DefaultConfig()
		cfg.SweepStep = 2
		cfg.SweepInset = 4

		builder = MakeBuilder().
			WithEngine(engine).
			WithTiles(world).
			WithGroundProbe(probe).
			WithVision(vision).
			WithMover(mover).
			WithLocator(locator).
			WithActuator(actuator).
			WithFloorBounds(floor.Rect{Left: 0, Right: 6, Bottom: 0, Top: 6})
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should think at the configured interval", func() {
		c := builder.WithConfig(cfg).Build("Agent")

		Expect(c.Freq.Period()).To(BeNumerically("~", 0.12, 1e-9))
		Expect(c.Misconfigured()).To(BeFalse())
	})

	Context("when nothing dirty is known", func() {
		It("should sweep toward the first waypoint", func() {
			c := builder.WithConfig(cfg).Build("Agent")
			Expect(c.Route().Len()).To(Equal(20))

			mover.EXPECT().SeekTowards(floor.V3(0, 0, 0), 0.55, 0.7)

			Expect(c.Tick()).To(BeTrue())

			Expect(c.State()).To(Equal(StateSearch))
			d := c.LastDecision()
			Expect(d.Dispatched).To(BeTrue())
			Expect(d.Destination).To(Equal(floor.V3(0, 0, 0)))
		})

		It("should move on to the next waypoint after arriving", func() {
			c := builder.WithConfig(cfg).Build("Agent")

			gomock.InOrder(
				mover.EXPECT().SeekTowards(floor.V3(0, 0, 0), 0.55, 0.7),
				mover.EXPECT().SeekTowards(floor.V3(6, 0, 0), 0.55, 0.7),
			)

			c.Tick()
			agentPos = floor.V3(0.1, 0, 0.2)
			c.Tick()

			Expect(c.Route().Cursor()).To(Equal(1))
		})

		It("should wander when there is no route", func() {
			c := builder.
				WithConfig(cfg).
				WithFloorBounds(floor.EmptyRect()).
				Build("Agent")

			var picks []floor.Vec3
			mover.EXPECT().SeekTowards(gomock.Any(), 0.55, 0.6).
				Do(func(pos floor.Vec3, _, _ float64) { picks = append(picks, pos) }).
				Times(3)

			c.Tick()
			c.Tick()
			Expect(engine.RunUntil(1.5)).To(Succeed())
			c.Tick()

			Expect(c.State()).To(Equal(StateSearch))
			Expect(picks[1]).To(Equal(picks[0]))
			for _, p := range picks {
				Expect(p.Distance(floor.V3(3, 0, 3))).
					To(BeNumerically("<=", cfg.WanderRadius))
			}
		})
	})

	Context("when dirty tiles are in sight", func() {
		var near, far floor.TileID

		BeforeEach(func() {
			agentPos = floor.V3(0, 0, 0)
			far = world.AddTile(floor.V3(5, 0, 0))
			near = world.AddTile(floor.V3(0, 0, 3))
			world.MarkDirty(far)
			world.MarkDirty(near)
			seen = []floor.TileID{far, near}
		})

		It("should go to the nearest one", func() {
			c := builder.WithConfig(cfg).Build("Agent")

			mover.EXPECT().SeekTowards(floor.V3(0, 0, 3), 0.55, 1.0)

			c.Tick()

			Expect(c.State()).To(Equal(StateGoToDirty))
			target, ok := c.Target()
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(near))
		})

		It("should not dispatch once within the arrive distance", func() {
			c := builder.WithConfig(cfg).Build("Agent")
			agentPos = floor.V3(0, 0, 2.6)

			c.Tick()

			Expect(c.State()).To(Equal(StateGoToDirty))
			Expect(c.LastDecision().Dispatched).To(BeFalse())
		})

		It("should clean the tile underfoot instead of moving", func() {
			c := builder.WithConfig(cfg).Build("Agent")
			probe.standOn(near)

			actuator.EXPECT().TryClean().Return(true)

			c.Tick()

			Expect(c.State()).To(Equal(StateClean))
			Expect(c.LastDecision().Cleaning).To(BeTrue())
		})

		It("should keep the old target while cleaning and drop it later", func() {
			c := builder.WithConfig(cfg).Build("Agent")
			mover.EXPECT().SeekTowards(gomock.Any(), gomock.Any(), gomock.Any()).
				AnyTimes()
			actuator.EXPECT().TryClean().Return(true)

			c.Tick()
			world.MarkClean(near)
			probe.standOn(far)
			c.Tick()

			Expect(c.State()).To(Equal(StateClean))
			target, ok := c.Target()
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(near))

			probe.leave()
			c.Tick()

			target, ok = c.Target()
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal(far))
			Expect(c.State()).To(Equal(StateGoToDirty))
		})

		It("should fall back to sweeping when the target disappears", func() {
			c := builder.WithConfig(cfg).Build("Agent")
			mover.EXPECT().SeekTowards(gomock.Any(), gomock.Any(), gomock.Any()).
				AnyTimes()

			c.Tick()
			world.Destroy(near)
			world.Destroy(far)
			seen = nil
			c.Tick()

			_, ok := c.Target()
			Expect(ok).To(BeFalse())
			Expect(c.State()).To(Equal(StateSearch))
		})
	})

	It("should not think while a cleaning session is running", func() {
		busy := NewMockActuator(mockCtrl)
		busy.EXPECT().IsCleaning().Return(true).AnyTimes()
		ground := NewMockGroundSensing(mockCtrl)

		c := builder.
			WithConfig(cfg).
			WithActuator(busy).
			WithGroundSensing(ground).
			Build("Agent")

		Expect(c.Tick()).To(BeTrue())
		Expect(c.Tick()).To(BeTrue())
		Expect(c.Report().SkippedThinks).To(Equal(uint64(2)))
	})

	It("should report missing collaborators once and stay idle", func() {
		core, logs := observer.New(zapcore.DebugLevel)

		c := MakeBuilder().
			WithEngine(engine).
			WithLogger(zap.New(core)).
			WithTiles(world).
			WithGroundProbe(probe).
			WithLocator(locator).
			Build("Agent")

		Expect(c.Misconfigured()).To(BeTrue())
		Expect(c.Tick()).To(BeTrue())
		Expect(c.Tick()).To(BeTrue())

		errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].ContextMap()["missing"]).
			To(ConsistOf("vision", "mover"))
	})

	It("should publish every decision through a hook", func() {
		c := builder.WithConfig(cfg).Build("Agent")
		hooks := &hookRecorder{}
		c.AcceptHook(hooks)
		mover.EXPECT().SeekTowards(gomock.Any(), gomock.Any(), gomock.Any())

		c.Tick()

		Expect(hooks.positions).To(Equal([]*sim.HookPos{HookPosDecision}))
		Expect(hooks.items[0].(Decision).State).To(Equal(StateSearch))
	})

	It("should panic on an invalid config", func() {
		cfg.ThinkInterval = 0

		Expect(func() { builder.WithConfig(cfg).Build("Agent") }).To(Panic())
	})
})
