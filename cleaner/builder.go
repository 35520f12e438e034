package cleaner

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// Body is something that can both move and report where it is.
type Body interface {
	Mover
	Locator
}

// Builder can build cleaning controllers.
type Builder struct {
	engine sim.EventScheduler
	cfg    Config
	logger *zap.Logger

	tiles    TileMutator
	probe    GroundProbe
	ground   GroundSensing
	vision   VisionSensing
	mover    Mover
	locator  Locator
	actuator Actuator

	bounds floor.Rect
}

// MakeBuilder creates a builder with the default config.
func MakeBuilder() Builder {
	return Builder{
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
		bounds: floor.EmptyRect(),
	}
}

// WithEngine sets the engine that the controller ticks on.
func (b Builder) WithEngine(engine sim.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithConfig sets the parameters.
func (b Builder) WithConfig(cfg Config) Builder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	b.logger = logger
	return b
}

// WithTiles sets the tiles that the agent can see and clean.
func (b Builder) WithTiles(tiles TileMutator) Builder {
	b.tiles = tiles
	return b
}

// WithGroundProbe sets the probe that finds the tile underfoot.
func (b Builder) WithGroundProbe(probe GroundProbe) Builder {
	b.probe = probe
	return b
}

// WithGroundSensing replaces the ground state that would otherwise be built
// from the ground probe.
func (b Builder) WithGroundSensing(ground GroundSensing) Builder {
	b.ground = ground
	return b
}

// WithVision sets the vision sensor.
func (b Builder) WithVision(vision VisionSensing) Builder {
	b.vision = vision
	return b
}

// WithMover sets the movement collaborator.
func (b Builder) WithMover(mover Mover) Builder {
	b.mover = mover
	return b
}

// WithLocator sets the collaborator that reports the agent position.
func (b Builder) WithLocator(locator Locator) Builder {
	b.locator = locator
	return b
}

// WithBody sets both the mover and the locator.
func (b Builder) WithBody(body Body) Builder {
	b.mover = body
	b.locator = body
	return b
}

// WithActuator replaces the cleaning actuator that would otherwise be built.
func (b Builder) WithActuator(actuator Actuator) Builder {
	b.actuator = actuator
	return b
}

// WithFloorBounds sets the area that the sweep route covers.
func (b Builder) WithFloorBounds(bounds floor.Rect) Builder {
	b.bounds = bounds
	return b
}

// Build creates a controller. Missing collaborators do not fail the build.
// They are reported once, and the controller then skips every think.
func (b Builder) Build(name string) *Controller {
	b.parametersMustBeValid()

	c := &Controller{
		cfg:     b.cfg,
		logger:  b.logger.With(zap.String("controller", name)),
		tiles:   b.tiles,
		vision:  b.vision,
		mover:   b.mover,
		locator: b.locator,
		memory:  NewDirtyTileMemory(b.tiles, b.cfg.ForgetDirtyAfter),
		rng:     rand.New(rand.NewSource(b.cfg.Seed)),
		target:  floor.NoTile,
	}
	c.TickingComponent = sim.NewTickingComponent(
		name, b.engine, sim.FreqFromPeriod(b.cfg.ThinkInterval), c)

	b.buildGround(c)
	b.buildActuator(c, name)
	b.buildRoute(c)

	if c.locator != nil {
		c.wanderCenter = c.locator.Position()
	}

	c.misconfigured = b.reportMissing(c)

	return c
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		panic("cleaner controller requires an engine")
	}

	if err := b.cfg.Validate(); err != nil {
		panic(fmt.Sprintf("cleaner controller: %v", err))
	}
}

func (b Builder) buildGround(c *Controller) {
	switch {
	case b.ground != nil:
		c.ground = b.ground
	case b.probe != nil && b.tiles != nil:
		c.ground = NewGroundState(b.probe, b.tiles)
	}
}

func (b Builder) buildActuator(c *Controller, name string) {
	if b.actuator != nil {
		c.actuator = b.actuator
		return
	}

	if c.ground == nil || b.tiles == nil {
		return
	}

	actuator := NewCleaningActuator(
		sim.BuildName(name, "Actuator"),
		b.engine,
		c.ground,
		b.tiles,
		b.cfg.CleaningDuration,
	)
	c.actuator = actuator
	c.components = append(c.components, actuator)
}

func (b Builder) buildRoute(c *Controller) {
	height := 0.0
	if c.locator != nil {
		height = c.locator.Position().Y
	}

	points, err := BuildSweep(b.bounds, b.cfg.SweepStep, b.cfg.SweepInset, height)
	if err != nil {
		c.logger.Warn("sweep route unavailable, falling back to wandering",
			zap.Error(err))
	}

	c.route = NewSweepRoute(points)
	if c.route.Len() == 0 {
		c.logger.Info("empty sweep route, the controller will wander")
	}
}

func (b Builder) reportMissing(c *Controller) bool {
	var missing []string

	if c.tiles == nil {
		missing = append(missing, "tiles")
	}

	if c.ground == nil {
		missing = append(missing, "ground")
	}

	if c.vision == nil {
		missing = append(missing, "vision")
	}

	if c.mover == nil {
		missing = append(missing, "mover")
	}

	if c.locator == nil {
		missing = append(missing, "locator")
	}

	if c.actuator == nil {
		missing = append(missing, "actuator")
	}

	if len(missing) == 0 {
		return false
	}

	c.logger.Error("controller is missing collaborators and will not think",
		zap.Strings("missing", missing))

	return true
}
