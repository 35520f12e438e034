package main

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/config"
	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
	"github.com/sarchlab/floorbot/steering"
)

// scenario is one floor with one agent on it.
type scenario struct {
	world  *floor.World
	body   *steering.Body
	agent  *cleaner.Controller
	soiler *floor.Soiler
}

func (s *scenario) components() []sim.Component {
	comps := []sim.Component{s.body}
	comps = append(comps, s.agent.Components()...)

	if s.soiler != nil {
		comps = append(comps, s.soiler)
	}

	return comps
}

// start kicks off the agent and the soiler. The body wakes up on its own
// when the agent first steers it.
func (s *scenario) start() {
	s.agent.Start()

	if s.soiler != nil {
		s.soiler.TickLater()
	}
}

func buildScenario(
	cfg *config.Config,
	engine sim.EventScheduler,
	logger *zap.Logger,
) *scenario {
	s := &scenario{}

	s.world = floor.NewGrid(
		cfg.Floor.Cols, cfg.Floor.Rows, cfg.Floor.TileSize, floor.V3(0, 0, 0))
	soilInitially(s.world, cfg.Floor.DirtyFraction, cfg.Cleaner.Seed)

	bounds := s.world.Bounds()

	s.body = steering.MakeBuilder().
		WithEngine(engine).
		WithFreq(sim.Freq(cfg.Body.FreqHz) * sim.Hz).
		WithMaxSpeed(cfg.Body.MaxSpeed).
		WithPosition(startPosition(cfg, bounds)).
		Build("Body")

	s.agent = cleaner.MakeBuilder().
		WithEngine(engine).
		WithConfig(cfg.Cleaner).
		WithLogger(logger).
		WithTiles(s.world).
		WithGroundProbe(floor.NewGroundRay(s.world, s.body)).
		WithVision(floor.NewVision(s.world, s.body, cfg.Body.VisionRadius)).
		WithBody(s.body).
		WithFloorBounds(bounds).
		Build("Agent")

	if cfg.Soil.Enabled {
		s.soiler = floor.MakeSoilerBuilder().
			WithEngine(engine).
			WithWorld(s.world).
			WithInterval(sim.VTimeInSec(cfg.Soil.Interval)).
			WithProbability(cfg.Soil.Probability).
			WithSeed(cfg.Cleaner.Seed + 1).
			Build("Soiler")
	}

	logger.Info("scenario built",
		zap.Int("tiles", s.world.Len()),
		zap.Int("dirty", s.world.DirtyCount()),
		zap.Stringer("start", s.body.Position()),
		zap.Int("sweep_waypoints", s.agent.Route().Len()),
		zap.Bool("soiling", s.soiler != nil),
	)

	return s
}

func startPosition(cfg *config.Config, bounds floor.Rect) floor.Vec3 {
	if cfg.Body.StartAt != nil {
		return floor.V3(cfg.Body.StartAt[0], 0, cfg.Body.StartAt[1])
	}

	return floor.V3(
		(bounds.Left+bounds.Right)/2,
		0,
		(bounds.Bottom+bounds.Top)/2,
	)
}

// soilInitially marks a seeded random share of the tiles dirty.
func soilInitially(world *floor.World, fraction float64, seed int64) {
	tiles := world.Tiles()
	n := int(math.Round(fraction * float64(len(tiles))))

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	for _, id := range tiles[:n] {
		world.MarkDirty(id)
	}
}
