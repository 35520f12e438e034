package floor

import (
	"math/rand"

	"github.com/sarchlab/floorbot/sim"
)

// HookPosTileSoiled marks when the soiler makes a tile dirty. The hook item is
// the TileID.
var HookPosTileSoiled = &sim.HookPos{Name: "Tile Soiled"}

// A Soiler dirties random clean tiles while the simulation runs. It stands for
// everything in the world that makes a floor dirty again.
type Soiler struct {
	*sim.TickingComponent

	world       *World
	rng         *rand.Rand
	probability float64
}

// SoilerBuilder builds Soilers.
type SoilerBuilder struct {
	engine      sim.EventScheduler
	world       *World
	interval    sim.VTimeInSec
	probability float64
	seed        int64
}

// MakeSoilerBuilder returns a builder with default parameters.
func MakeSoilerBuilder() SoilerBuilder {
	return SoilerBuilder{
		interval:    1,
		probability: 0.1,
		seed:        1,
	}
}

// WithEngine sets the engine that drives the soiler.
func (b SoilerBuilder) WithEngine(engine sim.EventScheduler) SoilerBuilder {
	b.engine = engine
	return b
}

// WithWorld sets the world to soil.
func (b SoilerBuilder) WithWorld(world *World) SoilerBuilder {
	b.world = world
	return b
}

// WithInterval sets the time between two soiling attempts.
func (b SoilerBuilder) WithInterval(interval sim.VTimeInSec) SoilerBuilder {
	b.interval = interval
	return b
}

// WithProbability sets the chance that an attempt soils a tile.
func (b SoilerBuilder) WithProbability(p float64) SoilerBuilder {
	b.probability = p
	return b
}

// WithSeed sets the seed of the random source.
func (b SoilerBuilder) WithSeed(seed int64) SoilerBuilder {
	b.seed = seed
	return b
}

// Build creates the soiler. Call TickLater to start it.
func (b SoilerBuilder) Build(name string) *Soiler {
	if b.world == nil || b.engine == nil {
		panic("soiler requires a world and an engine")
	}

	s := &Soiler{
		world:       b.world,
		rng:         rand.New(rand.NewSource(b.seed)),
		probability: b.probability,
	}
	s.TickingComponent = sim.NewTickingComponent(
		name, b.engine, sim.FreqFromPeriod(b.interval), s)

	return s
}

// Tick makes one soiling attempt.
func (s *Soiler) Tick() bool {
	if s.rng.Float64() >= s.probability {
		return true
	}

	clean := make([]TileID, 0)
	for _, id := range s.world.Tiles() {
		if !s.world.IsDirty(id) {
			clean = append(clean, id)
		}
	}

	if len(clean) == 0 {
		return true
	}

	id := clean[s.rng.Intn(len(clean))]
	s.world.MarkDirty(id)

	s.InvokeHook(sim.HookCtx{
		Domain: s,
		Pos:    HookPosTileSoiled,
		Item:   id,
	})

	return true
}
