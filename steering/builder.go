package steering

import (
	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// Builder can build Bodies.
type Builder struct {
	engine   sim.EventScheduler
	freq     sim.Freq
	maxSpeed float64
	position floor.Vec3
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:     30 * sim.Hz,
		maxSpeed: 3,
	}
}

// WithEngine sets the engine that moves the body.
func (b Builder) WithEngine(engine sim.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithFreq sets how often the body moves.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMaxSpeed sets the speed of the body when the seek weight is 1.
func (b Builder) WithMaxSpeed(speed float64) Builder {
	b.maxSpeed = speed
	return b
}

// WithPosition sets where the body starts.
func (b Builder) WithPosition(pos floor.Vec3) Builder {
	b.position = pos
	return b
}

// Build creates the body.
func (b Builder) Build(name string) *Body {
	if b.engine == nil {
		panic("body requires an engine")
	}

	body := &Body{
		pos:      b.position,
		maxSpeed: b.maxSpeed,
	}
	body.TickingComponent = sim.NewTickingComponent(
		name, b.engine, b.freq, body)

	return body
}
