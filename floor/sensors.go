package floor

// Locator tells where something is.
type Locator interface {
	Position() Vec3
}

// GroundRay casts a ray straight down from a point above the agent and reports
// the tile it hits.
type GroundRay struct {
	World *World
	Body  Locator

	// StartOffset lifts the ray origin above the agent so that the ray starts
	// outside of the agent's own body.
	StartOffset float64

	// Distance is how far the ray travels down from its origin.
	Distance float64
}

// NewGroundRay creates a ground ray with the offsets used by a typical agent.
func NewGroundRay(world *World, body Locator) *GroundRay {
	return &GroundRay{
		World:       world,
		Body:        body,
		StartOffset: 0.5,
		Distance:    2.0,
	}
}

// Probe returns the tile under the agent, if the ray reaches one.
func (g *GroundRay) Probe() (TileID, bool) {
	p := g.Body.Position()
	originY := p.Y + g.StartOffset

	id, ok := g.World.TileAt(p.X, p.Z)
	if !ok {
		return NoTile, false
	}

	tilePos, ok := g.World.Position(id)
	if !ok {
		return NoTile, false
	}

	drop := originY - tilePos.Y
	if drop < 0 || drop > g.Distance {
		return NoTile, false
	}

	return id, true
}

// Vision reports the tiles within a radius of the eye. A non-positive radius
// sees every tile.
type Vision struct {
	World  *World
	Eye    Locator
	Radius float64
}

// NewVision creates a vision sensor.
func NewVision(world *World, eye Locator, radius float64) *Vision {
	return &Vision{World: world, Eye: eye, Radius: radius}
}

// ObservedTiles returns a fresh snapshot of the visible tiles in slot order.
func (v *Vision) ObservedTiles() []TileID {
	all := v.World.Tiles()
	if v.Radius <= 0 {
		return all
	}

	eye := v.Eye.Position()
	r2 := v.Radius * v.Radius
	seen := all[:0]

	for _, id := range all {
		pos, _ := v.World.Position(id)
		if pos.SqrDistance(eye) <= r2 {
			seen = append(seen, id)
		}
	}

	return seen
}
