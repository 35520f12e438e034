package cleaner

import (
	"github.com/sarchlab/floorbot/floor"
)

// GroundState keeps the last answer of a ground probe. The tile it holds may
// be destroyed after sensing, so every query checks the handle again.
type GroundState struct {
	probe GroundProbe
	tiles TileView

	current floor.TileID
	hasTile bool
}

// NewGroundState creates a GroundState that has not sensed anything.
func NewGroundState(probe GroundProbe, tiles TileView) *GroundState {
	return &GroundState{
		probe: probe,
		tiles: tiles,
	}
}

// Sense casts the probe and records what is underneath.
func (g *GroundState) Sense() {
	g.current, g.hasTile = g.probe.Probe()
	if g.hasTile && !g.tiles.Valid(g.current) {
		g.current = floor.NoTile
		g.hasTile = false
	}
}

// CurrentTile returns the tile that the last Sense found.
func (g *GroundState) CurrentTile() (floor.TileID, bool) {
	if !g.hasTile || !g.tiles.Valid(g.current) {
		return floor.NoTile, false
	}

	return g.current, true
}

// CurrentTileIsDirty tells if the agent stands on a dirty tile.
func (g *GroundState) CurrentTileIsDirty() bool {
	id, ok := g.CurrentTile()

	return ok && g.tiles.IsDirty(id)
}
