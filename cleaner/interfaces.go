package cleaner

import (
	"github.com/sarchlab/floorbot/floor"
)

// TileView reads the state of tiles that someone else owns.
type TileView interface {
	Valid(id floor.TileID) bool
	Position(id floor.TileID) (floor.Vec3, bool)
	IsDirty(id floor.TileID) bool
}

// TileMutator can also clean tiles.
type TileMutator interface {
	TileView

	MarkClean(id floor.TileID)
}

// GroundProbe is the downward ray cast that finds the tile under the agent.
type GroundProbe interface {
	Probe() (floor.TileID, bool)
}

// GroundSensing is the agent's belief about the tile it stands on.
type GroundSensing interface {
	// Sense refreshes the belief.
	Sense()

	CurrentTile() (floor.TileID, bool)
	CurrentTileIsDirty() bool
}

// VisionSensing reports the tiles that the agent can currently see. Every call
// returns a fresh snapshot.
type VisionSensing interface {
	ObservedTiles() []floor.TileID
}

// Mover steers the agent. Calls are fire-and-forget.
type Mover interface {
	SeekTowards(pos floor.Vec3, arriveRadius, weight float64)
}

// Locator tells where the agent is.
type Locator interface {
	Position() floor.Vec3
}

// Actuator performs timed cleaning actions.
type Actuator interface {
	IsCleaning() bool
	TryClean() bool
}
