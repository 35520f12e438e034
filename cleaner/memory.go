package cleaner

import (
	"math"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// MemoryEntry records when a tile was last confirmed dirty.
type MemoryEntry struct {
	Tile     floor.TileID   `json:"tile"`
	LastSeen sim.VTimeInSec `json:"last_seen"`
}

// DirtyTileMemory remembers the dirty tiles that the agent has seen. Entries
// are refreshed by observation and evicted either when the tile is seen clean
// or when nobody has confirmed it for longer than the forget window.
//
// Entries are kept in the order that their tiles were first seen, which is
// also the order that Nearest breaks ties in.
type DirtyTileMemory struct {
	tiles       TileView
	forgetAfter sim.VTimeInSec

	lastSeen map[floor.TileID]sim.VTimeInSec
	order    []floor.TileID
}

// NewDirtyTileMemory creates an empty memory.
func NewDirtyTileMemory(
	tiles TileView,
	forgetAfter sim.VTimeInSec,
) *DirtyTileMemory {
	return &DirtyTileMemory{
		tiles:       tiles,
		forgetAfter: forgetAfter,
		lastSeen:    make(map[floor.TileID]sim.VTimeInSec),
	}
}

// ForgetAfter returns the length of the forget window.
func (m *DirtyTileMemory) ForgetAfter() sim.VTimeInSec {
	return m.forgetAfter
}

// Update folds an observation snapshot taken at now into the memory and then
// evicts every entry that is clean, invalid, or older than the forget window.
func (m *DirtyTileMemory) Update(observed []floor.TileID, now sim.VTimeInSec) {
	for _, id := range observed {
		if !m.tiles.IsDirty(id) {
			delete(m.lastSeen, id)
			continue
		}

		if _, known := m.lastSeen[id]; !known {
			m.order = append(m.order, id)
		}

		m.lastSeen[id] = now
	}

	kept := m.order[:0]
	for _, id := range m.order {
		seen, ok := m.lastSeen[id]
		if !ok {
			continue
		}

		if !m.tiles.IsDirty(id) || now-seen > m.forgetAfter {
			delete(m.lastSeen, id)
			continue
		}

		kept = append(kept, id)
	}

	m.order = kept
}

// Nearest returns the remembered dirty tile closest to from.
func (m *DirtyTileMemory) Nearest(from floor.Vec3) (floor.TileID, bool) {
	best := floor.NoTile
	bestSqr := math.MaxFloat64
	found := false

	for _, id := range m.order {
		// Tiles can change between updates.
		if !m.tiles.IsDirty(id) {
			continue
		}

		pos, ok := m.tiles.Position(id)
		if !ok {
			continue
		}

		d := pos.SqrDistance(from)
		if d < bestSqr {
			bestSqr = d
			best = id
			found = true
		}
	}

	return best, found
}

// Forget drops the entry of a tile.
func (m *DirtyTileMemory) Forget(id floor.TileID) {
	if _, ok := m.lastSeen[id]; !ok {
		return
	}

	delete(m.lastSeen, id)

	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// LastSeen returns when the tile was last confirmed dirty.
func (m *DirtyTileMemory) LastSeen(id floor.TileID) (sim.VTimeInSec, bool) {
	t, ok := m.lastSeen[id]
	return t, ok
}

// Len returns the number of entries.
func (m *DirtyTileMemory) Len() int {
	return len(m.order)
}

// Entries returns a copy of all the entries in iteration order.
func (m *DirtyTileMemory) Entries() []MemoryEntry {
	entries := make([]MemoryEntry, 0, len(m.order))
	for _, id := range m.order {
		entries = append(entries, MemoryEntry{Tile: id, LastSeen: m.lastSeen[id]})
	}

	return entries
}
