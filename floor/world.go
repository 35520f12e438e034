// Package floor models the tiled floor that a cleaning agent works on.
//
// Tiles live in an arena owned by World. Callers hold TileIDs, which carry a
// generation number, so a handle to a destroyed tile can be detected instead
// of silently aliasing a newer tile that reuses the slot.
package floor

import (
	"fmt"
	"math"
)

// TileID is a generation-checked handle to a tile. The zero TileID never
// refers to a tile.
type TileID struct {
	Index uint32
	Gen   uint32
}

// NoTile is the handle that refers to nothing.
var NoTile = TileID{}

func (id TileID) String() string {
	return fmt.Sprintf("Tile[%d#%d]", id.Index, id.Gen)
}

type tileSlot struct {
	gen   uint32
	alive bool
	pos   Vec3
	dirty bool
}

type cellKey struct {
	x, z int64
}

// World owns every tile on the floor.
type World struct {
	tileSize float64
	slots    []tileSlot
	free     []uint32
	cells    map[cellKey]TileID
}

// NewWorld creates an empty world whose tiles are squares of the given size.
func NewWorld(tileSize float64) *World {
	if tileSize <= 0 {
		panic("tile size must be positive")
	}

	return &World{
		tileSize: tileSize,
		cells:    make(map[cellKey]TileID),
	}
}

// NewGrid creates a world with cols x rows tiles. The first tile is centered
// at origin and the others follow along +X and +Z.
func NewGrid(cols, rows int, tileSize float64, origin Vec3) *World {
	w := NewWorld(tileSize)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w.AddTile(Vec3{
				X: origin.X + float64(c)*tileSize,
				Y: origin.Y,
				Z: origin.Z + float64(r)*tileSize,
			})
		}
	}

	return w
}

// TileSize returns the side length of a tile.
func (w *World) TileSize() float64 {
	return w.tileSize
}

func (w *World) keyOf(x, z float64) cellKey {
	return cellKey{
		x: int64(math.Round(x / w.tileSize)),
		z: int64(math.Round(z / w.tileSize)),
	}
}

// AddTile places a clean tile centered at pos. It panics if another tile
// already covers that cell.
func (w *World) AddTile(pos Vec3) TileID {
	key := w.keyOf(pos.X, pos.Z)
	if _, taken := w.cells[key]; taken {
		panic(fmt.Sprintf("a tile already covers %s", pos))
	}

	var id TileID
	if n := len(w.free); n > 0 {
		id.Index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.slots = append(w.slots, tileSlot{})
		id.Index = uint32(len(w.slots) - 1)
	}

	slot := &w.slots[id.Index]
	slot.gen++
	slot.alive = true
	slot.pos = pos
	slot.dirty = false
	id.Gen = slot.gen

	w.cells[key] = id

	return id
}

// Destroy removes a tile. Every handle to it becomes invalid.
func (w *World) Destroy(id TileID) {
	if !w.Valid(id) {
		return
	}

	slot := &w.slots[id.Index]
	delete(w.cells, w.keyOf(slot.pos.X, slot.pos.Z))
	slot.alive = false
	slot.dirty = false
	slot.gen++
	w.free = append(w.free, id.Index)
}

// Valid tells if the handle still refers to a live tile.
func (w *World) Valid(id TileID) bool {
	if int(id.Index) >= len(w.slots) {
		return false
	}

	slot := w.slots[id.Index]

	return slot.alive && slot.gen == id.Gen
}

// Position returns the center of the tile.
func (w *World) Position(id TileID) (Vec3, bool) {
	if !w.Valid(id) {
		return Vec3{}, false
	}

	return w.slots[id.Index].pos, true
}

// IsDirty tells if the tile is dirty. Invalid handles are never dirty.
func (w *World) IsDirty(id TileID) bool {
	return w.Valid(id) && w.slots[id.Index].dirty
}

// MarkDirty soils the tile.
func (w *World) MarkDirty(id TileID) {
	if w.Valid(id) {
		w.slots[id.Index].dirty = true
	}
}

// MarkClean clears the dirty flag of the tile.
func (w *World) MarkClean(id TileID) {
	if w.Valid(id) {
		w.slots[id.Index].dirty = false
	}
}

// TileAt returns the tile whose square covers the point (x, z).
func (w *World) TileAt(x, z float64) (TileID, bool) {
	id, ok := w.cells[w.keyOf(x, z)]

	return id, ok
}

// Tiles returns the handles of all live tiles in slot order.
func (w *World) Tiles() []TileID {
	ids := make([]TileID, 0, len(w.cells))
	for i, slot := range w.slots {
		if slot.alive {
			ids = append(ids, TileID{Index: uint32(i), Gen: slot.gen})
		}
	}

	return ids
}

// Len returns the number of live tiles.
func (w *World) Len() int {
	return len(w.cells)
}

// DirtyCount returns the number of dirty tiles.
func (w *World) DirtyCount() int {
	n := 0
	for _, slot := range w.slots {
		if slot.alive && slot.dirty {
			n++
		}
	}

	return n
}

// Bounds returns the rectangle spanned by the tile centers. An empty world
// has an empty rectangle.
func (w *World) Bounds() Rect {
	r := EmptyRect()
	for _, slot := range w.slots {
		if slot.alive {
			r = r.ExpandTo(slot.pos)
		}
	}

	return r
}
