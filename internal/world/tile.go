// Package world provides the play field grid: cells, pixel coordinates and tiles.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileFloor is the only tile the play field is made of; every cell is walkable.
	TileFloor Tile = '.'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
