package world

import "fmt"

const (
	// ScreenWidth and ScreenHeight are the logical play field size in pixels.
	ScreenWidth  = 640
	ScreenHeight = 640

	// TileSize is the edge length of one grid cell in pixels.
	TileSize = 64

	// GridWidth and GridHeight are the play field dimensions in cells.
	GridWidth  = ScreenWidth / TileSize
	GridHeight = ScreenHeight / TileSize
)

// Cell is a discrete (col, row) address on the play field.
type Cell struct {
	Col, Row int
}

// Pixel is a position in pixel space.
type Pixel struct {
	X, Y int
}

// C is shorthand for building a Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// InBounds returns true if the cell lies on the play field.
func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < GridWidth && c.Row >= 0 && c.Row < GridHeight
}

// Add returns the cell offset by the given delta.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Pixel returns the top-left pixel of the cell.
func (c Cell) Pixel() Pixel {
	return Pixel{X: c.Col * TileSize, Y: c.Row * TileSize}
}

// String returns "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Aligned returns true if the pixel sits exactly on a tile corner.
func (p Pixel) Aligned() bool {
	return p.X%TileSize == 0 && p.Y%TileSize == 0
}

// Cell returns the cell containing the pixel. Only exact for aligned pixels.
func (p Pixel) Cell() Cell {
	return Cell{Col: p.X / TileSize, Row: p.Y / TileSize}
}

// String returns "(x,y)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
