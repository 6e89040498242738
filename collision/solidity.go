package collision

import (
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
)

// Side is a bitmask of tile faces that block movement.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideBottom
	SideLeft
	SideRight

	SideNone Side = 0
	SideAll       = SideTop | SideBottom | SideLeft | SideRight
)

func (s Side) Has(o Side) bool {
	return s&o == o
}

// Dimensions of the tileset sheet in cells.
const (
	TilesetColumns = 16
	TilesetRows    = 11
)

const (
	nn = SideNone
	tt = SideTop
)

// TilesetSolidity lists the solid faces of every tileset cell, row-major.
// Tileset walls are one-way ledges: they hold from above and can be passed
// from below or the side.
var TilesetSolidity = [TilesetColumns * TilesetRows]Side{
	tt, tt, tt, nn, nn, nn, tt, tt, tt, nn, nn, nn, tt, tt, tt, tt,
	nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, tt, tt, tt, nn,
	nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn,
	nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn,
	tt, tt, tt, tt, tt, nn, tt, tt, tt, nn, nn, nn, tt, tt, tt, tt,
	tt, tt, tt, tt, tt, nn, nn, nn, nn, nn, nn, nn, tt, tt, tt, nn,
	tt, tt, tt, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn,
	nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn, nn,
	tt, tt, tt, nn, nn, nn, tt, tt, tt, tt, tt, nn, tt, tt, tt, nn,
	nn, nn, nn, nn, nn, nn, tt, tt, tt, tt, tt, nn, tt, tt, tt, nn,
	nn, nn, nn, nn, nn, nn, tt, tt, tt, nn, nn, nn, tt, tt, tt, nn,
}

// SolidityOf returns the solid faces of a wall record. Anything that is not
// a wall has none.
func SolidityOf(t leveldata.Tile) Side {
	switch leveldata.Classify(t.Source) {
	case leveldata.ClassGuiWall:
		return SideAll
	case leveldata.ClassTilesetWall:
		return tilesetCell(t.Cell)
	default:
		return SideNone
	}
}

func tilesetCell(cell gamemath.TileCoord) Side {
	if cell.X < 0 || cell.Y < 0 || cell.X >= TilesetColumns || cell.Y >= TilesetRows {
		logger.Log.WithField("cell", cell).Warn("Tileset cell outside solidity table, treating as solid")
		return SideAll
	}
	return TilesetSolidity[cell.Y*TilesetColumns+cell.X]
}
