// Package leveldata reads and writes level files. It has no dependencies on
// ebitengine, donburi, or resolv, pure data only.
package leveldata

import (
	"fmt"

	"github.com/automoto/pupu/shared/gamemath"
)

// TileSize is the edge of one grid tile in base (unscaled) pixels.
const TileSize = 16

// TileSource is the kind of a record in the level stream.
type TileSource int32

const (
	SourceGui TileSource = iota
	SourceTileset
	SourceBox1
	SourceBox2
	SourceBox3
	SourceEnemy1
	SourceEnemy2
	SourceEnemy3
	SourceEnemy4
	SourceEnemy5
	SourceTrap1
	SourceTrap2
	SourceTrap3
	SourceTrap4
	SourceTrap5
	SourceCharacterSpawn

	sourceCount
)

var sourceNames = [sourceCount]string{
	"Gui", "Tileset",
	"Box1", "Box2", "Box3",
	"Enemy1", "Enemy2", "Enemy3", "Enemy4", "Enemy5",
	"Trap1", "Trap2", "Trap3", "Trap4", "Trap5",
	"CharacterSpawn",
}

func (s TileSource) Valid() bool {
	return s >= 0 && s < sourceCount
}

func (s TileSource) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TileSource(%d)", int32(s))
	}
	return sourceNames[s]
}

// ParseSource maps a source name (as used for Tiled object names) back to
// its kind.
func ParseSource(name string) (TileSource, bool) {
	for i, n := range sourceNames {
		if n == name {
			return TileSource(i), true
		}
	}
	return 0, false
}

// Class groups sources by how the collision map treats them.
type Class int

const (
	ClassGuiWall Class = iota
	ClassTilesetWall
	ClassBox
	ClassActor
)

// Classify returns the collision class of a source.
func Classify(s TileSource) Class {
	switch {
	case s == SourceGui:
		return ClassGuiWall
	case s == SourceTileset:
		return ClassTilesetWall
	case s >= SourceBox1 && s <= SourceBox3:
		return ClassBox
	default:
		return ClassActor
	}
}

// Tile is one record of the level stream.
type Tile struct {
	Source TileSource
	// Pos is the top-left corner in base pixels.
	Pos gamemath.TileCoord
	// Cell is the visual cell in the source sheet.
	Cell gamemath.TileCoord
}

// GridPos returns the wall grid coordinate of the tile.
func (t Tile) GridPos() gamemath.TileCoord {
	return gamemath.TileCoord{X: floorDiv(t.Pos.X, TileSize), Y: floorDiv(t.Pos.Y, TileSize)}
}

// Level is a parsed level, already split by class. Tile order within each
// slice matches the file.
type Level struct {
	Width      int // tiles
	Height     int // tiles
	Background int
	Walls      []Tile
	Boxes      []Tile
	Actors     []Tile
}

// TileCount is the number of records Encode will write.
func (l *Level) TileCount() int {
	return len(l.Walls) + len(l.Boxes) + len(l.Actors)
}

// Add appends t to the slice matching its class.
func (l *Level) Add(t Tile) {
	switch Classify(t.Source) {
	case ClassGuiWall, ClassTilesetWall:
		l.Walls = append(l.Walls, t)
	case ClassBox:
		l.Boxes = append(l.Boxes, t)
	default:
		l.Actors = append(l.Actors, t)
	}
}

// Spawn returns the first character spawn record, if any.
func (l *Level) Spawn() (gamemath.TileCoord, bool) {
	for _, a := range l.Actors {
		if a.Source == SourceCharacterSpawn {
			return a.Pos, true
		}
	}
	return gamemath.TileCoord{}, false
}

// Base-pixel hitboxes relative to the record position.
var (
	boxHitbox   = gamemath.Rect{X: 5, Y: 5, W: 22, H: 22}
	enemyHitbox = gamemath.Rect{X: 14, Y: 26, W: 22, H: 22}
	trapHitbox  = gamemath.Rect{X: 4, Y: 8, W: 24, H: 24}
	spawnHitbox = gamemath.Rect{X: 0, Y: 0, W: TileSize, H: TileSize}
)

// Hitbox returns the collision rectangle of a record in base pixels.
func Hitbox(t Tile) gamemath.Rect {
	var off gamemath.Rect
	switch {
	case Classify(t.Source) == ClassBox:
		off = boxHitbox
	case t.Source >= SourceEnemy1 && t.Source <= SourceEnemy5:
		off = enemyHitbox
	case t.Source >= SourceTrap1 && t.Source <= SourceTrap5:
		off = trapHitbox
	default:
		off = spawnHitbox
	}
	return off.Move(t.Pos.Vec())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
