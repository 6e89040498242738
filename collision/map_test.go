package collision

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// tile edge in pixels for DefaultConfig
const tp = 32.0

func newTestMap(w, h int, walls map[gamemath.TileCoord]Side, boxes ...gamemath.Rect) *Map {
	m := NewMap(DefaultConfig())
	m.Load(w, h, walls, boxes)
	return m
}

func at(x, y int) gamemath.TileCoord {
	return gamemath.TileCoord{X: x, Y: y}
}

func TestWallFreeGridReturnsOuterBoundary(t *testing.T) {
	m := newTestMap(5, 4, nil)

	rects := []gamemath.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 70, Y: 50, W: 20, H: 30},
		{X: 150, Y: 118, W: 9, H: 9},
		{X: -100, Y: -100, W: 10, H: 10},
		{X: 1000, Y: 1000, W: 10, H: 10},
	}
	for _, r := range rects {
		assert.Equal(t, 0.0, m.WestWallOf(r), "west %+v", r)
		assert.Equal(t, 5*tp-1, m.EastWallOf(r), "east %+v", r)
		assert.Equal(t, 0.0, m.NorthWallOf(r), "north %+v", r)
		assert.Equal(t, 4*tp-1, m.SouthWallOf(r), "south %+v", r)
	}
}

func TestSolidTileConstrainsEveryFace(t *testing.T) {
	m := newTestMap(5, 3, map[gamemath.TileCoord]Side{at(2, 1): SideAll})

	tests := []struct {
		name  string
		rect  gamemath.Rect
		query func(gamemath.Rect) float64
		want  float64
	}{
		{"east of tile", gamemath.Rect{X: 3*tp + 4, Y: tp + 2, W: 10, H: 10}, m.WestWallOf, 3 * tp},
		{"west of tile", gamemath.Rect{X: 10, Y: tp + 2, W: 10, H: 10}, m.EastWallOf, 2*tp - 1},
		{"above tile", gamemath.Rect{X: 2*tp + 2, Y: 5, W: 10, H: 10}, m.SouthWallOf, tp - 1},
		{"below tile", gamemath.Rect{X: 2*tp + 2, Y: 2*tp + 5, W: 10, H: 10}, m.NorthWallOf, 2 * tp},
		{"different row is open", gamemath.Rect{X: 3*tp + 4, Y: 2, W: 10, H: 10}, m.WestWallOf, 0},
		{"penetrating from the east", gamemath.Rect{X: 3*tp - 6, Y: tp + 2, W: 10, H: 10}, m.WestWallOf, 3 * tp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query(tt.rect))
		})
	}

	e, ok := m.Entry(3, 1)
	require.True(t, ok)
	assert.Equal(t, 3, e.West)
	e, _ = m.Entry(1, 1)
	assert.Equal(t, 1, e.East)
	e, _ = m.Entry(2, 0)
	assert.Equal(t, 0, e.South)
	e, _ = m.Entry(2, 2)
	assert.Equal(t, 2, e.North)

	assert.Equal(t, 6.0, m.WestOverlap(gamemath.Rect{X: 3*tp - 6, Y: tp + 2, W: 10, H: 10}))
	assert.Equal(t, 0.0, m.EastOverlap(gamemath.Rect{X: 10, Y: tp + 2, W: 10, H: 10}))
}

func TestHitMapInvariants(t *testing.T) {
	walls := map[gamemath.TileCoord]Side{}
	for y := 0; y < 9; y++ {
		for x := 0; x < 13; x++ {
			if (x*7+y*3)%5 == 0 {
				walls[at(x, y)] = Side((x + y) % 16)
			}
		}
	}
	m := newTestMap(13, 9, walls)

	w, h := m.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, ok := m.Entry(x, y)
			require.True(t, ok)
			assert.LessOrEqual(t, e.West, x)
			assert.GreaterOrEqual(t, e.East, x)
			assert.LessOrEqual(t, e.North, y)
			assert.GreaterOrEqual(t, e.South, y)
		}
	}

	_, ok := m.Entry(13, 0)
	assert.False(t, ok)
	_, ok = m.Entry(-1, 0)
	assert.False(t, ok)
}

func TestQueriesAreIdempotent(t *testing.T) {
	m := newTestMap(6, 6,
		map[gamemath.TileCoord]Side{at(1, 2): SideAll, at(4, 2): SideAll, at(2, 5): SideTop},
		gamemath.Rect{X: 100, Y: 100, W: 20, H: 20},
	)
	r := gamemath.Rect{X: 70, Y: 70, W: 28, H: 28}

	first := [4]float64{m.WestWallOf(r), m.EastWallOf(r), m.NorthWallOf(r), m.SouthWallOf(r)}
	for i := 0; i < 3; i++ {
		again := [4]float64{m.WestWallOf(r), m.EastWallOf(r), m.NorthWallOf(r), m.SouthWallOf(r)}
		assert.Equal(t, first, again)
	}
}

func TestLoadReplacesPreviousLevel(t *testing.T) {
	m := newTestMap(5, 1, map[gamemath.TileCoord]Side{at(0, 0): SideAll}, gamemath.Rect{X: 60, Y: 0, W: 10, H: 10})
	r := gamemath.Rect{X: 40, Y: 2, W: 10, H: 10}
	assert.Equal(t, tp, m.WestWallOf(r))

	m.Load(3, 2, nil, nil)
	assert.Equal(t, 0.0, m.WestWallOf(r))
	assert.Empty(t, m.Boxes())
	w, h := m.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, gamemath.Rect{W: 3 * tp, H: 2 * tp}, m.Bounds())
}

func TestStripStopsFlushAgainstWalls(t *testing.T) {
	m := newTestMap(10, 1, map[gamemath.TileCoord]Side{at(0, 0): SideAll, at(9, 0): SideAll})
	r := gamemath.Rect{X: 4 * tp, Y: 4, W: 2, H: 10}

	for i := 0; i < 500; i++ {
		r.X -= 0.7
		if west := m.WestWallOf(r); r.X < west {
			r.X = west
		}
	}
	assert.Equal(t, 1*tp, r.X, "left edge flush with the solid tile's right edge")

	for i := 0; i < 1000; i++ {
		r.X += 0.7
		if east := m.EastWallOf(r); r.Right() > east {
			r.X = east - r.W + 1
		}
	}
	assert.Equal(t, 9*tp-1, r.Right())
}

func TestRectHangingPastLevelEdgeKeepsWalls(t *testing.T) {
	m := newTestMap(5, 3, map[gamemath.TileCoord]Side{at(1, 1): SideAll, at(3, 0): SideAll})

	inside := gamemath.Rect{X: 4*tp + 10, Y: tp + 4, W: 10, H: 10}
	past := gamemath.Rect{X: 4*tp + 10, Y: tp + 4, W: 40, H: 10}
	assert.Equal(t, 2*tp, m.WestWallOf(inside))
	assert.Equal(t, 2*tp, m.WestWallOf(past), "the right edge lies outside the grid")

	left := gamemath.Rect{X: -20, Y: tp + 4, W: 30, H: 10}
	assert.Equal(t, tp-1, m.EastWallOf(left))

	below := gamemath.Rect{X: 3*tp + 4, Y: 2*tp + 4, W: 10, H: 60}
	assert.Equal(t, tp, m.NorthWallOf(below))

	above := gamemath.Rect{X: tp + 4, Y: -20, W: 10, H: 30}
	assert.Equal(t, tp-1, m.SouthWallOf(above))
}

func TestBoxBeneathFloorGap(t *testing.T) {
	walls := map[gamemath.TileCoord]Side{}
	for x := 0; x < 5; x++ {
		if x != 2 {
			walls[at(x, 2)] = SideAll
		}
	}
	box := gamemath.Rect{X: 2 * tp, Y: 3 * tp, W: tp, H: tp}
	m := newTestMap(5, 4, walls, box)

	above := gamemath.Rect{X: 2*tp + 6, Y: 20, W: 20, H: 30}
	assert.Equal(t, box.Y-1, m.SouthWallOf(above))

	// Straddling the gap, the floor tile is closer than the box.
	straddle := gamemath.Rect{X: 50, Y: 20, W: 20, H: 30}
	assert.Equal(t, 2*tp-1, m.SouthWallOf(straddle))

	// Deep inside the box, past the contact threshold, the box is ignored.
	inside := gamemath.Rect{X: 2*tp + 6, Y: 3*tp + 4, W: 20, H: 20}
	assert.Equal(t, 4*tp-1, m.SouthWallOf(inside))
}

func TestBoxOverridesHorizontalQueries(t *testing.T) {
	box := gamemath.Rect{X: 40, Y: 0, W: 20, H: 20}
	m := newTestMap(5, 1, nil, box)

	tests := []struct {
		name  string
		rect  gamemath.Rect
		query func(gamemath.Rect) float64
		want  float64
	}{
		{"flush on the east side", gamemath.Rect{X: 58, Y: 5, W: 10, H: 10}, m.WestWallOf, 60},
		{"further east", gamemath.Rect{X: 100, Y: 5, W: 10, H: 10}, m.WestWallOf, 60},
		{"rows do not overlap", gamemath.Rect{X: 100, Y: 25, W: 5, H: 5}, m.WestWallOf, 0},
		{"flush on the west side", gamemath.Rect{X: 32, Y: 5, W: 10, H: 10}, m.EastWallOf, 39},
		{"past threshold", gamemath.Rect{X: 45, Y: 5, W: 10, H: 10}, m.EastWallOf, 5*tp - 1},
		{"below the box", gamemath.Rect{X: 45, Y: 21, W: 5, H: 5}, m.NorthWallOf, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query(tt.rect))
		})
	}
}

func TestLoadLevelClassifiesRecords(t *testing.T) {
	level := &leveldata.Level{Width: 4, Height: 3}
	level.Add(leveldata.Tile{Source: leveldata.SourceGui, Pos: at(0, 32)})
	// One-way ledge cell.
	level.Add(leveldata.Tile{Source: leveldata.SourceTileset, Pos: at(32, 16), Cell: at(0, 6)})
	level.Add(leveldata.Tile{Source: leveldata.SourceBox1, Pos: at(0, 0)})
	level.Add(leveldata.Tile{Source: leveldata.SourceEnemy1, Pos: at(48, 0)})

	m := NewMap(DefaultConfig())
	m.LoadLevel(level)

	assert.Equal(t, []gamemath.Rect{{X: 10, Y: 10, W: 44, H: 44}}, m.Boxes())

	// GUI tile at grid (0,2) blocks from the east.
	assert.Equal(t, tp, m.WestWallOf(gamemath.Rect{X: tp + 8, Y: 2*tp + 4, W: 10, H: 10}))

	// The ledge at grid (2,1) holds from above only.
	ledgeCol := 2*tp + 4
	assert.Equal(t, tp-1, m.SouthWallOf(gamemath.Rect{X: ledgeCol, Y: 4, W: 10, H: 10}))
	assert.Equal(t, 0.0, m.NorthWallOf(gamemath.Rect{X: ledgeCol, Y: 2*tp + 4, W: 10, H: 10}))
	assert.Equal(t, 0.0, m.WestWallOf(gamemath.Rect{X: 3*tp + 4, Y: tp + 24, W: 10, H: 6}))
}

func TestSolidityOf(t *testing.T) {
	tests := []struct {
		name string
		tile leveldata.Tile
		want Side
	}{
		{"gui", leveldata.Tile{Source: leveldata.SourceGui}, SideAll},
		{"ground cell", leveldata.Tile{Source: leveldata.SourceTileset, Cell: at(0, 0)}, SideTop},
		{"edge cell", leveldata.Tile{Source: leveldata.SourceTileset, Cell: at(15, 4)}, SideTop},
		{"decor cell", leveldata.Tile{Source: leveldata.SourceTileset, Cell: at(0, 2)}, SideNone},
		{"ledge cell", leveldata.Tile{Source: leveldata.SourceTileset, Cell: at(7, 8)}, SideTop},
		{"outside table", leveldata.Tile{Source: leveldata.SourceTileset, Cell: at(16, 0)}, SideAll},
		{"box", leveldata.Tile{Source: leveldata.SourceBox1}, SideNone},
		{"actor", leveldata.Tile{Source: leveldata.SourceTrap2}, SideNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SolidityOf(tt.tile))
		})
	}
}

func TestTileAt(t *testing.T) {
	m := newTestMap(4, 4, nil)
	assert.Equal(t, at(1, 2), m.TileAt(tp, 2*tp+31))
	assert.Equal(t, at(-1, 0), m.TileAt(-1, 0))
	assert.Equal(t, tp, m.TileSizePx())
}
