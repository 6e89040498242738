// Package collision turns level geometry into a hit-map: for every tile, the
// nearest free tile on each side before a blocking face. Wall queries read
// it along a rectangle's span and return pixel boundaries, with box
// obstacles able to tighten the answer when they are in flush contact.
//
// Boundaries are inclusive free pixels. A west boundary of 32 means pixel
// 32 is free and pixel 31 is not; an east boundary of 95 means pixel 95 is
// free and pixel 96 is not.
package collision

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
)

// Config controls how a level is scaled into pixel space.
type Config struct {
	// PixelSize scales base pixels to screen pixels.
	PixelSize int `yaml:"pixelSize"`
	// ContactThreshold is how far, in pixels, a box edge may lie past a
	// rectangle's leading edge and still count as flush contact.
	ContactThreshold float64 `yaml:"contactThreshold"`
}

func DefaultConfig() Config {
	return Config{
		PixelSize:        2,
		ContactThreshold: 8,
	}
}

// Entry is one hit-map cell. Each field is the tile index of the nearest
// free tile in that direction before a blocking face.
type Entry struct {
	North, South, East, West int
}

// Map is the collision map of one level. It is rebuilt wholesale by Load
// and read-only between loads.
type Map struct {
	cfg     Config
	width   int
	height  int
	tilePx  float64
	entries []Entry
	boxes   []gamemath.Rect
}

// NewMap returns an empty map. Load a level before querying it.
func NewMap(cfg Config) *Map {
	if cfg.PixelSize < 1 {
		cfg.PixelSize = 1
	}
	return &Map{
		cfg:    cfg,
		tilePx: float64(leveldata.TileSize * cfg.PixelSize),
	}
}

// Load replaces the map contents. walls holds the solid faces per grid
// coordinate; coordinates outside the grid are ignored. boxes are pixel
// rectangles kept out of the grid.
func (m *Map) Load(tileWidth, tileHeight int, walls map[gamemath.TileCoord]Side, boxes []gamemath.Rect) {
	tileWidth = max(tileWidth, 0)
	tileHeight = max(tileHeight, 0)

	entries := make([]Entry, tileWidth*tileHeight)
	solid := func(x, y int) Side {
		return walls[gamemath.TileCoord{X: x, Y: y}]
	}

	for y := 0; y < tileHeight; y++ {
		row := entries[y*tileWidth : (y+1)*tileWidth]

		running := 0
		for x := 0; x < tileWidth; x++ {
			row[x].West = running
			if solid(x, y).Has(SideRight) {
				running = x + 1
			}
		}

		running = tileWidth - 1
		for x := tileWidth - 1; x >= 0; x-- {
			row[x].East = running
			if solid(x, y).Has(SideLeft) {
				running = x - 1
			}
		}
	}

	for x := 0; x < tileWidth; x++ {
		running := 0
		for y := 0; y < tileHeight; y++ {
			entries[y*tileWidth+x].North = running
			if solid(x, y).Has(SideBottom) {
				running = y + 1
			}
		}

		running = tileHeight - 1
		for y := tileHeight - 1; y >= 0; y-- {
			entries[y*tileWidth+x].South = running
			if solid(x, y).Has(SideTop) {
				running = y - 1
			}
		}
	}

	m.width = tileWidth
	m.height = tileHeight
	m.entries = entries
	m.boxes = append([]gamemath.Rect(nil), boxes...)
}

// LoadLevel classifies a parsed level and loads it. Box records become
// pixel rectangles scaled by the configured pixel size.
func (m *Map) LoadLevel(level *leveldata.Level) {
	walls := make(map[gamemath.TileCoord]Side, len(level.Walls))
	for _, t := range level.Walls {
		walls[t.GridPos()] = SolidityOf(t)
	}

	scale := float64(m.cfg.PixelSize)
	boxes := make([]gamemath.Rect, 0, len(level.Boxes))
	for _, t := range level.Boxes {
		boxes = append(boxes, leveldata.Hitbox(t).Scale(scale))
	}

	m.Load(level.Width, level.Height, walls, boxes)

	logger.Log.WithFields(logrus.Fields{
		"width":  level.Width,
		"height": level.Height,
		"walls":  len(walls),
		"boxes":  len(boxes),
		"actors": len(level.Actors),
	}).Info("Collision map loaded")
}

// Size returns the grid size in tiles.
func (m *Map) Size() (int, int) {
	return m.width, m.height
}

// TileSizePx returns the edge of one tile in pixels.
func (m *Map) TileSizePx() float64 {
	return m.tilePx
}

// Bounds returns the level area in pixels.
func (m *Map) Bounds() gamemath.Rect {
	return gamemath.Rect{W: float64(m.width) * m.tilePx, H: float64(m.height) * m.tilePx}
}

func (m *Map) Boxes() []gamemath.Rect {
	return m.boxes
}

func (m *Map) Config() Config {
	return m.cfg
}

// Entry returns the hit-map cell at tile (x, y).
func (m *Map) Entry(x, y int) (Entry, bool) {
	if !m.inGrid(x, y) {
		return Entry{}, false
	}
	return m.entries[y*m.width+x], true
}

// TileAt returns the tile containing pixel (px, py).
func (m *Map) TileAt(px, py float64) gamemath.TileCoord {
	return gamemath.TileCoord{
		X: gamemath.TileIndex(px, m.tilePx),
		Y: gamemath.TileIndex(py, m.tilePx),
	}
}

func (m *Map) inGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// span converts a pixel interval to a tile range clipped to [0, limit).
// ok is false when nothing of the interval lies inside the grid.
func (m *Map) span(lo, hi float64, limit int) (from, to int, ok bool) {
	from = max(gamemath.TileIndex(lo, m.tilePx), 0)
	to = min(gamemath.TileIndex(hi, m.tilePx), limit-1)
	return from, to, from <= to
}

// trailing returns the tile line holding the trailing edge of [lo, hi],
// clamped into [0, limit) so a rectangle hanging past the level edge still
// reads the walls it covers. ok is false when [lo, hi] misses the grid.
func (m *Map) trailing(edge, lo, hi float64, limit int) (int, bool) {
	if _, _, ok := m.span(lo, hi, limit); !ok {
		return 0, false
	}
	return gamemath.ClampInt(gamemath.TileIndex(edge, m.tilePx), 0, limit-1), true
}

// WestWallOf returns the leftmost free pixel column reachable by r moving
// west.
func (m *Map) WestWallOf(r gamemath.Rect) float64 {
	best := 0
	x, inX := m.trailing(r.Right(), r.X, r.Right(), m.width)
	if from, to, ok := m.span(r.Y, r.Bottom(), m.height); ok && inX {
		for y := from; y <= to; y++ {
			best = max(best, m.entries[y*m.width+x].West)
		}
	}
	wall := float64(best) * m.tilePx

	for _, b := range m.boxes {
		if !b.OverlapsRows(r) {
			continue
		}
		edge := b.X + b.W
		if edge > wall && edge-r.X <= m.cfg.ContactThreshold {
			wall = edge
		}
	}
	return wall
}

// EastWallOf returns the rightmost free pixel column reachable by r moving
// east.
func (m *Map) EastWallOf(r gamemath.Rect) float64 {
	best := m.width - 1
	x, inX := m.trailing(r.X, r.X, r.Right(), m.width)
	if from, to, ok := m.span(r.Y, r.Bottom(), m.height); ok && inX {
		for y := from; y <= to; y++ {
			best = min(best, m.entries[y*m.width+x].East)
		}
	}
	wall := float64(best+1)*m.tilePx - 1

	for _, b := range m.boxes {
		if !b.OverlapsRows(r) {
			continue
		}
		edge := b.X - 1
		if edge < wall && r.Right()-edge <= m.cfg.ContactThreshold {
			wall = edge
		}
	}
	return wall
}

// NorthWallOf returns the topmost free pixel row reachable by r moving
// north.
func (m *Map) NorthWallOf(r gamemath.Rect) float64 {
	best := 0
	y, inY := m.trailing(r.Bottom(), r.Y, r.Bottom(), m.height)
	if from, to, ok := m.span(r.X, r.Right(), m.width); ok && inY {
		for x := from; x <= to; x++ {
			best = max(best, m.entries[y*m.width+x].North)
		}
	}
	wall := float64(best) * m.tilePx

	for _, b := range m.boxes {
		if !b.OverlapsCols(r) {
			continue
		}
		edge := b.Y + b.H
		if edge > wall && edge-r.Y <= m.cfg.ContactThreshold {
			wall = edge
		}
	}
	return wall
}

// SouthWallOf returns the lowest free pixel row reachable by r moving
// south.
func (m *Map) SouthWallOf(r gamemath.Rect) float64 {
	best := m.height - 1
	y, inY := m.trailing(r.Y, r.Y, r.Bottom(), m.height)
	if from, to, ok := m.span(r.X, r.Right(), m.width); ok && inY {
		for x := from; x <= to; x++ {
			best = min(best, m.entries[y*m.width+x].South)
		}
	}
	wall := float64(best+1)*m.tilePx - 1

	for _, b := range m.boxes {
		if !b.OverlapsCols(r) {
			continue
		}
		edge := b.Y - 1
		if edge < wall && r.Bottom()-edge <= m.cfg.ContactThreshold {
			wall = edge
		}
	}
	return wall
}

// WestOverlap returns how far r has crossed its west boundary, or 0.
func (m *Map) WestOverlap(r gamemath.Rect) float64 {
	return math.Max(m.WestWallOf(r)-r.X, 0)
}

// EastOverlap returns how far r has crossed its east boundary, or 0.
func (m *Map) EastOverlap(r gamemath.Rect) float64 {
	return math.Max(r.Right()-m.EastWallOf(r), 0)
}
