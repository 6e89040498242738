// Package gamemath holds the geometry and numeric helpers shared by the
// collision map, the character controller and the actors. It has no
// dependencies on ebitengine or donburi.
package gamemath

import "math"

// Vec is a 2D vector in pixel space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// TileCoord is an integer grid coordinate.
type TileCoord struct {
	X, Y int
}

func (c TileCoord) Scale(s int) TileCoord {
	return TileCoord{X: c.X * s, Y: c.Y * s}
}

func (c TileCoord) Vec() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Rect is an axis-aligned rectangle with a top-left anchor. Right and Bottom
// return the last covered pixel, so a rectangle at X=0 with W=2 covers
// pixels 0 and 1.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W - 1
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H - 1
}

func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Move returns r translated by v.
func (r Rect) Move(v Vec) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Scale multiplies origin and size by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// OverlapsRows reports whether r and o share at least one pixel row.
func (r Rect) OverlapsRows(o Rect) bool {
	return !(r.Y > o.Bottom() || r.Bottom() < o.Y)
}

// OverlapsCols reports whether r and o share at least one pixel column.
func (r Rect) OverlapsCols(o Rect) bool {
	return !(r.X > o.Right() || r.Right() < o.X)
}

// TileIndex returns the tile index containing pixel p for the given tile
// size. Negative pixels map to negative indices.
func TileIndex(p, tileSize float64) int {
	return int(math.Floor(p / tileSize))
}
