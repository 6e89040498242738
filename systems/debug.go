package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawDebug shows the four wall boundaries around the character's hitbox
// and, optionally, every resolv object.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay && !cfg.Debug.Hitboxes {
		return
	}
	offset := viewOffset(e)

	if cfg.Debug.Hitboxes {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				c := colornames.Cyan
				if obj.HasTags(tags.ResolvCharacter) {
					c = colornames.Blue
				} else if obj.HasTags(tags.ResolvActor) {
					c = colornames.Red
				}
				outline(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, offset, c)
			}
		}
	}

	if !cfg.Debug.Overlay {
		return
	}
	_, ch, ok := getCharacter(e)
	if !ok {
		return
	}
	_, level, ok := getLevel(e)
	if !ok {
		return
	}

	hb := ch.Hitbox()
	m := level.Map
	west, east := m.WestWallOf(hb), m.EastWallOf(hb)
	north, south := m.NorthWallOf(hb), m.SouthWallOf(hb)

	for _, b := range m.Boxes() {
		outline(screen, b, offset, colornames.Orange)
	}

	// Each boundary is drawn on its first blocked pixel, across the span
	// of the hitbox.
	span := func(x, y, w, h float64, c color.RGBA) {
		vector.FillRect(screen, float32(x-offset.X), float32(y-offset.Y), float32(w), float32(h), c, false)
	}
	span(west-1, hb.Y, 1, hb.H, colornames.Red)
	span(east+1, hb.Y, 1, hb.H, colornames.Yellow)
	span(hb.X, north-1, hb.W, 1, colornames.Magenta)
	span(hb.X, south+1, hb.W, 1, colornames.Lime)
	outline(screen, hb, offset, colornames.White)

	tile := m.TileAt(hb.CenterX(), hb.CenterY())
	entry, _ := m.Entry(tile.X, tile.Y)
	info := fmt.Sprintf("tile %d,%d  W%d E%d N%d S%d\nx %.1f..%.1f  y %.1f..%.1f\n%s %s  grab %v",
		tile.X, tile.Y, entry.West, entry.East, entry.North, entry.South,
		west, east, north, south,
		ch.Lifecycle(), ch.Locomotion(), ch.WallGrab())
	ebitenutil.DebugPrintAt(screen, info, cfg.Render.HUDMargin, cfg.Render.HUDMargin+16)
}

func outline(screen *ebiten.Image, r gamemath.Rect, offset gamemath.Vec, c color.RGBA) {
	x, y := float32(r.X-offset.X), float32(r.Y-offset.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)
	vector.FillRect(screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(screen, x, y, 1, h, c, false)
	vector.FillRect(screen, x+w-1, y, 1, h, c, false)
}
