package systems

import (
	"github.com/automoto/pupu/assets"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/kinematic"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/automoto/pupu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Assets supplies sprite sheets to the renderers.
var Assets = assets.NewRegistry(nil)

// screenCanvas draws sheet frames in world space through the camera.
type screenCanvas struct {
	screen *ebiten.Image
	offset gamemath.Vec
	scale  float64
}

func newCanvas(e *ecs.ECS, screen *ebiten.Image) screenCanvas {
	return screenCanvas{
		screen: screen,
		offset: viewOffset(e),
		scale:  float64(max(cfg.Collision.PixelSize, 1)),
	}
}

func (c screenCanvas) DrawFrame(sheet texture.ID, row, frame int, at gamemath.Vec, flip bool) {
	c.drawScaled(sheet, row, frame, at, flip, 1)
}

// drawScaled draws a frame scaled by extra around its centre.
func (c screenCanvas) drawScaled(sheet texture.ID, row, frame int, at gamemath.Vec, flip bool, extra float64) {
	img := Assets.Frame(sheet, row, frame)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	if extra != 1 {
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(extra, extra)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Scale(c.scale, c.scale)
	op.GeoM.Translate(at.X-c.offset.X, at.Y-c.offset.Y)
	c.screen.DrawImage(img, op)
}

func (c screenCanvas) visible(at gamemath.Vec, sheet texture.ID) bool {
	s := texture.Sheets[sheet]
	x, y := at.X-c.offset.X, at.Y-c.offset.Y
	w, h := float64(s.FrameW)*c.scale, float64(s.FrameH)*c.scale
	bounds := c.screen.Bounds()
	return x+w >= 0 && y+h >= 0 && x < float64(bounds.Dx()) && y < float64(bounds.Dy())
}

// DrawLevel clears to the level background and draws walls and boxes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	_, level, ok := getLevel(e)
	if !ok {
		screen.Fill(cfg.Black)
		return
	}
	screen.Fill(cfg.Background(level.Level.Background))

	canvas := newCanvas(e, screen)
	for _, t := range level.Level.Walls {
		sheet := texture.Tileset
		if t.Source == leveldata.SourceGui {
			sheet = texture.Gui
		}
		at := t.Pos.Vec().Scale(canvas.scale)
		if !canvas.visible(at, sheet) {
			continue
		}
		canvas.DrawFrame(sheet, t.Cell.Y, t.Cell.X, at, false)
	}
	for _, t := range level.Level.Boxes {
		at := t.Pos.Vec().Scale(canvas.scale)
		if !canvas.visible(at, texture.Box) {
			continue
		}
		canvas.DrawFrame(texture.Box, int(t.Source-leveldata.SourceBox1), 0, at, false)
	}
}

func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	canvas := newCanvas(e, screen)
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		components.Actor.Get(entry).Draw(canvas)
	})
}

// DrawCharacter draws the current pose frame. The sprite grows from a small
// scale while the character appears.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image) {
	_, ch, ok := getCharacter(e)
	if !ok {
		return
	}
	a := ch.Sprites.Animation()
	if a == nil {
		return
	}

	from := float64(cfg.Render.AppearScaleFrom)
	scale := from + (1-from)*ch.AppearProgress()
	flip := ch.Facing() == kinematic.DirectionLeft

	newCanvas(e, screen).drawScaled(a.Sheet, a.Row, a.Frame(), ch.Position(), flip, scale)
}
