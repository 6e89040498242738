// Package assets looks up sprite sheet images for the renderer. Sheets are
// read from an image directory when present; missing sheets get a generated
// placeholder with the right frame grid so the game runs without art.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type frameKey struct {
	id         texture.ID
	row, frame int
}

// Registry caches sheets and their frame sub-images.
type Registry struct {
	fsys   fs.FS
	sheets [texture.Count]*ebiten.Image
	frames map[frameKey]*ebiten.Image
}

// NewRegistry reads sheets named "<id>.png" from fsys. A nil fsys uses
// placeholders for everything.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:   fsys,
		frames: make(map[frameKey]*ebiten.Image),
	}
}

// TextureFor returns the whole sheet of id.
func (r *Registry) TextureFor(id texture.ID) *ebiten.Image {
	if id < 0 || id >= texture.Count {
		logger.Log.WithField("texture", int(id)).Warn("Unknown texture")
		id = texture.Tileset
	}
	if img := r.sheets[id]; img != nil {
		return img
	}
	img, err := r.load(id)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"texture": id.String(),
			"error":   err,
		}).Debug("Using placeholder texture")
		img = placeholder(id)
	}
	r.sheets[id] = img
	return img
}

// Frame returns the sub-image for one cell of a sheet. Out of range cells
// are clamped to the sheet.
func (r *Registry) Frame(id texture.ID, row, frame int) *ebiten.Image {
	key := frameKey{id, row, frame}
	if img, ok := r.frames[key]; ok {
		return img
	}

	sheet := r.TextureFor(id)
	s := texture.Sheets[id]
	row = min(max(row, 0), max(s.Rows-1, 0))
	frame = min(max(frame, 0), max(s.Columns-1, 0))

	sx, sy := frame*s.FrameW, row*s.FrameH
	img := sheet.SubImage(image.Rect(sx, sy, sx+s.FrameW, sy+s.FrameH)).(*ebiten.Image)
	r.frames[key] = img
	return img
}

func (r *Registry) load(id texture.ID) (*ebiten.Image, error) {
	if r.fsys == nil {
		return nil, fs.ErrNotExist
	}
	path := id.String() + ".png"
	data, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

var placeholderColors = [texture.Count]color.RGBA{
	texture.Tileset:    colornames.Slategray,
	texture.Gui:        colornames.Dimgray,
	texture.Character:  colornames.Mediumseagreen,
	texture.Box:        colornames.Peru,
	texture.Walker:     colornames.Indianred,
	texture.Charger:    colornames.Darkred,
	texture.BounceTrap: colornames.Gold,
	texture.Saw:        colornames.Silver,
	texture.Spike:      colornames.Lightsteelblue,
	texture.Plank:      colornames.Saddlebrown,
	texture.Shooter:    colornames.Darkorchid,
	texture.Bullet:     colornames.Orangered,
}

// placeholder draws a flat frame grid. Each frame is inset by a pixel so
// the grid stays visible, and the frame index shades the fill.
func placeholder(id texture.ID) *ebiten.Image {
	s := texture.Sheets[id]
	img := ebiten.NewImage(max(s.FrameW*s.Columns, 1), max(s.FrameH*s.Rows, 1))
	base := placeholderColors[id]

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			c := base
			shade := uint8(col * 6)
			c.R = c.R - min(c.R, shade)
			c.G = c.G - min(c.G, shade)
			x, y := float32(col*s.FrameW), float32(row*s.FrameH)
			vector.FillRect(img, x+1, y+1, float32(s.FrameW-2), float32(s.FrameH-2), c, false)
		}
	}
	return img
}
