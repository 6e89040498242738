package leveldata

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/automoto/pupu/shared/gamemath"
)

var (
	ErrTruncated     = errors.New("level stream truncated")
	ErrUnknownKind   = errors.New("unknown tile source kind")
	ErrBadDimensions = errors.New("bad level dimensions")
	ErrOutOfBounds   = errors.New("wall tile outside level bounds")
)

const (
	// MaxDimension bounds the level size in tiles on either axis.
	MaxDimension = 4096
	// MaxTiles bounds the record count of a single file.
	MaxTiles = 1 << 20
)

type header struct {
	Width      int32
	Height     int32
	Background int32
	TileCount  int32
}

type record struct {
	Source int32
	X, Y   int32
	CellX  int32
	CellY  int32
}

// Parse reads a level stream: a four int32 header followed by tileCount
// five int32 records, all little-endian.
func Parse(r io.Reader) (*Level, error) {
	br := bufio.NewReader(r)

	var h header
	if err := readLE(br, &h); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if h.Width <= 0 || h.Height <= 0 || h.Width > MaxDimension || h.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, h.Width, h.Height)
	}
	if h.TileCount < 0 || h.TileCount > MaxTiles {
		return nil, fmt.Errorf("%w: tile count %d", ErrBadDimensions, h.TileCount)
	}

	level := &Level{
		Width:      int(h.Width),
		Height:     int(h.Height),
		Background: int(h.Background),
	}

	for i := int32(0); i < h.TileCount; i++ {
		var rec record
		if err := readLE(br, &rec); err != nil {
			return nil, fmt.Errorf("read tile %d of %d: %w", i, h.TileCount, err)
		}
		t := Tile{
			Source: TileSource(rec.Source),
			Pos:    gamemath.TileCoord{X: int(rec.X), Y: int(rec.Y)},
			Cell:   gamemath.TileCoord{X: int(rec.CellX), Y: int(rec.CellY)},
		}
		if !t.Source.Valid() {
			return nil, fmt.Errorf("tile %d: %w: %d", i, ErrUnknownKind, rec.Source)
		}
		if err := level.checkWall(t); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		level.Add(t)
	}

	return level, nil
}

// Load parses the level file at path inside fsys.
func Load(fsys fs.FS, path string) (*Level, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	level, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return level, nil
}

// Encode writes level in the format read by Parse. Walls are written first,
// then boxes, then actors.
func Encode(w io.Writer, level *Level) error {
	if level.Width <= 0 || level.Height <= 0 || level.Width > MaxDimension || level.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, level.Width, level.Height)
	}

	bw := bufio.NewWriter(w)
	h := header{
		Width:      int32(level.Width),
		Height:     int32(level.Height),
		Background: int32(level.Background),
		TileCount:  int32(level.TileCount()),
	}
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, group := range [][]Tile{level.Walls, level.Boxes, level.Actors} {
		for _, t := range group {
			rec := record{
				Source: int32(t.Source),
				X:      int32(t.Pos.X),
				Y:      int32(t.Pos.Y),
				CellX:  int32(t.Cell.X),
				CellY:  int32(t.Cell.Y),
			}
			if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
				return fmt.Errorf("write tile: %w", err)
			}
		}
	}

	return bw.Flush()
}

func (l *Level) checkWall(t Tile) error {
	c := Classify(t.Source)
	if c != ClassGuiWall && c != ClassTilesetWall {
		return nil
	}
	g := t.GridPos()
	if g.X < 0 || g.Y < 0 || g.X >= l.Width || g.Y >= l.Height {
		return fmt.Errorf("%w: %s at (%d,%d)", ErrOutOfBounds, t.Source, t.Pos.X, t.Pos.Y)
	}
	return nil
}

func readLE(r io.Reader, v any) error {
	err := binary.Read(r, binary.LittleEndian, v)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
