package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/pupu/shared/gamemath"
)

const (
	// WallLayer is the Tiled tile layer holding grid walls.
	WallLayer = "walls"
	// GuiTileset is the tileset name whose tiles are solid on every side.
	GuiTileset = "gui"
)

// LoadTMX converts a Tiled map into a Level. Tiles of the WallLayer become
// wall records (Gui or Tileset depending on their tileset) and objects from
// every object group become box or actor records, keyed by object name
// ("Box1", "Enemy3", "CharacterSpawn", ...). It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 || levelMap.Width > MaxDimension || levelMap.Height > MaxDimension {
		return nil, fmt.Errorf("%s: %w: %dx%d", tmxPath, ErrBadDimensions, levelMap.Width, levelMap.Height)
	}

	level := &Level{
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				source := SourceTileset
				if strings.EqualFold(tile.Tileset.Name, GuiTileset) {
					source = SourceGui
				}
				cols := tile.Tileset.Columns
				if cols <= 0 {
					cols = 1
				}
				level.Add(Tile{
					Source: source,
					Pos:    gamemath.TileCoord{X: x * TileSize, Y: y * TileSize},
					Cell:   gamemath.TileCoord{X: int(tile.ID) % cols, Y: int(tile.ID) / cols},
				})
			}
		}
		break
	}

	// Object coordinates are in map pixels; rescale to base pixels.
	sx := float64(TileSize) / float64(max(levelMap.TileWidth, 1))
	sy := float64(TileSize) / float64(max(levelMap.TileHeight, 1))

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			source, ok := ParseSource(o.Name)
			if !ok || Classify(source) == ClassGuiWall || Classify(source) == ClassTilesetWall {
				return nil, fmt.Errorf("%s: object %q in group %q: %w", tmxPath, o.Name, og.Name, ErrUnknownKind)
			}
			level.Add(Tile{
				Source: source,
				Pos:    gamemath.TileCoord{X: int(o.X * sx), Y: int(o.Y * sy)},
				Cell:   gamemath.TileCoord{X: o.Properties.GetInt("cellX"), Y: o.Properties.GetInt("cellY")},
			})
		}
	}

	// Spawn first, then left-to-right, so the output is stable.
	sort.SliceStable(level.Actors, func(i, j int) bool {
		a, b := level.Actors[i], level.Actors[j]
		if (a.Source == SourceCharacterSpawn) != (b.Source == SourceCharacterSpawn) {
			return a.Source == SourceCharacterSpawn
		}
		return a.Pos.X < b.Pos.X
	})

	return level, nil
}

// LoadAllTMX discovers all .tmx files in dir within fsys and converts each.
// It returns the levels keyed by stem name plus the sorted list of names.
func LoadAllTMX(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := LoadTMX(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
