package factory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/pupu/archetypes"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ReadLevel loads a binary level file, or a Tiled map when the path ends in
// .tmx.
func ReadLevel(path string) (*leveldata.Level, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)
	if strings.EqualFold(filepath.Ext(name), ".tmx") {
		return leveldata.LoadTMX(fsys, name)
	}
	return leveldata.Load(fsys, name)
}

// ResolveLevelPath returns path as given when it exists, otherwise the same
// name under the configured level directory.
func ResolveLevelPath(path string) string {
	if _, err := os.Stat(path); err == nil || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(cfg.C.LevelDir, path)
}

// CreateLevel spawns the level entity and builds its collision map.
func CreateLevel(ecs *ecs.ECS, path string, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	m := collision.NewMap(cfg.Collision)
	m.LoadLevel(level)

	components.Level.SetValue(entry, components.LevelData{
		Path:       path,
		Level:      level,
		Map:        m,
		Generation: 1,
	})
	return entry
}

// LevelPixelSize returns the pixel size of a level at the configured scale.
func LevelPixelSize(level *leveldata.Level) (int, int) {
	px := max(cfg.Collision.PixelSize, 1) * leveldata.TileSize
	return level.Width * px, level.Height * px
}

// LoadLevel reads path and spawns it. Errors carry the path.
func LoadLevel(ecs *ecs.ECS, path string) (*donburi.Entry, error) {
	level, err := ReadLevel(path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return CreateLevel(ecs, path, level), nil
}
