package components

import (
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path  string
	Level *leveldata.Level
	Map   *collision.Map
	// Generation counts successful loads, starting at 1.
	Generation int
}

var Level = donburi.NewComponentType[LevelData]()
