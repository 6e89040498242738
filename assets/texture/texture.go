// Package texture names the sprite sheets of the game. It is pure data so
// simulation code can refer to sheets without importing ebitengine.
package texture

import "fmt"

type ID int

const (
	Tileset ID = iota
	Gui
	Character
	Box
	Walker
	Charger
	BounceTrap
	Saw
	Spike
	Plank
	Shooter
	Bullet

	Count
)

var names = [Count]string{
	"tileset", "gui", "character", "box",
	"walker", "charger", "bounce_trap", "saw", "spike", "plank",
	"shooter", "bullet",
}

func (id ID) String() string {
	if id < 0 || id >= Count {
		return fmt.Sprintf("texture(%d)", int(id))
	}
	return names[id]
}

// Sheet describes the frame grid of a sprite sheet in base pixels. Rows
// hold animations, columns hold frames.
type Sheet struct {
	FrameW, FrameH int
	Columns, Rows  int
}

var Sheets = [Count]Sheet{
	Tileset:    {FrameW: 16, FrameH: 16, Columns: 16, Rows: 11},
	Gui:        {FrameW: 16, FrameH: 16, Columns: 2, Rows: 2},
	Character:  {FrameW: 32, FrameH: 32, Columns: 12, Rows: 8},
	Box:        {FrameW: 32, FrameH: 32, Columns: 1, Rows: 3},
	Walker:     {FrameW: 48, FrameH: 48, Columns: 8, Rows: 3},
	Charger:    {FrameW: 48, FrameH: 48, Columns: 8, Rows: 4},
	BounceTrap: {FrameW: 32, FrameH: 32, Columns: 8, Rows: 2},
	Saw:        {FrameW: 32, FrameH: 32, Columns: 8, Rows: 1},
	Spike:      {FrameW: 32, FrameH: 32, Columns: 8, Rows: 2},
	Plank:      {FrameW: 32, FrameH: 32, Columns: 1, Rows: 1},
	Shooter:    {FrameW: 48, FrameH: 48, Columns: 12, Rows: 3},
	Bullet:     {FrameW: 8, FrameH: 4, Columns: 1, Rows: 1},
}
