package actors

import (
	"math/rand/v2"

	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/automoto/pupu/shared/timer"
)

// Spawner builds actors from level records.
type Spawner struct {
	Config    Config
	PixelSize int
	Clock     timer.Clock
	Rand      *rand.Rand
}

// Spawn returns the actor for a record, or false for records that are not
// actors (walls, boxes, the character spawn).
func (s Spawner) Spawn(t leveldata.Tile) (Actor, bool) {
	scale := float64(max(s.PixelSize, 1))
	pos := t.Pos.Vec().Scale(scale)
	origin := leveldata.Tile{Source: t.Source}
	hitbox := leveldata.Hitbox(origin).Scale(scale)

	switch t.Source {
	case leveldata.SourceEnemy1, leveldata.SourceEnemy2, leveldata.SourceEnemy5:
		return NewSimpleWalker(pos, hitbox, s.Config, s.Clock, s.Rand), true
	case leveldata.SourceEnemy3:
		return NewCharger(pos, hitbox, s.Config, s.Clock), true
	case leveldata.SourceEnemy4:
		return NewShooter(pos, hitbox, scale, s.Config, s.Clock), true
	case leveldata.SourceTrap1:
		return NewBouncingTrap(pos, hitbox, s.Config), true
	case leveldata.SourceTrap2:
		return NewSawTrap(pos, hitbox, s.Config), true
	case leveldata.SourceTrap4:
		return NewSpikeTrap(pos, hitbox, s.Config, s.Clock), true
	case leveldata.SourceTrap3, leveldata.SourceTrap5:
		return NewPlank(pos, hitbox), true
	}
	return nil, false
}

// SpawnAll builds every actor of a level in record order.
func (s Spawner) SpawnAll(level *leveldata.Level) []Actor {
	out := make([]Actor, 0, len(level.Actors))
	for _, t := range level.Actors {
		if a, ok := s.Spawn(t); ok {
			out = append(out, a)
		}
	}
	return out
}

// SpawnPoint returns the character spawn of a level in pixels, falling back
// to the top-left tile.
func (s Spawner) SpawnPoint(level *leveldata.Level) gamemath.Vec {
	p, _ := level.Spawn()
	return p.Vec().Scale(float64(max(s.PixelSize, 1)))
}
