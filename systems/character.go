package systems

import (
	"github.com/automoto/pupu/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacter steps the controller against the collision map and moves
// its resolv object along.
func UpdateCharacter(ecs *ecs.ECS) {
	entry, ch, ok := getCharacter(ecs)
	if !ok {
		return
	}
	_, level, ok := getLevel(ecs)
	if !ok {
		return
	}

	ch.Update(level.Map, CharacterInput(getInput(ecs)), frameDelta())
	ch.Sprites.Update()
	components.Object.Get(entry).SyncTo(ch.Hitbox())
}
