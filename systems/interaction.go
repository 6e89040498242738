package systems

import (
	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/kinematic"
	"github.com/automoto/pupu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteractions lets actors touch the character. The resolv space
// narrows the candidates to actors sharing a cell with the character;
// actors.Interact does the exact overlap and side test. A character that is
// still appearing cannot be touched.
func UpdateInteractions(ecs *ecs.ECS) {
	entry, ch, ok := getCharacter(ecs)
	if !ok || ch.Lifecycle() == kinematic.Appearing {
		return
	}

	check := components.Object.Get(entry).Check(0, 0, tags.ResolvActor)
	if check == nil {
		return
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvActor) {
		actorEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || actorEntry == nil || !actorEntry.Valid() {
			continue
		}
		actors.Interact(components.Actor.Get(actorEntry), ch, cfg.Collision.ContactThreshold)
	}
}
