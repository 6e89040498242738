package systems

import (
	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/systems/factory"
	"github.com/automoto/pupu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors runs every NPC and trap for one frame, then adds the actors
// they emitted and removes the ones that expired.
func UpdateActors(ecs *ecs.ECS) {
	_, ch, ok := getCharacter(ecs)
	if !ok {
		return
	}
	_, level, ok := getLevel(ecs)
	if !ok {
		return
	}

	dt := frameDelta()
	var spawned []actors.Actor
	var expired []*donburi.Entry
	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Actor.Get(e)
		a.Update(level.Map, ch, dt)
		components.Object.Get(e).SyncTo(a.Hitbox())

		if em, ok := a.Actor.(actors.Emitter); ok {
			spawned = append(spawned, em.Emit()...)
		}
		if ex, ok := a.Actor.(actors.Expiring); ok && ex.Dead() {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		factory.RemoveActor(ecs, e)
	}
	for _, a := range spawned {
		factory.CreateActor(ecs, a)
	}
}
