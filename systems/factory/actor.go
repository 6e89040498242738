package factory

import (
	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/archetypes"
	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/automoto/pupu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateActor(ecs *ecs.ECS, a actors.Actor) *donburi.Entry {
	entry := archetypes.Actor.Spawn(ecs)
	components.Actor.SetValue(entry, components.ActorData{Actor: a})

	hb := a.Hitbox()
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvActor)
	obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}

// RemoveActor takes an actor out of the world and the resolv space.
func RemoveActor(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
	}
	ecs.World.Remove(entry.Entity())
}

// CreateActors spawns every NPC and trap of a level.
func CreateActors(ecs *ecs.ECS, s actors.Spawner, level *leveldata.Level) int {
	list := s.SpawnAll(level)
	for _, a := range list {
		CreateActor(ecs, a)
	}
	return len(list)
}
