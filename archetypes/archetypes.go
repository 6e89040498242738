package archetypes

import (
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Object,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Watch,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
