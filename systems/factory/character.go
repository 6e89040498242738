package factory

import (
	"github.com/automoto/pupu/archetypes"
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/kinematic"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
	"github.com/automoto/pupu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCharacter(ecs *ecs.ECS, spawn gamemath.Vec, clock timer.Clock) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	ctrl := kinematic.NewController(cfg.Character, clock)
	sprites := CharacterSprites(cfg.Actors.TicksPerFrame)
	ctrl.AttachSprites(sprites)
	ctrl.ResetTo(spawn)

	components.Character.SetValue(character, components.CharacterData{
		Controller: ctrl,
		Sprites:    sprites,
		Spawn:      spawn,
	})

	hb := ctrl.Hitbox()
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return character
}
