package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Actor     = donburi.NewTag().SetName("Actor")
	Level     = donburi.NewTag().SetName("Level")
)

// Resolv tags for the interaction pass
const (
	ResolvCharacter = "character"
	ResolvActor     = "actor"
)
