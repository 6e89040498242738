package components

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/kinematic"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CharacterData wraps the controller of the player's character.
type CharacterData struct {
	*kinematic.Controller
	// Sprites follows the controller's pose; the render pass advances it.
	Sprites  *animations.Group
	Spawn    gamemath.Vec
	Respawns int
}

var Character = donburi.NewComponentType[CharacterData]()
