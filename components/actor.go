package components

import (
	"github.com/automoto/pupu/actors"
	"github.com/yohamta/donburi"
)

type ActorData struct {
	actors.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
