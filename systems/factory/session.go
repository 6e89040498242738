package factory

import (
	"math/rand/v2"

	"github.com/automoto/pupu/archetypes"
	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/shared/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Clock: &timer.ManualClock{},
		Rand:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	})
	return session
}
