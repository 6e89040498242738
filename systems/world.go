package systems

import (
	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the simulated time of one ebiten tick in seconds.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

func getSession(ecs *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(ecs.World))
}

func getInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

func getLevel(ecs *ecs.ECS) (*donburi.Entry, *components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Level.Get(entry), true
}

func getCharacter(ecs *ecs.ECS) (*donburi.Entry, *components.CharacterData, bool) {
	entry, ok := tags.Character.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Character.Get(entry), true
}

// WithGameplayChecks wraps a system so it only runs while not paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if getSession(e).Paused {
			return
		}
		system(e)
	}
}
