package systems

import (
	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/automoto/pupu/systems/factory"
	"github.com/automoto/pupu/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PopulateLevel replaces the actors and the resolv space with those of
// level and respawns the character on the level's spawn point.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) {
	var stale []donburi.Entity
	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		ecs.World.Remove(e)
	}

	w, h := factory.LevelPixelSize(level)
	cell := max(cfg.Collision.PixelSize, 1) * leveldata.TileSize
	spaceEntry := factory.CreateSpace(ecs, w, h, cell, cell)
	space := components.Space.Get(spaceEntry)

	session := getSession(ecs)
	spawner := actors.Spawner{
		Config:    cfg.Actors,
		PixelSize: cfg.Collision.PixelSize,
		Clock:     session.Clock,
		Rand:      session.Rand,
	}
	n := factory.CreateActors(ecs, spawner, level)

	if entry, ch, ok := getCharacter(ecs); ok {
		ch.Spawn = spawner.SpawnPoint(level)
		ch.ResetTo(ch.Spawn)
		obj := components.Object.Get(entry)
		obj.SyncTo(ch.Hitbox())
		space.Add(obj.Object)
	}

	logger.Log.WithFields(logrus.Fields{
		"actors": n,
		"width":  w,
		"height": h,
	}).Info("Level populated")
}
