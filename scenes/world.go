package scenes

import (
	"image/color"

	"github.com/automoto/pupu/components"
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/systems"
	"github.com/automoto/pupu/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level with its character, actors and app shell.
type WorldScene struct {
	ecs *ecs.ECS
}

// NewWorldScene loads the level at path and builds the world around it.
// A level that fails to load is returned as an error.
func NewWorldScene(path string) (*WorldScene, error) {
	e := ecs.NewECS(donburi.NewWorld())

	// The level file is reloaded between frames, so it goes first.
	e.AddSystem(systems.UpdateReload)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateShell)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacter))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateActors))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateInteractions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawCharacter)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSession(e)
	factory.CreateCamera(e)

	levelEntry, err := factory.LoadLevel(e, path)
	if err != nil {
		return nil, err
	}
	level := components.Level.Get(levelEntry).Level

	session := components.Session.Get(components.Session.MustFirst(e.World))
	factory.CreateCharacter(e, gamemath.Vec{}, session.Clock)
	systems.PopulateLevel(e, level)

	if err := systems.StartWatching(e); err != nil {
		logger.Log.WithError(err).Warn("Level hot reload disabled")
	}
	systems.SaveSession(e)

	logger.Log.WithFields(logrus.Fields{
		"path":   path,
		"width":  level.Width,
		"height": level.Height,
		"tiles":  level.TileCount(),
	}).Info("World ready")

	return &WorldScene{ecs: e}, nil
}

func (ws *WorldScene) Update() {
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

// Close releases the level watcher.
func (ws *WorldScene) Close() {
	systems.StopWatching(ws.ecs)
}
