package systems

import (
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShell handles the pause, reset and debug keys and advances the
// simulation clock. Runs after UpdateInput and before the gameplay systems.
func UpdateShell(ecs *ecs.ECS) {
	session := getSession(ecs)
	input := getInput(ecs)

	if input.JustPressed(cfg.ActionPause) {
		session.Paused = !session.Paused
		logger.Log.WithField("paused", session.Paused).Debug("Pause toggled")
	}
	if input.JustPressed(cfg.ActionDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
	if session.Paused {
		return
	}

	session.Clock.Advance(frameDelta())

	if input.JustPressed(cfg.ActionReset) {
		RespawnCharacter(ecs)
	}
}

// RespawnCharacter puts the character back on its spawn point and records
// the respawn.
func RespawnCharacter(ecs *ecs.ECS) {
	_, ch, ok := getCharacter(ecs)
	if !ok {
		return
	}
	ch.ResetTo(ch.Spawn)
	ch.Respawns++
	logger.Log.WithFields(logrus.Fields{
		"x":        ch.Spawn.X,
		"y":        ch.Spawn.Y,
		"respawns": ch.Respawns,
	}).Info("Character respawned")
	SaveSession(ecs)
}
