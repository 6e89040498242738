package systems

import (
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/savedata"
	"github.com/yohamta/donburi/ecs"
)

var saveStore *savedata.Store

// InitPersistence opens the gdata store for the configured app name
func InitPersistence() error {
	s, err := savedata.Open(cfg.Persistence.AppName)
	if err != nil {
		return err
	}
	saveStore = s
	return nil
}

// LoadSession returns the saved session, or nil when there is none.
func LoadSession() (*savedata.Session, error) {
	if saveStore == nil {
		return nil, nil
	}
	return saveStore.LoadSession()
}

// SaveSession stores the current level path and respawn count. Failures
// are logged and otherwise ignored.
func SaveSession(ecs *ecs.ECS) {
	if saveStore == nil {
		return
	}
	var saved savedata.Session
	if _, level, ok := getLevel(ecs); ok {
		saved.LastLevel = level.Path
	}
	if _, ch, ok := getCharacter(ecs); ok {
		saved.Respawns = ch.Respawns
	}
	if err := saveStore.SaveSession(saved); err != nil {
		logger.Log.WithError(err).Warn("Could not save session")
	}
}
