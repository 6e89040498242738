package systems

import (
	"fmt"

	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/filewatch"
	"github.com/automoto/pupu/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// StartWatching watches the current level file so edits are picked up by
// UpdateReload.
func StartWatching(ecs *ecs.ECS) error {
	entry, level, ok := getLevel(ecs)
	if !ok {
		return nil
	}
	watch := components.Watch.Get(entry)
	if watch.Watcher.Active() {
		return nil
	}

	w, err := filewatch.Start(level.Path)
	if err != nil {
		return fmt.Errorf("watch level: %w", err)
	}
	watch.Watcher = w
	logger.Log.WithField("path", level.Path).Info("Watching level file")
	return nil
}

// StopWatching closes the level watcher, if any.
func StopWatching(ecs *ecs.ECS) {
	entry, _, ok := getLevel(ecs)
	if !ok {
		return
	}
	watch := components.Watch.Get(entry)
	watch.Watcher.Close()
	watch.Watcher = nil
}

// UpdateReload reloads the level when its file changed. It must run first
// in the frame so the collision map is only ever swapped between frames.
func UpdateReload(ecs *ecs.ECS) {
	entry, _, ok := getLevel(ecs)
	if !ok {
		return
	}
	watch := components.Watch.Get(entry)
	if watch.Watcher.Changed() {
		watch.Dirty = true
	}
	if !watch.Dirty {
		return
	}
	watch.Dirty = false
	_ = ReloadLevel(ecs)
}

// ReloadLevel reads the level file again and rebuilds the collision map,
// actors and spawn. A level that fails to load leaves the running one in
// place.
func ReloadLevel(ecs *ecs.ECS) error {
	_, data, ok := getLevel(ecs)
	if !ok {
		return nil
	}

	level, err := factory.ReadLevel(data.Path)
	if err != nil {
		logger.Log.WithError(err).WithField("path", data.Path).Warn("Level reload failed, keeping current level")
		return err
	}

	data.Level = level
	data.Map.LoadLevel(level)
	data.Generation++
	PopulateLevel(ecs, level)

	logger.Log.WithFields(logrus.Fields{
		"path":       data.Path,
		"generation": data.Generation,
	}).Info("Level reloaded")
	return nil
}
