package components

import (
	"math/rand/v2"

	"github.com/automoto/pupu/shared/filewatch"
	"github.com/automoto/pupu/shared/timer"
	"github.com/yohamta/donburi"
)

// SessionData is the app shell state around the simulation.
type SessionData struct {
	Paused bool
	// Clock is simulation time. It only advances while not paused, and every
	// controller and actor deadline is measured against it.
	Clock *timer.ManualClock
	// Rand drives NPC decisions.
	Rand *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()

// WatchData holds the level file watcher.
type WatchData struct {
	Watcher *filewatch.Watch
	// Dirty is set when the level file changed and cleared after reload.
	Dirty bool
}

var Watch = donburi.NewComponentType[WatchData]()
