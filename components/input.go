package components

import (
	cfg "github.com/automoto/pupu/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
