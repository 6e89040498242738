package components

import (
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// SyncTo moves the object onto r and refreshes its cells in the space.
func (o *ObjectData) SyncTo(r gamemath.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
