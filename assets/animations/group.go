package animations

import (
	"github.com/sirupsen/logrus"

	"github.com/automoto/pupu/logger"
)

// Group is an indexed set of animations with one current entry, usually
// one per pose of an entity.
type Group struct {
	anims   []*Animation
	current int
}

func NewGroup(anims ...*Animation) *Group {
	return &Group{anims: anims}
}

// SetCurrent switches to the animation at index and restarts it. An index
// outside the group is logged and the current animation is kept.
func (g *Group) SetCurrent(index int) {
	if index < 0 || index >= len(g.anims) {
		logger.Log.WithFields(logrus.Fields{
			"index": index,
			"size":  len(g.anims),
		}).Warn("Invalid sprite index")
		return
	}
	if index == g.current {
		return
	}
	g.current = index
	g.anims[index].Restart()
}

func (g *Group) Current() int {
	return g.current
}

// Animation returns the current animation, or nil for an empty group.
func (g *Group) Animation() *Animation {
	if len(g.anims) == 0 {
		return nil
	}
	return g.anims[g.current]
}

func (g *Group) Update() {
	if a := g.Animation(); a != nil {
		a.Update()
	}
}

func (g *Group) Len() int {
	return len(g.anims)
}
