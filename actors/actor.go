// Package actors holds the NPCs and traps that share a level with the
// character. Actors never change the character directly; the interaction
// pass calls Touch when their hitboxes meet.
package actors

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/gamemath"
)

// Canvas draws one sprite sheet frame at a pixel position.
type Canvas interface {
	DrawFrame(sheet texture.ID, row, frame int, at gamemath.Vec, flip bool)
}

// Walls is the part of the collision map actors walk against.
type Walls interface {
	WestWallOf(r gamemath.Rect) float64
	EastWallOf(r gamemath.Rect) float64
}

// Character is what actors may see of and do to the character.
type Character interface {
	Hitbox() gamemath.Rect
	IsFalling() bool
	Injure()
	Bounce()
}

type Actor interface {
	Draw(c Canvas)
	Update(m Walls, ch Character, dt float64)
	// Hitbox is empty while the actor cannot be touched.
	Hitbox() gamemath.Rect
	// CollisionDirections lists the sides from which a touch has an effect.
	CollisionDirections() collision.Side
	Touch(ch Character, from collision.Side)
}

// Injurable is implemented by actors that can be hurt by the character.
type Injurable interface {
	Injure()
	IsInjured() bool
}

// ContactSide returns the side of target the character's hitbox came from.
// A falling character whose bottom is within threshold of target's top
// lands on it; otherwise the horizontal centres decide, and a character
// that is mostly below hits the bottom.
func ContactSide(chBox gamemath.Rect, falling bool, target gamemath.Rect, threshold float64) collision.Side {
	switch {
	case falling && chBox.Bottom()-target.Y <= threshold:
		return collision.SideTop
	case chBox.Y >= target.Bottom()-threshold:
		return collision.SideBottom
	case chBox.CenterX() < target.CenterX():
		return collision.SideLeft
	default:
		return collision.SideRight
	}
}

// Interact touches a with ch when their hitboxes overlap on one of a's
// active sides. It reports whether a touch happened.
func Interact(a Actor, ch Character, threshold float64) bool {
	box := a.Hitbox()
	chBox := ch.Hitbox()
	if !chBox.Overlaps(box) {
		return false
	}
	side := ContactSide(chBox, ch.IsFalling(), box, threshold)
	if !a.CollisionDirections().Has(side) {
		return false
	}
	a.Touch(ch, side)
	return true
}

// body is the shared position and sprite state of every actor.
type body struct {
	pos     gamemath.Vec
	hitbox  gamemath.Rect
	sprites *animations.Group
	flip    bool
	hidden  bool
}

func (b *body) Hitbox() gamemath.Rect {
	if b.hidden {
		return gamemath.Rect{}
	}
	return b.hitbox.Move(b.pos)
}

func (b *body) Draw(c Canvas) {
	if b.hidden {
		return
	}
	a := b.sprites.Animation()
	if a == nil {
		return
	}
	c.DrawFrame(a.Sheet, a.Row, a.Frame(), b.pos, b.flip)
}

func (b *body) Position() gamemath.Vec {
	return b.pos
}
