package actors

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
)

// BouncingTrap launches a character that falls onto it.
type BouncingTrap struct {
	body
	spring *animations.Animation
}

func NewBouncingTrap(pos gamemath.Vec, hitbox gamemath.Rect, cfg Config) *BouncingTrap {
	frames := texture.Sheets[texture.BounceTrap].Columns
	spring := animations.NewOneShot(texture.BounceTrap, 1, frames, cfg.TicksPerFrame)
	t := &BouncingTrap{
		body: body{
			pos:     pos,
			hitbox:  hitbox,
			sprites: animations.NewGroup(animations.NewAnimation(texture.BounceTrap, 0, 1, 1), spring),
		},
		spring: spring,
	}
	return t
}

func (t *BouncingTrap) Update(Walls, Character, float64) {
	t.sprites.Update()
	if t.sprites.Current() == 1 && t.spring.Done() {
		t.sprites.SetCurrent(0)
	}
}

func (t *BouncingTrap) CollisionDirections() collision.Side {
	return collision.SideTop
}

func (t *BouncingTrap) Touch(ch Character, _ collision.Side) {
	if !ch.IsFalling() {
		return
	}
	ch.Bounce()
	t.sprites.SetCurrent(1)
	t.spring.Restart()
}

// SawTrap injures on any contact.
type SawTrap struct {
	body
}

func NewSawTrap(pos gamemath.Vec, hitbox gamemath.Rect, cfg Config) *SawTrap {
	frames := texture.Sheets[texture.Saw].Columns
	return &SawTrap{body: body{
		pos:     pos,
		hitbox:  hitbox,
		sprites: animations.NewGroup(animations.NewAnimation(texture.Saw, 0, frames, cfg.TicksPerFrame)),
	}}
}

func (t *SawTrap) Update(Walls, Character, float64) {
	t.sprites.Update()
}

func (t *SawTrap) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (t *SawTrap) Touch(ch Character, _ collision.Side) {
	ch.Injure()
}

// SpikeTrap pushes its spikes out once, retracts, and stays hidden for a
// while. Hidden spikes cannot be touched.
type SpikeTrap struct {
	body
	clock  timer.Clock
	out    *animations.Animation
	hiding *timer.RepeatTimer
}

func NewSpikeTrap(pos gamemath.Vec, hitbox gamemath.Rect, cfg Config, clock timer.Clock) *SpikeTrap {
	frames := texture.Sheets[texture.Spike].Columns
	out := animations.NewOneShot(texture.Spike, 0, frames, cfg.TicksPerFrame)
	return &SpikeTrap{
		body: body{
			pos:     pos,
			hitbox:  hitbox,
			sprites: animations.NewGroup(out),
		},
		clock:  clock,
		out:    out,
		hiding: timer.NewRepeatTimer(cfg.SpikeHiddenFor),
	}
}

func (t *SpikeTrap) Update(Walls, Character, float64) {
	now := t.clock.Now()
	if !t.hidden {
		t.sprites.Update()
		if t.out.Done() {
			t.hidden = true
			t.hiding.Reset(now)
		}
		return
	}
	if t.hiding.Due(now) {
		t.hidden = false
		t.out.Restart()
	}
}

func (t *SpikeTrap) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (t *SpikeTrap) Touch(ch Character, _ collision.Side) {
	ch.Injure()
}

func (t *SpikeTrap) Hidden() bool {
	return t.hidden
}

// Plank is scenery drawn from the trap sheet. It has no effect on touch.
type Plank struct {
	body
}

func NewPlank(pos gamemath.Vec, hitbox gamemath.Rect) *Plank {
	return &Plank{body: body{
		pos:     pos,
		hitbox:  hitbox,
		sprites: animations.NewGroup(animations.NewAnimation(texture.Plank, 0, 1, 1)),
	}}
}

func (p *Plank) Update(Walls, Character, float64) {}

func (p *Plank) CollisionDirections() collision.Side {
	return collision.SideNone
}

func (p *Plank) Touch(Character, collision.Side) {}
