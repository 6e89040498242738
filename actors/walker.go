package actors

import (
	"math/rand/v2"

	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
)

const (
	walkerRun = iota
	walkerIdle
	walkerHit
)

const tagResume timer.Tag = 1

// SimpleWalker patrols between walls, stopping now and then. Landing on it
// injures it; touching it from any other side injures the character.
type SimpleWalker struct {
	body
	cfg   Config
	clock timer.Clock
	rng   *rand.Rand

	state    int
	left     bool
	resume   timer.Timeout
	decision *timer.RepeatTimer
}

func NewSimpleWalker(pos gamemath.Vec, hitbox gamemath.Rect, cfg Config, clock timer.Clock, rng *rand.Rand) *SimpleWalker {
	frames := texture.Sheets[texture.Walker].Columns
	w := &SimpleWalker{
		body: body{
			pos:    pos,
			hitbox: hitbox,
			sprites: animations.NewGroup(
				animations.NewAnimation(texture.Walker, walkerRun, frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Walker, walkerIdle, frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Walker, walkerHit, frames, cfg.TicksPerFrame),
			),
		},
		cfg:      cfg,
		clock:    clock,
		rng:      rng,
		left:     true,
		decision: timer.NewRepeatTimer(cfg.DecisionInterval),
	}
	w.setState(walkerRun)
	return w
}

func (w *SimpleWalker) Update(m Walls, _ Character, dt float64) {
	now := w.clock.Now()
	if tag, ok := w.resume.Poll(now); ok && tag == tagResume {
		w.setState(walkerRun)
	}
	w.sprites.Update()

	switch w.state {
	case walkerRun:
		hb := w.Hitbox()
		west, east := m.WestWallOf(hb), m.EastWallOf(hb)

		dir := 1.0
		if w.left {
			dir = -1
		}
		w.pos.X += dir * w.cfg.WalkerSpeed * gamemath.SafeDelta(dt)

		hb = w.Hitbox()
		if w.left && hb.X < west {
			w.pos.X = west - w.hitbox.X
			w.left = false
		} else if !w.left && hb.Right() > east {
			w.pos.X = east - w.hitbox.X - w.hitbox.W + 1
			w.left = true
		}

		if w.decision.Due(now) && w.rng.Float64() < w.cfg.IdleChance {
			w.setState(walkerIdle)
			w.resume.Arm(now, w.rng.Float64()*w.cfg.MaxIdle, tagResume)
		}
	case walkerIdle:
		if w.decision.Due(now) && w.rng.Float64() < w.cfg.TurnChance {
			w.left = !w.left
		}
	}
	w.flip = !w.left
}

func (w *SimpleWalker) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (w *SimpleWalker) Touch(ch Character, from collision.Side) {
	stomp(w, ch, from)
}

func (w *SimpleWalker) Injure() {
	w.setState(walkerHit)
	w.resume.Cancel()
	w.resume.Arm(w.clock.Now(), w.cfg.InjuryDuration, tagResume)
}

func (w *SimpleWalker) IsInjured() bool {
	return w.state == walkerHit
}

func (w *SimpleWalker) MovingLeft() bool {
	return w.left
}

func (w *SimpleWalker) setState(s int) {
	w.state = s
	w.sprites.SetCurrent(s)
}

// stomp is the shared NPC touch rule.
func stomp(npc Injurable, ch Character, from collision.Side) {
	if npc.IsInjured() {
		return
	}
	if from == collision.SideTop {
		npc.Injure()
		ch.Bounce()
		return
	}
	ch.Injure()
}
