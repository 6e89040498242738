package actors

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
)

type chargerState int

const (
	chargerWalk chargerState = iota
	chargerCharge
	chargerStun
	chargerHit
)

const tagWalk timer.Tag = 1

// Charger walks back and forth and charges the character once nothing but
// open floor lies between them. Running into a wall while charging stuns
// it.
type Charger struct {
	body
	cfg   Config
	clock timer.Clock

	state   chargerState
	left    bool
	recover timer.Timeout
}

func NewCharger(pos gamemath.Vec, hitbox gamemath.Rect, cfg Config, clock timer.Clock) *Charger {
	frames := texture.Sheets[texture.Charger].Columns
	c := &Charger{
		body: body{
			pos:    pos,
			hitbox: hitbox,
			sprites: animations.NewGroup(
				animations.NewAnimation(texture.Charger, int(chargerWalk), frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Charger, int(chargerCharge), frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Charger, int(chargerStun), frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Charger, int(chargerHit), frames, cfg.TicksPerFrame),
			),
		},
		cfg:   cfg,
		clock: clock,
		left:  true,
	}
	c.setState(chargerWalk)
	return c
}

func (c *Charger) speed() float64 {
	switch c.state {
	case chargerWalk:
		return c.cfg.ChargerWalkSpeed
	case chargerCharge:
		return c.cfg.ChargerRunSpeed
	default:
		return 0
	}
}

func (c *Charger) Update(m Walls, ch Character, dt float64) {
	if tag, ok := c.recover.Poll(c.clock.Now()); ok && tag == tagWalk {
		c.setState(chargerWalk)
	}
	c.sprites.Update()

	hb := c.Hitbox()
	west, east := m.WestWallOf(hb), m.EastWallOf(hb)

	dir := 1.0
	if c.left {
		dir = -1
	}
	c.pos.X += dir * c.speed() * gamemath.SafeDelta(dt)
	hb = c.Hitbox()

	if c.state == chargerWalk {
		target := ch.Hitbox()
		if CanCharge(west, east, hb, target) {
			c.setState(chargerCharge)
			c.left = target.X <= hb.X
		}
	}

	hitWall := false
	if c.left && hb.X < west {
		c.pos.X = west - c.hitbox.X
		c.left = false
		hitWall = true
	} else if !c.left && hb.Right() > east {
		c.pos.X = east - c.hitbox.X - c.hitbox.W + 1
		c.left = true
		hitWall = true
	}

	if hitWall && c.state == chargerCharge {
		c.setState(chargerStun)
		c.recover.Cancel()
		c.recover.Arm(c.clock.Now(), c.cfg.StunDuration, tagWalk)
	}
	c.flip = !c.left
}

// CanCharge reports whether target shares a row band with self and lies
// between the walls that bound self.
func CanCharge(west, east float64, self, target gamemath.Rect) bool {
	if !self.OverlapsRows(target) {
		return false
	}
	if west <= target.Right() && target.X <= self.X {
		return true
	}
	return self.Right() <= target.Right() && target.X <= east
}

func (c *Charger) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (c *Charger) Touch(ch Character, from collision.Side) {
	stomp(c, ch, from)
}

func (c *Charger) Injure() {
	c.setState(chargerHit)
	c.recover.Cancel()
	c.recover.Arm(c.clock.Now(), c.cfg.InjuryDuration, tagWalk)
}

// IsInjured is also true while stunned, so a stunned charger can be
// walked into safely.
func (c *Charger) IsInjured() bool {
	return c.state == chargerStun || c.state == chargerHit
}

func (c *Charger) Charging() bool {
	return c.state == chargerCharge
}

func (c *Charger) setState(s chargerState) {
	c.state = s
	c.sprites.SetCurrent(int(s))
}
