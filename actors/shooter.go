package actors

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
)

const (
	shooterWalk = iota
	shooterAttack
	shooterHit
)

const (
	tagRecover timer.Tag = iota + 1
	tagReload
)

// Emitter is implemented by actors that create other actors. The caller
// takes ownership of whatever Emit returns.
type Emitter interface {
	Emit() []Actor
}

// Expiring is implemented by actors that leave the level on their own.
type Expiring interface {
	Dead() bool
}

// Shooter patrols like a charger but stops to fire bullets along the floor
// while the character is in its line of sight.
type Shooter struct {
	body
	cfg    Config
	clock  timer.Clock
	bullet gamemath.Rect

	state   int
	left    bool
	recover timer.Timeout
	reload  timer.Timeout
	pending []Actor
}

// NewShooter places a shooter. scale is the level pixel size, used for its
// bullets.
func NewShooter(pos gamemath.Vec, hitbox gamemath.Rect, scale float64, cfg Config, clock timer.Clock) *Shooter {
	frames := texture.Sheets[texture.Shooter].Columns
	b := texture.Sheets[texture.Bullet]
	s := &Shooter{
		body: body{
			pos:    pos,
			hitbox: hitbox,
			sprites: animations.NewGroup(
				animations.NewAnimation(texture.Shooter, shooterWalk, frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Shooter, shooterAttack, frames, cfg.TicksPerFrame),
				animations.NewAnimation(texture.Shooter, shooterHit, frames, cfg.TicksPerFrame),
			),
		},
		cfg:    cfg,
		clock:  clock,
		bullet: gamemath.Rect{W: float64(b.FrameW) * scale, H: float64(b.FrameH) * scale},
		left:   true,
	}
	s.setState(shooterWalk)
	return s
}

func (s *Shooter) Update(m Walls, ch Character, dt float64) {
	now := s.clock.Now()
	if tag, ok := s.recover.Poll(now); ok && tag == tagRecover {
		s.setState(shooterWalk)
	}
	s.sprites.Update()
	if s.state == shooterHit {
		return
	}

	hb := s.Hitbox()
	west, east := m.WestWallOf(hb), m.EastWallOf(hb)
	target := ch.Hitbox()
	inSight := CanCharge(west, east, hb, target)

	switch s.state {
	case shooterWalk:
		if inSight {
			s.left = target.X <= hb.X
			s.setState(shooterAttack)
			s.fire(hb, west, east)
			s.reload.Arm(now, s.cfg.FireInterval, tagReload)
			break
		}
		dir := 1.0
		if s.left {
			dir = -1
		}
		s.pos.X += dir * s.cfg.ShooterSpeed * gamemath.SafeDelta(dt)
		hb = s.Hitbox()
		if s.left && hb.X < west {
			s.pos.X = west - s.hitbox.X
			s.left = false
		} else if !s.left && hb.Right() > east {
			s.pos.X = east - s.hitbox.X - s.hitbox.W + 1
			s.left = true
		}
	case shooterAttack:
		if !inSight {
			s.reload.Cancel()
			s.setState(shooterWalk)
			break
		}
		s.left = target.X <= hb.X
		if tag, ok := s.reload.Poll(now); ok && tag == tagReload {
			s.fire(hb, west, east)
			s.reload.Arm(now, s.cfg.FireInterval, tagReload)
		}
	}
	s.flip = !s.left
}

// fire queues a bullet leaving the front of hb. It lives between the walls
// that bounded the shooter when it fired.
func (s *Shooter) fire(hb gamemath.Rect, west, east float64) {
	pos := gamemath.Vec{X: hb.Right() + 1, Y: hb.CenterY() - s.bullet.H/2}
	speed := s.cfg.BulletSpeed
	if s.left {
		pos.X = hb.X - s.bullet.W
		speed = -speed
	}
	s.pending = append(s.pending, NewBullet(pos, s.bullet, speed, west, east))
}

func (s *Shooter) Emit() []Actor {
	out := s.pending
	s.pending = nil
	return out
}

func (s *Shooter) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (s *Shooter) Touch(ch Character, from collision.Side) {
	stomp(s, ch, from)
}

func (s *Shooter) Injure() {
	s.setState(shooterHit)
	s.reload.Cancel()
	s.recover.Cancel()
	s.recover.Arm(s.clock.Now(), s.cfg.InjuryDuration, tagRecover)
}

func (s *Shooter) IsInjured() bool {
	return s.state == shooterHit
}

func (s *Shooter) Attacking() bool {
	return s.state == shooterAttack
}

func (s *Shooter) MovingLeft() bool {
	return s.left
}

func (s *Shooter) setState(st int) {
	s.state = st
	s.sprites.SetCurrent(st)
}

// Bullet flies straight until it leaves the span between its walls or hits
// the character.
type Bullet struct {
	body
	speed      float64
	west, east float64
	spent      bool
}

// NewBullet creates a bullet at pos moving speed pixels per second along x.
func NewBullet(pos gamemath.Vec, size gamemath.Rect, speed, west, east float64) *Bullet {
	return &Bullet{
		body: body{
			pos:     pos,
			hitbox:  gamemath.Rect{W: size.W, H: size.H},
			sprites: animations.NewGroup(animations.NewAnimation(texture.Bullet, 0, 1, 1)),
			flip:    speed > 0,
		},
		speed: speed,
		west:  west,
		east:  east,
	}
}

func (b *Bullet) Update(_ Walls, _ Character, dt float64) {
	if b.Dead() {
		return
	}
	b.pos.X += b.speed * gamemath.SafeDelta(dt)
	b.hidden = b.Dead()
}

// Dead reports whether the bullet hit its target or left its walls.
func (b *Bullet) Dead() bool {
	if b.spent {
		return true
	}
	hb := b.hitbox.Move(b.pos)
	return hb.X < b.west || hb.Right() > b.east
}

func (b *Bullet) CollisionDirections() collision.Side {
	return collision.SideAll
}

func (b *Bullet) Touch(ch Character, _ collision.Side) {
	if b.spent {
		return
	}
	ch.Injure()
	b.spent = true
	b.hidden = true
}
