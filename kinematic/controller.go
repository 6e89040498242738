// Package kinematic moves a controllable body through a collision map:
// run, jump, double jump, wall grab, injury and bounce.
package kinematic

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/timer"
)

// WallQuerier answers the four boundary queries of a collision map.
type WallQuerier interface {
	WestWallOf(r gamemath.Rect) float64
	EastWallOf(r gamemath.Rect) float64
	NorthWallOf(r gamemath.Rect) float64
	SouthWallOf(r gamemath.Rect) float64
}

// Input is the per-frame control snapshot.
type Input struct {
	Left, Right, Jump bool
}

const tagRecover timer.Tag = 1

// Controller is one body driven by input. It is not safe for concurrent
// use.
type Controller struct {
	cfg   Config
	clock timer.Clock

	pos    gamemath.Vec
	vel    gamemath.Vec
	facing Direction

	jumps      int
	locomotion Locomotion
	lifecycle  Lifecycle
	pose       Pose
	wallGrab   bool

	prevJump    bool
	pendingJump bool
	accum       float64

	recovery timer.Timeout
	appear   *gween.Tween
	appeared float32

	sprites *animations.Group
}

// NewController returns a controller at the origin. A nil clock uses a
// monotonic clock.
func NewController(cfg Config, clock timer.Clock) *Controller {
	if clock == nil {
		clock = timer.NewMonotonicClock()
	}
	if cfg.ReferenceFPS <= 0 {
		cfg.ReferenceFPS = DefaultConfig().ReferenceFPS
	}
	cfg.MaxSubsteps = max(cfg.MaxSubsteps, 1)

	c := &Controller{cfg: cfg, clock: clock}
	c.ResetTo(gamemath.Vec{})
	return c
}

// AttachSprites sets the sprite group that follows the pose.
func (c *Controller) AttachSprites(g *animations.Group) {
	c.sprites = g
	if g != nil {
		g.SetCurrent(int(c.pose))
	}
}

// ResetTo respawns the body at pos and replays the entry animation.
func (c *Controller) ResetTo(pos gamemath.Vec) {
	c.pos = pos
	c.vel = gamemath.Vec{}
	c.facing = DirectionRight
	c.jumps = c.cfg.MaxJumps
	c.locomotion = Ground
	c.lifecycle = Appearing
	c.wallGrab = false
	c.pendingJump = false
	c.accum = 0
	c.recovery.Cancel()
	c.appear = gween.New(0, 1, float32(c.cfg.AppearDuration), ease.OutQuad)
	c.appeared = 0
	c.setPose(PoseAppear)
}

// Update advances the body by dt seconds of wall-clock time in fixed
// reference-frame substeps.
func (c *Controller) Update(m WallQuerier, in Input, dt float64) {
	if tag, ok := c.recovery.Poll(c.clock.Now()); ok && tag == tagRecover && c.lifecycle == Injured {
		c.lifecycle = Live
	}

	if in.Jump && !c.prevJump {
		c.pendingJump = true
	}
	c.prevJump = in.Jump

	step := 1 / float64(c.cfg.ReferenceFPS)
	c.accum += math.Max(gamemath.SafeDelta(dt), 0)
	for n := 0; c.accum >= step; n++ {
		if n == c.cfg.MaxSubsteps {
			c.accum = 0
			break
		}
		c.accum -= step
		c.substep(m, in, step)
	}

	c.setPose(c.resolvePose())
}

// Every substep is exactly one reference frame.
const ratio = 1.0

func (c *Controller) substep(m WallQuerier, in Input, step float64) {
	if c.lifecycle == Appearing {
		var done bool
		c.appeared, done = c.appear.Update(float32(step))
		if done {
			c.lifecycle = Live
		}
		return
	}

	live := c.lifecycle == Live
	c.wallGrab = false

	dir := 0.0
	if live {
		if in.Left {
			dir--
		}
		if in.Right {
			dir++
		}
	}
	if dir != 0 {
		c.vel.X = gamemath.Approach(c.vel.X, dir*c.cfg.MaxRunSpeed, c.cfg.RunAcceleration*ratio)
		c.facing = Direction(dir)
	} else {
		c.vel.X = gamemath.ApplyFriction(c.vel.X, c.cfg.Friction, ratio, c.cfg.DeadZone)
	}

	c.pos.X += c.vel.X * ratio

	hb := c.Hitbox()
	if west := m.WestWallOf(hb); hb.X < west {
		c.pos.X = west - c.cfg.Hitbox.X
		c.touchWall()
		hb = c.Hitbox()
	}
	if east := m.EastWallOf(hb); hb.Right() > east {
		c.pos.X = east - c.cfg.Hitbox.W + 1 - c.cfg.Hitbox.X
		c.touchWall()
	}

	if c.pendingJump {
		c.pendingJump = false
		if live && c.jumps > 0 {
			if c.jumps == c.cfg.MaxJumps || c.wallGrab {
				c.locomotion = Jump
			} else {
				c.locomotion = DoubleJump
			}
			c.vel.Y = -c.cfg.JumpImpulse
			c.jumps--
		}
	}

	// Boundaries before the vertical move keep a fast body from skipping
	// over a thin floor.
	hb = c.Hitbox()
	north, south := m.NorthWallOf(hb), m.SouthWallOf(hb)

	if c.vel.Y < 0 {
		c.vel.Y = gamemath.Decay(c.vel.Y, c.cfg.RiseDecay, ratio)
		if c.vel.Y > -c.cfg.FallCrossover {
			c.vel.Y = c.cfg.FallCrossover
		}
	} else {
		terminal := c.cfg.TerminalFall
		if c.wallGrab {
			terminal = c.cfg.WallGrabFall
		}
		c.vel.Y = gamemath.ApproachExp(c.vel.Y, terminal, c.cfg.Gravity, ratio)
	}

	c.pos.Y += c.vel.Y * ratio

	hb = c.Hitbox()
	north = math.Max(north, m.NorthWallOf(hb))
	south = math.Min(south, m.SouthWallOf(hb))

	switch {
	case c.vel.Y < 0 && hb.Y < north:
		c.pos.Y = north - c.cfg.Hitbox.Y
		c.vel.Y = 0
	case c.vel.Y >= 0 && hb.Bottom() > south:
		c.pos.Y = south - c.cfg.Hitbox.H + 1 - c.cfg.Hitbox.Y
		c.vel.Y = 0
		c.jumps = c.cfg.MaxJumps
		c.locomotion = Ground
	case c.vel.Y > 0:
		c.locomotion = Fall
	}
}

// touchWall handles horizontal contact. The body always stops. An airborne
// body also grabs the wall, and its jump budget is refreshed to at least one
// charge: an empty budget becomes exactly one, while a budget that still
// holds more charges is left as it is.
func (c *Controller) touchWall() {
	c.vel.X = 0
	if c.locomotion == Ground {
		return
	}
	c.wallGrab = true
	c.jumps = max(c.jumps, min(1, c.cfg.MaxJumps))
}

func (c *Controller) resolvePose() Pose {
	switch {
	case c.lifecycle == Appearing:
		return PoseAppear
	case c.lifecycle == Injured:
		return PoseHit
	case c.wallGrab:
		return PoseWallGrab
	case c.locomotion == Jump:
		return PoseJump
	case c.locomotion == Fall:
		return PoseFall
	case c.locomotion == DoubleJump:
		return PoseDoubleJump
	case c.vel.X != 0:
		return PoseRun
	default:
		return PoseIdle
	}
}

func (c *Controller) setPose(p Pose) {
	if p == c.pose {
		return
	}
	c.pose = p
	if c.sprites != nil {
		c.sprites.SetCurrent(int(p))
	}
}

// Injure starts the injured state. Only a live body can be injured: while
// appearing or already injured the call does nothing.
func (c *Controller) Injure() {
	if c.lifecycle != Live {
		return
	}
	c.recovery.Cancel()
	c.recovery.Arm(c.clock.Now(), c.cfg.InjuryDuration, tagRecover)
	c.lifecycle = Injured
}

// Bounce launches the body upwards regardless of its state.
func (c *Controller) Bounce() {
	c.vel.Y = -c.cfg.BounceImpulse
	c.locomotion = Jump
}

func (c *Controller) IsFalling() bool {
	return c.locomotion == Fall
}

func (c *Controller) IsInjured() bool {
	return c.lifecycle == Injured
}

// Hitbox returns the solid rectangle in pixel space.
func (c *Controller) Hitbox() gamemath.Rect {
	return c.cfg.Hitbox.Move(c.pos)
}

func (c *Controller) Position() gamemath.Vec {
	return c.pos
}

func (c *Controller) Velocity() gamemath.Vec {
	return c.vel
}

func (c *Controller) Facing() Direction {
	return c.facing
}

func (c *Controller) JumpBudget() int {
	return c.jumps
}

func (c *Controller) Lifecycle() Lifecycle {
	return c.lifecycle
}

func (c *Controller) Locomotion() Locomotion {
	return c.locomotion
}

func (c *Controller) Pose() Pose {
	return c.pose
}

func (c *Controller) WallGrab() bool {
	return c.wallGrab
}

// AppearProgress runs from 0 to 1 over the entry animation.
func (c *Controller) AppearProgress() float64 {
	if c.lifecycle != Appearing {
		return 1
	}
	return float64(c.appeared)
}

// RecoveryLeft returns the seconds until an injury wears off.
func (c *Controller) RecoveryLeft() float64 {
	return c.recovery.Remaining(c.clock.Now())
}

func (c *Controller) Config() Config {
	return c.cfg
}
