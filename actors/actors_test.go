package actors

import (
	"io"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/automoto/pupu/shared/timer"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const (
	tp    = 32.0
	frame = 1.0 / 60
)

type fakeCharacter struct {
	box     gamemath.Rect
	falling bool
	injured int
	bounced int
}

func (f *fakeCharacter) Hitbox() gamemath.Rect { return f.box }
func (f *fakeCharacter) IsFalling() bool       { return f.falling }
func (f *fakeCharacter) Injure()               { f.injured++ }
func (f *fakeCharacter) Bounce()               { f.bounced++ }

// corridor is a one-row-high map with solid tiles at both ends.
func corridor(width int) *collision.Map {
	m := collision.NewMap(collision.DefaultConfig())
	m.Load(width, 1, map[gamemath.TileCoord]collision.Side{
		{X: 0, Y: 0}:         collision.SideAll,
		{X: width - 1, Y: 0}: collision.SideAll,
	}, nil)
	return m
}

var smallBox = gamemath.Rect{X: 0, Y: 0, W: 20, H: 20}

func far() *fakeCharacter {
	return &fakeCharacter{box: gamemath.Rect{X: -1000, Y: -1000, W: 10, H: 10}}
}

func TestWalkerTurnsAtWalls(t *testing.T) {
	m := corridor(6)
	cfg := DefaultConfig()
	cfg.IdleChance = 0
	clock := &timer.ManualClock{}
	w := NewSimpleWalker(gamemath.Vec{X: 2 * tp, Y: 4}, smallBox, cfg, clock, rand.New(rand.NewPCG(1, 2)))

	turns := 0
	left := w.MovingLeft()
	for i := 0; i < 600; i++ {
		clock.Advance(frame)
		w.Update(m, far(), frame)
		hb := w.Hitbox()
		require.GreaterOrEqual(t, hb.X, tp)
		require.LessOrEqual(t, hb.Right(), 5*tp-1)
		if w.MovingLeft() != left {
			turns++
			left = w.MovingLeft()
		}
	}
	assert.GreaterOrEqual(t, turns, 4)
}

func TestWalkerIdlesAndResumes(t *testing.T) {
	m := corridor(20)
	cfg := DefaultConfig()
	cfg.IdleChance = 1
	cfg.TurnChance = 0
	cfg.MaxIdle = 1
	clock := &timer.ManualClock{}
	w := NewSimpleWalker(gamemath.Vec{X: 10 * tp, Y: 4}, smallBox, cfg, clock, rand.New(rand.NewPCG(3, 4)))

	idleSeen := false
	for i := 0; i < 30 && !idleSeen; i++ {
		clock.Advance(0.1)
		w.Update(m, far(), frame)
		idleSeen = w.state == walkerIdle
	}
	require.True(t, idleSeen)

	pos := w.Position()
	w.Update(m, far(), frame)
	assert.Equal(t, pos, w.Position(), "idle walker stands still")

	w.cfg.IdleChance = 0
	clock.Advance(cfg.MaxIdle)
	w.Update(m, far(), frame)
	assert.Equal(t, walkerRun, w.state)
}

func TestStompRules(t *testing.T) {
	clock := &timer.ManualClock{}
	cfg := DefaultConfig()
	w := NewSimpleWalker(gamemath.Vec{}, smallBox, cfg, clock, rand.New(rand.NewPCG(1, 1)))
	ch := &fakeCharacter{}

	w.Touch(ch, collision.SideLeft)
	assert.Equal(t, 1, ch.injured)
	assert.False(t, w.IsInjured())

	w.Touch(ch, collision.SideTop)
	assert.True(t, w.IsInjured())
	assert.Equal(t, 1, ch.bounced)

	// An injured NPC is harmless and cannot be stomped again.
	w.Touch(ch, collision.SideRight)
	w.Touch(ch, collision.SideTop)
	assert.Equal(t, 1, ch.injured)
	assert.Equal(t, 1, ch.bounced)

	clock.Advance(cfg.InjuryDuration)
	w.Update(corridor(4), far(), 0)
	assert.False(t, w.IsInjured())
}

func TestCanCharge(t *testing.T) {
	self := gamemath.Rect{X: 200, Y: 100, W: 40, H: 40}

	tests := []struct {
		name   string
		target gamemath.Rect
		want   bool
	}{
		{"left, in reach", gamemath.Rect{X: 100, Y: 110, W: 20, H: 20}, true},
		{"left, behind wall", gamemath.Rect{X: 10, Y: 110, W: 20, H: 20}, false},
		{"right, in reach", gamemath.Rect{X: 300, Y: 110, W: 20, H: 20}, true},
		{"right, behind wall", gamemath.Rect{X: 420, Y: 110, W: 20, H: 20}, false},
		{"different rows", gamemath.Rect{X: 100, Y: 10, W: 20, H: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCharge(64, 383, self, tt.target))
		})
	}
}

func TestChargerStunsOnWall(t *testing.T) {
	m := corridor(12)
	cfg := DefaultConfig()
	clock := &timer.ManualClock{}
	c := NewCharger(gamemath.Vec{X: 6 * tp, Y: 4}, smallBox, cfg, clock)
	ch := &fakeCharacter{box: gamemath.Rect{X: 2 * tp, Y: 4, W: 20, H: 20}}

	c.Update(m, ch, frame)
	require.True(t, c.Charging())
	assert.False(t, c.flip, "charging toward the character on the left")

	for i := 0; i < 300 && c.Charging(); i++ {
		clock.Advance(frame)
		c.Update(m, ch, frame)
	}
	assert.False(t, c.Charging())
	assert.True(t, c.IsInjured(), "stunned after hitting the wall")
	assert.Equal(t, tp, c.Hitbox().X)

	clock.Advance(cfg.StunDuration)
	c.Update(m, far(), frame)
	assert.False(t, c.IsInjured())
}

func TestShooterFiresWhileCharacterInSight(t *testing.T) {
	m := corridor(12)
	cfg := DefaultConfig()
	clock := &timer.ManualClock{}
	s := NewShooter(gamemath.Vec{X: 6 * tp, Y: 4}, smallBox, 1, cfg, clock)
	ch := &fakeCharacter{box: gamemath.Rect{X: 2 * tp, Y: 4, W: 20, H: 20}}

	s.Update(m, ch, frame)
	require.True(t, s.Attacking())
	assert.True(t, s.MovingLeft())
	assert.Equal(t, gamemath.Vec{X: 6 * tp, Y: 4}, s.Position(), "stands still to shoot")

	shots := s.Emit()
	require.Len(t, shots, 1)
	assert.Empty(t, s.Emit(), "emitted bullets are handed over once")

	b, ok := shots[0].(*Bullet)
	require.True(t, ok)
	assert.Equal(t, gamemath.Rect{X: 6*tp - 8, Y: 12, W: 8, H: 4}, b.Hitbox())
	b.Update(m, ch, frame)
	assert.Less(t, b.Hitbox().X, 6*tp-8, "flies toward the character")

	clock.Advance(cfg.FireInterval / 2)
	s.Update(m, ch, frame)
	assert.Empty(t, s.Emit(), "still reloading")

	clock.Advance(cfg.FireInterval / 2)
	s.Update(m, ch, frame)
	assert.Len(t, s.Emit(), 1)

	s.Update(m, far(), frame)
	assert.False(t, s.Attacking())
	clock.Advance(cfg.FireInterval)
	s.Update(m, far(), frame)
	assert.Empty(t, s.Emit())
	assert.NotEqual(t, gamemath.Vec{X: 6 * tp, Y: 4}, s.Position(), "walks again")
}

func TestStompedShooterHoldsFire(t *testing.T) {
	m := corridor(12)
	cfg := DefaultConfig()
	clock := &timer.ManualClock{}
	s := NewShooter(gamemath.Vec{X: 6 * tp, Y: 4}, smallBox, 1, cfg, clock)
	ch := &fakeCharacter{box: gamemath.Rect{X: 2 * tp, Y: 4, W: 20, H: 20}}

	s.Touch(ch, collision.SideTop)
	require.True(t, s.IsInjured())
	assert.Equal(t, 1, ch.bounced)

	s.Update(m, ch, frame)
	assert.False(t, s.Attacking())
	assert.Empty(t, s.Emit())

	clock.Advance(cfg.InjuryDuration)
	s.Update(m, ch, frame)
	assert.False(t, s.IsInjured())
	s.Update(m, ch, frame)
	assert.True(t, s.Attacking())
}

func TestBulletDiesOutsideItsWalls(t *testing.T) {
	b := NewBullet(gamemath.Vec{X: 100, Y: 12}, gamemath.Rect{W: 8, H: 4}, -400, tp, 11*tp-1)
	ch := far()

	prev := b.Hitbox().X
	for i := 0; i < 100 && !b.Dead(); i++ {
		require.GreaterOrEqual(t, prev, tp)
		b.Update(nil, ch, frame)
		if !b.Dead() {
			prev = b.Hitbox().X
		}
	}
	require.True(t, b.Dead())
	assert.True(t, b.Hitbox().Empty(), "a dead bullet cannot be touched")

	right := NewBullet(gamemath.Vec{X: 11*tp - 12, Y: 12}, gamemath.Rect{W: 8, H: 4}, 400, tp, 11*tp-1)
	assert.False(t, right.Dead())
	right.Update(nil, ch, frame)
	assert.True(t, right.Dead())
}

func TestBulletInjuresOnce(t *testing.T) {
	b := NewBullet(gamemath.Vec{X: 100, Y: 12}, gamemath.Rect{W: 8, H: 4}, -400, tp, 11*tp-1)
	ch := &fakeCharacter{box: gamemath.Rect{X: 90, Y: 4, W: 20, H: 20}}

	assert.True(t, Interact(b, ch, collision.DefaultConfig().ContactThreshold))
	assert.Equal(t, 1, ch.injured)
	assert.True(t, b.Dead())

	assert.False(t, Interact(b, ch, collision.DefaultConfig().ContactThreshold))
	b.Touch(ch, collision.SideLeft)
	assert.Equal(t, 1, ch.injured)
}

func TestBouncingTrapNeedsFallingCharacter(t *testing.T) {
	trap := NewBouncingTrap(gamemath.Vec{X: 100, Y: 100}, smallBox, DefaultConfig())
	ch := &fakeCharacter{box: gamemath.Rect{X: 100, Y: 85, W: 10, H: 20}}

	assert.Equal(t, collision.SideTop, trap.CollisionDirections())

	assert.False(t, Interact(trap, ch, 8), "not falling: seen from the side")
	assert.Equal(t, 0, ch.bounced)

	ch.falling = true
	assert.True(t, Interact(trap, ch, 8))
	assert.Equal(t, 1, ch.bounced)
	assert.Equal(t, 1, trap.sprites.Current())

	for i := 0; i < 100; i++ {
		trap.Update(nil, ch, frame)
	}
	assert.Equal(t, 0, trap.sprites.Current(), "spring animation settles")
}

func TestSawInjuresFromAnySide(t *testing.T) {
	saw := NewSawTrap(gamemath.Vec{X: 100, Y: 100}, smallBox, DefaultConfig())
	for _, box := range []gamemath.Rect{
		{X: 90, Y: 105, W: 15, H: 5},
		{X: 115, Y: 105, W: 15, H: 5},
		{X: 105, Y: 115, W: 5, H: 15},
	} {
		ch := &fakeCharacter{box: box}
		assert.True(t, Interact(saw, ch, 8))
		assert.Equal(t, 1, ch.injured)
	}

	miss := &fakeCharacter{box: gamemath.Rect{X: 0, Y: 0, W: 5, H: 5}}
	assert.False(t, Interact(saw, miss, 8))
}

func TestSpikeTrapHides(t *testing.T) {
	cfg := DefaultConfig()
	clock := &timer.ManualClock{}
	spike := NewSpikeTrap(gamemath.Vec{X: 100, Y: 100}, smallBox, cfg, clock)
	ch := &fakeCharacter{box: gamemath.Rect{X: 105, Y: 105, W: 5, H: 5}}

	assert.True(t, Interact(spike, ch, 8))

	ticks := texture.Sheets[texture.Spike].Columns * cfg.TicksPerFrame
	for i := 0; i < ticks; i++ {
		spike.Update(nil, ch, frame)
	}
	require.True(t, spike.Hidden())
	assert.True(t, spike.Hitbox().Empty())
	assert.False(t, Interact(spike, ch, 8))

	clock.Advance(cfg.SpikeHiddenFor)
	spike.Update(nil, ch, frame)
	assert.False(t, spike.Hidden())
	assert.True(t, Interact(spike, ch, 8))
	assert.Equal(t, 2, ch.injured)
}

func TestPlankIsInert(t *testing.T) {
	p := NewPlank(gamemath.Vec{}, smallBox)
	ch := &fakeCharacter{box: gamemath.Rect{X: 5, Y: 5, W: 5, H: 5}, falling: true}
	assert.False(t, Interact(p, ch, 8))
	assert.Zero(t, ch.injured+ch.bounced)
}

func TestContactSide(t *testing.T) {
	target := gamemath.Rect{X: 100, Y: 100, W: 40, H: 40}

	tests := []struct {
		name    string
		box     gamemath.Rect
		falling bool
		want    collision.Side
	}{
		{"landing", gamemath.Rect{X: 110, Y: 75, W: 10, H: 30}, true, collision.SideTop},
		{"rising through the top", gamemath.Rect{X: 90, Y: 75, W: 10, H: 30}, false, collision.SideLeft},
		{"from the left", gamemath.Rect{X: 95, Y: 110, W: 10, H: 10}, true, collision.SideLeft},
		{"from the right", gamemath.Rect{X: 135, Y: 110, W: 10, H: 10}, false, collision.SideRight},
		{"from below", gamemath.Rect{X: 110, Y: 135, W: 10, H: 10}, false, collision.SideBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContactSide(tt.box, tt.falling, target, 8))
		})
	}
}

type recordingCanvas struct {
	sheets []texture.ID
	flips  []bool
}

func (r *recordingCanvas) DrawFrame(sheet texture.ID, _, _ int, _ gamemath.Vec, flip bool) {
	r.sheets = append(r.sheets, sheet)
	r.flips = append(r.flips, flip)
}

func TestSpawner(t *testing.T) {
	s := Spawner{Config: DefaultConfig(), PixelSize: 2, Clock: &timer.ManualClock{}, Rand: rand.New(rand.NewPCG(1, 2))}

	level := &leveldata.Level{Width: 10, Height: 10}
	for _, src := range []leveldata.TileSource{
		leveldata.SourceCharacterSpawn,
		leveldata.SourceEnemy1,
		leveldata.SourceEnemy3,
		leveldata.SourceEnemy4,
		leveldata.SourceTrap1,
		leveldata.SourceTrap2,
		leveldata.SourceTrap4,
		leveldata.SourceTrap5,
	} {
		level.Add(leveldata.Tile{Source: src, Pos: gamemath.TileCoord{X: 16, Y: 32}})
	}

	list := s.SpawnAll(level)
	require.Len(t, list, 7)
	assert.IsType(t, &SimpleWalker{}, list[0])
	assert.IsType(t, &Charger{}, list[1])
	assert.IsType(t, &Shooter{}, list[2])
	assert.IsType(t, &BouncingTrap{}, list[3])
	assert.IsType(t, &SawTrap{}, list[4])
	assert.IsType(t, &SpikeTrap{}, list[5])
	assert.IsType(t, &Plank{}, list[6])

	// Enemy hitbox offset {14,26,22,22} scaled by 2 at (32,64).
	assert.Equal(t, gamemath.Rect{X: 60, Y: 116, W: 44, H: 44}, list[0].Hitbox())
	assert.Equal(t, gamemath.Vec{X: 32, Y: 64}, s.SpawnPoint(level))

	_, ok := s.Spawn(leveldata.Tile{Source: leveldata.SourceBox1})
	assert.False(t, ok)

	canvas := &recordingCanvas{}
	for _, a := range list {
		a.Draw(canvas)
	}
	assert.Equal(t, []texture.ID{
		texture.Walker, texture.Charger, texture.Shooter, texture.BounceTrap, texture.Saw, texture.Spike, texture.Plank,
	}, canvas.sheets)
}
