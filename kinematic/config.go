package kinematic

import "github.com/automoto/pupu/shared/gamemath"

// Config tunes the controller. Speeds and accelerations are in pixels per
// reference frame, factors are applied once per reference frame.
type Config struct {
	ReferenceFPS int `yaml:"referenceFPS"`
	MaxSubsteps  int `yaml:"maxSubsteps"`

	// Hitbox is the solid part of the sprite frame, relative to the
	// position, in pixels.
	Hitbox gamemath.Rect `yaml:"hitbox"`

	RunAcceleration float64 `yaml:"runAcceleration"`
	MaxRunSpeed     float64 `yaml:"maxRunSpeed"`
	Friction        float64 `yaml:"friction"`
	DeadZone        float64 `yaml:"deadZone"`

	JumpImpulse   float64 `yaml:"jumpImpulse"`
	BounceImpulse float64 `yaml:"bounceImpulse"`
	MaxJumps      int     `yaml:"maxJumps"`

	// RiseDecay slows a rising body; once the upward speed drops under
	// FallCrossover the body starts falling at that speed.
	RiseDecay     float64 `yaml:"riseDecay"`
	FallCrossover float64 `yaml:"fallCrossover"`
	// Gravity is the factor by which the gap to the terminal speed closes.
	Gravity      float64 `yaml:"gravity"`
	TerminalFall float64 `yaml:"terminalFall"`
	WallGrabFall float64 `yaml:"wallGrabFall"`

	// Seconds.
	InjuryDuration float64 `yaml:"injuryDuration"`
	AppearDuration float64 `yaml:"appearDuration"`
}

func DefaultConfig() Config {
	return Config{
		ReferenceFPS: 144,
		MaxSubsteps:  8,

		Hitbox: gamemath.Rect{X: 18, Y: 16, W: 28, H: 48},

		RunAcceleration: 0.12,
		MaxRunSpeed:     2.5,
		Friction:        0.85,
		DeadZone:        0.05,

		JumpImpulse:   6.5,
		BounceImpulse: 5.5,
		MaxJumps:      2,

		RiseDecay:     0.94,
		FallCrossover: 0.3,
		Gravity:       0.985,
		TerminalFall:  7,
		WallGrabFall:  1.2,

		InjuryDuration: 3,
		AppearDuration: 0.5,
	}
}
