package actors

// Config tunes NPCs and traps. Speeds are in pixels per second, durations
// in seconds.
type Config struct {
	WalkerSpeed      float64 `yaml:"walkerSpeed"`
	ChargerWalkSpeed float64 `yaml:"chargerWalkSpeed"`
	ChargerRunSpeed  float64 `yaml:"chargerRunSpeed"`
	ShooterSpeed     float64 `yaml:"shooterSpeed"`
	BulletSpeed      float64 `yaml:"bulletSpeed"`

	// FireInterval is the time between shots while a shooter sees the
	// character.
	FireInterval float64 `yaml:"fireInterval"`

	InjuryDuration float64 `yaml:"injuryDuration"`
	StunDuration   float64 `yaml:"stunDuration"`

	// Every DecisionInterval a running walker idles with IdleChance for up
	// to MaxIdle seconds; an idle walker turns around with TurnChance.
	DecisionInterval float64 `yaml:"decisionInterval"`
	IdleChance       float64 `yaml:"idleChance"`
	TurnChance       float64 `yaml:"turnChance"`
	MaxIdle          float64 `yaml:"maxIdle"`

	SpikeHiddenFor float64 `yaml:"spikeHiddenFor"`

	// TicksPerFrame is the sprite frame length in game ticks.
	TicksPerFrame int `yaml:"ticksPerFrame"`
}

func DefaultConfig() Config {
	return Config{
		WalkerSpeed:      200,
		ChargerWalkSpeed: 100,
		ChargerRunSpeed:  300,
		ShooterSpeed:     200,
		BulletSpeed:      400,

		FireInterval: 1.2,

		InjuryDuration: 3,
		StunDuration:   2,

		DecisionInterval: 0.3,
		IdleChance:       0.2,
		TurnChance:       0.4,
		MaxIdle:          3,

		SpikeHiddenFor: 1,

		TicksPerFrame: 3,
	}
}
