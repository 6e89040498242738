package kinematic

// Lifecycle is the outer state layer of the controller.
type Lifecycle int

const (
	Appearing Lifecycle = iota
	Live
	Injured
)

func (l Lifecycle) String() string {
	switch l {
	case Appearing:
		return "appearing"
	case Live:
		return "live"
	case Injured:
		return "injured"
	}
	return "unknown"
}

// Locomotion is the movement state layer.
type Locomotion int

const (
	Ground Locomotion = iota
	Jump
	Fall
	DoubleJump
)

func (l Locomotion) String() string {
	switch l {
	case Ground:
		return "ground"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case DoubleJump:
		return "double_jump"
	}
	return "unknown"
}

// Pose is the display state. Values index the character's sprite group.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
	PoseFall
	PoseDoubleJump
	PoseWallGrab
	PoseHit
	PoseAppear

	PoseCount
)

func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseRun:
		return "run"
	case PoseJump:
		return "jump"
	case PoseFall:
		return "fall"
	case PoseDoubleJump:
		return "double_jump"
	case PoseWallGrab:
		return "wall_grab"
	case PoseHit:
		return "hit"
	case PoseAppear:
		return "appear"
	}
	return "unknown"
}

type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)
