package factory

import (
	"github.com/automoto/pupu/assets/animations"
	"github.com/automoto/pupu/assets/texture"
	"github.com/automoto/pupu/kinematic"
)

// characterFrames is the frame count of each pose row on the character
// sheet, indexed by kinematic.Pose.
var characterFrames = [kinematic.PoseCount]int{
	kinematic.PoseIdle:       11,
	kinematic.PoseRun:        12,
	kinematic.PoseJump:       1,
	kinematic.PoseFall:       1,
	kinematic.PoseDoubleJump: 6,
	kinematic.PoseWallGrab:   5,
	kinematic.PoseHit:        7,
	kinematic.PoseAppear:     7,
}

// CharacterSprites builds the pose group of the character. Group index i
// plays sheet row i, so a pose selects its own row.
func CharacterSprites(ticksPerFrame int) *animations.Group {
	anims := make([]*animations.Animation, kinematic.PoseCount)
	for p := range kinematic.PoseCount {
		frames := characterFrames[p]
		if p == kinematic.PoseAppear {
			anims[p] = animations.NewOneShot(texture.Character, int(p), frames, ticksPerFrame)
			continue
		}
		anims[p] = animations.NewAnimation(texture.Character, int(p), frames, ticksPerFrame)
	}
	return animations.NewGroup(anims...)
}
