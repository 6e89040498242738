package systems

import (
	"math"

	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/config"
	"github.com/automoto/pupu/shared/gamemath"
	"github.com/automoto/pupu/systems/factory"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the character, keeping the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, ch, ok := getCharacter(e)
	if !ok {
		return
	}
	_, level, ok := getLevel(e)
	if !ok {
		return
	}

	hb := ch.Hitbox()
	target := dmath.NewVec2(hb.CenterX(), hb.CenterY())

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	w, h := factory.LevelPixelSize(level.Level)

	target.X = clampAxis(target.X, screenWidth, float64(w))
	target.Y = clampAxis(target.Y, screenHeight, float64(h))

	if camera.Position == (dmath.Vec2{}) {
		camera.Position = target
		return
	}
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a camera centre so the view stays inside [0, level]. A
// level smaller than the screen is centred.
func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// viewOffset is the world position drawn at the screen's top-left corner.
func viewOffset(e *ecs.ECS) gamemath.Vec {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Vec{}
	}
	p := components.Camera.Get(cameraEntry).Position
	return gamemath.Vec{
		X: math.Round(p.X - float64(config.C.Width)/2),
		Y: math.Round(p.Y - float64(config.C.Height)/2),
	}
}
