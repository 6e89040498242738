package systems

import (
	cfg "github.com/automoto/pupu/config"
	"github.com/automoto/pupu/components"
	"github.com/automoto/pupu/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the input component.
// Must run before every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Left stick doubles as the d-pad.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		} else if x > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
	}
}

// CharacterInput is the controller snapshot of the current frame. Jump is
// passed as held; the controller detects the press edge itself.
func CharacterInput(in *components.InputData) kinematic.Input {
	return kinematic.Input{
		Left:  in.Pressed(cfg.ActionMoveLeft),
		Right: in.Pressed(cfg.ActionMoveRight),
		Jump:  in.Pressed(cfg.ActionJump),
	}
}
