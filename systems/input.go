package systems

import (
	"github.com/automoto/layerhop/archetypes"
	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// binding maps one action to its keys and standard gamepad buttons.
type binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionLayerBack: {
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft, ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionLayerFront: {
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight, ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionPause: {
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionRestart: {
		Keys:    []ebiten.Key{ebiten.KeyR},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

const analogDeadzone = 0.3

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdatePlayerIntents and UpdatePause.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Swap()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -analogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > analogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
	}
}

// UpdatePlayerIntents turns the action state into the player's intents for
// this tick. Nothing reaches the player while paused.
func UpdatePlayerIntents(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Character.Get(entry)
	if isPaused(ecs) {
		c.Intents = physics.Intents{}
		return
	}
	c.Intents = intentsFrom(getOrCreateInput(ecs))
}

func intentsFrom(input *components.InputData) physics.Intents {
	jump := input.Action(cfg.ActionJump)
	return physics.Intents{
		MoveLeft:    input.Action(cfg.ActionMoveLeft).Pressed,
		MoveRight:   input.Action(cfg.ActionMoveRight).Pressed,
		JumpHeld:    jump.Pressed,
		JumpPressed: jump.JustPressed,
		LayerBack:   input.Action(cfg.ActionLayerBack).JustPressed,
		LayerFront:  input.Action(cfg.ActionLayerFront).JustPressed,
	}
}

// RestartRequested reports whether restart was pressed this tick.
func RestartRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).Action(cfg.ActionRestart).JustPressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs.World)
	}
	return components.Input.Get(entry)
}
